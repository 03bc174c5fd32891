package articles

import (
	"sort"
	"strings"
)

// NormalizeTags coerces the request-level filter input into a set of distinct
// tag keys. Callers may hand over a single value, repeated query values, or
// nothing at all; blank values are dropped and duplicates collapse onto the
// first occurrence. The returned slice preserves first-appearance order.
//
// This is the single coercion point for the "scalar or plural" filter
// parameter; nothing downstream re-normalizes.
func NormalizeTags(values ...string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		key := TagKey(value)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// FilterByTags returns the subset of items carrying at least one of the
// requested tags (union semantics). An empty request is the identity: the
// input slice is returned untouched, same order and members. Matching items
// keep their relative input order; nothing is re-sorted. Unknown tags simply
// match nothing.
func FilterByTags(items []*Article, requested []string) []*Article {
	keys := NormalizeTags(requested...)
	if len(keys) == 0 {
		return items
	}

	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}

	out := make([]*Article, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, tag := range item.Tags {
			if _, ok := set[TagKey(tag)]; ok {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// ExtractTagSummary derives the tag vocabulary of the supplied article set
// with usage counts. Duplicate tags within one article count once. The result
// is sorted ascending on the normalized tag key (case-insensitive) so repeated
// calls over the same input produce identical sequences; the label keeps the
// first spelling encountered.
//
// Callers must always pass the full unfiltered set: the summary drives the
// filter UI and must not shrink as filters are applied.
func ExtractTagSummary(items []*Article) []TagCount {
	counts := make(map[string]*TagCount)
	for _, item := range items {
		if item == nil {
			continue
		}
		seen := make(map[string]struct{}, len(item.Tags))
		for _, tag := range item.Tags {
			key := TagKey(tag)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if entry, ok := counts[key]; ok {
				entry.Count++
				continue
			}
			counts[key] = &TagCount{Tag: strings.TrimSpace(tag), Count: 1}
		}
	}

	out := make([]TagCount, 0, len(counts))
	for _, entry := range counts {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := TagKey(out[i].Tag), TagKey(out[j].Tag)
		if ki != kj {
			return ki < kj
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// SelectFeatured picks the hero article. It returns nil when a tag filter is
// active or when the set is empty; otherwise the first element, which sources
// guarantee to be the most recent.
func SelectFeatured(items []*Article, filtered bool) *Article {
	if filtered || len(items) == 0 {
		return nil
	}
	return items[0]
}

// BuildViewModel assembles the render-ready listing payload from an ordered
// article set and the raw requested tags. The tag summary is always computed
// over the full set, never the filtered subset. The function is total over any
// well-formed input, including the empty set.
func BuildViewModel(items []*Article, requested ...string) *ViewModel {
	keys := NormalizeTags(requested...)
	filtered := len(keys) > 0

	return &ViewModel{
		Articles: FilterByTags(items, keys),
		Featured: SelectFeatured(items, filtered),
		Tags:     ExtractTagSummary(items),
		Filtered: filtered,
	}
}
