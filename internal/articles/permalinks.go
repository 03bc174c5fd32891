package articles

import (
	"context"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	blog "github.com/goliatone/go-blog/articles"
)

// PermalinkOptions configures the go-urlkit backed resolver.
type PermalinkOptions struct {
	Manager      *urlkit.RouteManager
	Group        string
	ArticleRoute string
	ListRoute    string
	SlugParam    string
	TagQueryKey  string
}

// PermalinkResolver resolves article and tag-filter URLs using a go-urlkit
// RouteManager. The resolver is optional: without one, view models carry the
// raw article links only.
type PermalinkResolver struct {
	manager *urlkit.RouteManager

	group        string
	articleRoute string
	listRoute    string
	slugParam    string
	tagQueryKey  string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewPermalinkResolver constructs a resolver backed by go-urlkit.
func NewPermalinkResolver(opts PermalinkOptions) *PermalinkResolver {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	if opts.TagQueryKey == "" {
		opts.TagQueryKey = "tag"
	}
	if opts.ArticleRoute == "" {
		opts.ArticleRoute = "article"
	}
	if opts.ListRoute == "" {
		opts.ListRoute = "list"
	}

	return &PermalinkResolver{
		manager:      opts.Manager,
		group:        strings.TrimSpace(opts.Group),
		articleRoute: strings.TrimSpace(opts.ArticleRoute),
		listRoute:    strings.TrimSpace(opts.ListRoute),
		slugParam:    opts.SlugParam,
		tagQueryKey:  opts.TagQueryKey,

		groupCache: make(map[string]*urlkit.Group),
	}
}

// ArticleURL builds the canonical URL for a single article.
func (r *PermalinkResolver) ArticleURL(ctx context.Context, item *blog.Article) (string, error) {
	_ = ctx // reserved for future use
	if r == nil || r.manager == nil || item == nil {
		return "", nil
	}

	slug := strings.TrimSpace(item.Slug)
	if slug == "" {
		return "", nil
	}

	group, err := r.groupForPath(r.group)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, r.articleRoute)
	if err != nil || builder == nil {
		return "", err
	}
	return builder.WithParam(r.slugParam, slug).Build()
}

// TagURL builds the listing URL carrying a single tag filter.
func (r *PermalinkResolver) TagURL(ctx context.Context, tag string) (string, error) {
	_ = ctx
	if r == nil || r.manager == nil {
		return "", nil
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", nil
	}

	group, err := r.groupForPath(r.group)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, r.listRoute)
	if err != nil || builder == nil {
		return "", err
	}
	return builder.WithQuery(r.tagQueryKey, tag).Build()
}

func (r *PermalinkResolver) groupForPath(path string) (*urlkit.Group, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func (r *PermalinkResolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("articles: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("articles: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("articles: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("articles: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("articles: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("articles: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
