// Package index implements the generated-index article source: a single JSON
// document carrying every published article, schema-validated on read.
package index

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Entry is one article record inside the generated index document.
type Entry struct {
	Link        string   `json:"link"`
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Image       string   `json:"image,omitempty"`
	PublishedAt string   `json:"published_at"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Draft       bool     `json:"draft,omitempty"`
	Checksum    string   `json:"checksum,omitempty"`
}

// Document is the top-level generated index payload.
type Document struct {
	Version     int     `json:"version"`
	GeneratedAt string  `json:"generated_at,omitempty"`
	Articles    []Entry `json:"articles"`
}

// SourceOption customises the index source.
type SourceOption func(*Source)

// WithLogger injects the source logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) SourceOption {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Source loads articles from a generated JSON index file.
type Source struct {
	path   string
	logger interfaces.Logger
}

// NewSource constructs an index-backed article source for the given file path.
func NewSource(path string, opts ...SourceOption) *Source {
	s := &Source{
		path:   path,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Load implements blog.Source. It reads and validates the index document and
// returns fresh records, most recent first. Draft entries are excluded and
// malformed entries skipped with a warning.
func (s *Source) Load(ctx context.Context) ([]*blog.Article, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &blog.SourceUnavailableError{Source: "index", Err: err}
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &blog.SourceUnavailableError{
			Source: "index",
			Err:    fmt.Errorf("decode %s: %w", s.path, err),
		}
	}
	if err := ValidateDocument(decoded); err != nil {
		return nil, &blog.SourceUnavailableError{Source: "index", Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &blog.SourceUnavailableError{
			Source: "index",
			Err:    fmt.Errorf("decode %s: %w", s.path, err),
		}
	}

	items := make([]*blog.Article, 0, len(doc.Articles))
	for _, entry := range doc.Articles {
		if entry.Draft {
			continue
		}
		record, err := entryToArticle(entry)
		if err != nil {
			logging.WithArticleContext(s.logger, entry.Link, s.path, "index").
				Warn("index.article.skipped", "error", err)
			continue
		}
		items = append(items, record)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

// Write serialises the supplied articles into the index document and writes it
// to the configured path. The write goes through a temp file and rename so
// readers never observe a torn index.
func (s *Source) Write(ctx context.Context, items []*blog.Article) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	doc := BuildDocument(items)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("index: encode document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("index: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*.json")
	if err != nil {
		return fmt.Errorf("index: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("index: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("index: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("index: replace %s: %w", s.path, err)
	}
	return nil
}

// Path returns the index file location.
func (s *Source) Path() string {
	return s.path
}

// BuildDocument converts article records into the index document payload.
func BuildDocument(items []*blog.Article) Document {
	doc := Document{
		Version:     1,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Articles:    make([]Entry, 0, len(items)),
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		entry := Entry{
			Link:        item.Link,
			Slug:        item.Slug,
			Title:       item.Title,
			Description: item.Description,
			Excerpt:     item.Excerpt,
			PublishedAt: item.PublishedAt.UTC().Format(time.RFC3339),
			Author:      item.Author,
			Tags:        append([]string(nil), item.Tags...),
			Draft:       item.Draft,
		}
		if item.Image != nil {
			entry.Image = *item.Image
		}
		if len(item.Checksum) > 0 {
			entry.Checksum = hex.EncodeToString(item.Checksum)
		}
		doc.Articles = append(doc.Articles, entry)
	}
	return doc
}

func entryToArticle(entry Entry) (*blog.Article, error) {
	link := strings.TrimSpace(entry.Link)

	published, err := parseTimestamp(entry.PublishedAt)
	if err != nil {
		return nil, &blog.MalformedArticleError{
			Link:  link,
			Cause: fmt.Errorf("published_at %q: %w", entry.PublishedAt, err),
		}
	}

	record := &blog.Article{
		ID:          identity.ArticleUUID(link),
		Link:        link,
		Slug:        strings.TrimSpace(entry.Slug),
		Title:       strings.TrimSpace(entry.Title),
		Description: entry.Description,
		Excerpt:     entry.Excerpt,
		PublishedAt: published,
		Author:      strings.TrimSpace(entry.Author),
		Tags:        append([]string(nil), entry.Tags...),
	}
	if image := strings.TrimSpace(entry.Image); image != "" {
		record.Image = &image
	}
	if entry.Checksum != "" {
		if sum, err := hex.DecodeString(entry.Checksum); err == nil {
			record.Checksum = sum
		}
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp")
}
