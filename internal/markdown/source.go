package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Config controls how the markdown article source discovers and parses files.
type Config struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	// RenderExcerpts converts the excerpt (or description fallback) from
	// Markdown into HTML on every load.
	RenderExcerpts bool
	Parser         interfaces.ParseOptions
}

// SourceOption customises the markdown source.
type SourceOption func(*Source)

// WithLogger injects the source logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) SourceOption {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParser overrides the Markdown parser used for excerpt rendering.
func WithParser(parser interfaces.MarkdownParser) SourceOption {
	return func(s *Source) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithFilesystem replaces the filesystem the loader reads from. Used by tests
// and embedded-content callers; the default is os.DirFS(ContentDir).
func WithFilesystem(filesystem fs.FS) SourceOption {
	return func(s *Source) {
		if filesystem != nil {
			s.loader = NewLoader(filesystem, s.loaderConfig)
		}
	}
}

// Source loads blog articles from a Markdown tree. Every Load walks the
// configured directory and returns freshly built records, most recent first;
// callers may decorate the results without affecting later loads.
type Source struct {
	cfg          Config
	loaderConfig LoaderConfig
	loader       *Loader
	parser       interfaces.MarkdownParser
	logger       interfaces.Logger
}

// NewSource constructs a markdown-backed article source rooted at ContentDir.
func NewSource(cfg Config, opts ...SourceOption) (*Source, error) {
	loaderCfg := LoaderConfig{
		BasePath:  cfg.ContentDir,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	}

	s := &Source{
		cfg:          cfg,
		loaderConfig: loaderCfg,
		parser:       NewGoldmarkParser(cfg.Parser),
		logger:       logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.loader == nil {
		filesystem, err := prepareFilesystem(cfg.ContentDir)
		if err != nil {
			return nil, err
		}
		s.loader = NewLoader(filesystem, loaderCfg)
	}

	return s, nil
}

// Load implements blog.Source. Draft posts are excluded and malformed posts
// are skipped with a warning so one broken file never takes down the listing.
func (s *Source) Load(ctx context.Context) ([]*blog.Article, error) {
	results, err := s.loader.LoadDirectory(ctx, ".")
	if err != nil {
		return nil, &blog.SourceUnavailableError{Source: "markdown", Err: err}
	}

	items := make([]*blog.Article, 0, len(results))
	for _, result := range results {
		if result.Meta.Draft {
			continue
		}

		record, err := s.buildArticle(result)
		if err != nil {
			logging.WithArticleContext(s.logger, result.Meta.Link, result.Path, "markdown").
				Warn("markdown.article.skipped", "error", err)
			continue
		}
		items = append(items, record)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

func (s *Source) buildArticle(result *DocumentResult) (*blog.Article, error) {
	meta := result.Meta

	slugValue := strings.TrimSpace(meta.Slug)
	if slugValue == "" {
		if normalized, err := blog.NormalizeSlug(meta.Title); err == nil {
			slugValue = normalized
		}
	}
	if slugValue == "" {
		if normalized, err := blog.NormalizeSlug(stem(result.Path)); err == nil {
			slugValue = normalized
		}
	}

	link := strings.TrimSpace(meta.Link)
	if link == "" {
		link = slugValue
	}

	record := &blog.Article{
		ID:          identity.ArticleUUID(link),
		Link:        link,
		Slug:        slugValue,
		Title:       strings.TrimSpace(meta.Title),
		Description: strings.TrimSpace(meta.Description),
		PublishedAt: meta.Date,
		Author:      strings.TrimSpace(meta.Author),
		Tags:        append([]string(nil), meta.Tags...),
		Checksum:    result.Checksum,
	}
	if image := strings.TrimSpace(meta.Image); image != "" {
		record.Image = &image
	}

	if excerpt, err := s.renderExcerpt(meta); err != nil {
		logging.WithArticleContext(s.logger, link, result.Path, "markdown").
			Warn("markdown.excerpt.render_failed", "error", err)
	} else {
		record.Excerpt = excerpt
	}

	if err := record.Validate(); err != nil {
		return nil, &blog.MalformedArticleError{Link: link, Path: result.Path, Cause: err}
	}
	return record, nil
}

func (s *Source) renderExcerpt(meta ArticleMeta) (string, error) {
	raw := strings.TrimSpace(meta.Excerpt)
	if raw == "" {
		raw = strings.TrimSpace(meta.Description)
	}
	if raw == "" {
		return "", nil
	}
	if !s.cfg.RenderExcerpts {
		return raw, nil
	}

	html, err := s.parser.ParseWithOptions([]byte(raw), s.cfg.Parser)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(html)), nil
}

func stem(path string) string {
	base := path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, &blog.SourceUnavailableError{
			Source: "markdown",
			Err:    fmt.Errorf("stat content dir %s: %w", basePath, err),
		}
	}
	return os.DirFS(basePath), nil
}
