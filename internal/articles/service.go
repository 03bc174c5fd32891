package articles

import (
	"context"
	"errors"
	"strings"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ServiceOption customises the listing service.
type ServiceOption func(*service)

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPermalinks installs a resolver that decorates view-model articles with
// absolute URLs. Resolution failures are logged and the permalink left empty;
// they never fail a listing.
func WithPermalinks(resolver *PermalinkResolver) ServiceOption {
	return func(s *service) {
		s.permalinks = resolver
	}
}

type service struct {
	source     blog.Source
	logger     interfaces.Logger
	permalinks *PermalinkResolver
}

// NewService builds the listing service on top of an article source. The
// source owns ordering (most recent first) and I/O policy; the service only
// projects.
func NewService(source blog.Source, opts ...ServiceOption) blog.Service {
	s := &service{
		source: source,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *service) List(ctx context.Context, req blog.ListRequest) (*blog.ViewModel, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	vm := blog.BuildViewModel(items, req.Tags...)
	s.resolvePermalinks(ctx, vm)

	logging.WithFields(s.logger, map[string]any{
		"total":    len(items),
		"matched":  len(vm.Articles),
		"filtered": vm.Filtered,
	}).Debug("articles.list")

	return vm, nil
}

func (s *service) Get(ctx context.Context, link string) (*blog.Article, error) {
	key := strings.TrimSpace(link)
	if key == "" {
		return nil, &blog.NotFoundError{Resource: "article", Key: link}
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		if item.Link == key {
			s.resolveOne(ctx, item)
			return item, nil
		}
	}
	return nil, &blog.NotFoundError{Resource: "article", Key: key}
}

func (s *service) Tags(ctx context.Context) ([]blog.TagCount, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return blog.ExtractTagSummary(items), nil
}

func (s *service) load(ctx context.Context) ([]*blog.Article, error) {
	if s.source == nil {
		return nil, &blog.SourceUnavailableError{Source: "none"}
	}

	items, err := s.source.Load(ctx)
	if err != nil {
		if errors.Is(err, blog.ErrSourceUnavailable) {
			return nil, err
		}
		return nil, &blog.SourceUnavailableError{Err: err}
	}
	return items, nil
}

func (s *service) resolvePermalinks(ctx context.Context, vm *blog.ViewModel) {
	if s.permalinks == nil || vm == nil {
		return
	}
	for _, item := range vm.Articles {
		s.resolveOne(ctx, item)
	}
	if vm.Featured != nil {
		s.resolveOne(ctx, vm.Featured)
	}
}

func (s *service) resolveOne(ctx context.Context, item *blog.Article) {
	if s.permalinks == nil || item == nil || item.Permalink != "" {
		return
	}
	url, err := s.permalinks.ArticleURL(ctx, item)
	if err != nil {
		logging.WithArticleContext(s.logger, item.Link, "", "").
			Warn("articles.permalink.resolve_failed", "error", err)
		return
	}
	item.Permalink = url
}
