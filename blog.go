// Package blog embeds an article listing module into a host application:
// date-ordered articles from pluggable sources (markdown tree, generated
// index, database, memory), tag filtering, and a render-ready view model.
package blog

import (
	"github.com/goliatone/go-blog/articles"
	articlescmd "github.com/goliatone/go-blog/internal/commands/articles"
	"github.com/goliatone/go-blog/internal/di"
	bloghttp "github.com/goliatone/go-blog/internal/http"
)

// ArticleService exports the listing service contract for consumers of the
// blog package.
type ArticleService = articles.Service

// ArticleSource exports the article source contract so hosts can plug in
// their own storage.
type ArticleSource = articles.Source

// Article exports the article record.
type Article = articles.Article

// ViewModel exports the render-ready listing projection.
type ViewModel = articles.ViewModel

// TagCount exports one tag summary entry.
type TagCount = articles.TagCount

// ListRequest exports the listing request parameters.
type ListRequest = articles.ListRequest

// Module is the top level blog runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a blog module using the provided configuration and optional
// DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Module{container: di.NewContainer(cfg, opts...)}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Articles returns the configured listing service.
func (m *Module) Articles() ArticleService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ArticleService()
}

// Source returns the resolved article source.
func (m *Module) Source() ArticleSource {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ArticleSource()
}

// Commands returns the article command handlers when the commands feature is
// enabled, nil otherwise.
func (m *Module) Commands() *articlescmd.HandlerSet {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ArticleCommands()
}

// HTTP builds the net/http adapter over the listing service. The returned
// API registers its routes on a caller-supplied mux.
func (m *Module) HTTP(opts ...bloghttp.APIOption) *bloghttp.API {
	if m == nil || m.container == nil {
		return nil
	}
	return bloghttp.NewAPI(m.container.ArticleService(), opts...)
}
