// Package di wires the blog module: configuration in, a ready listing
// service out. The container owns default construction (memory source,
// logging provider, cache, permalinks) while options let hosts swap any part.
package di

import (
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/articles"
	articlescmd "github.com/goliatone/go-blog/internal/commands/articles"
	"github.com/goliatone/go-blog/internal/index"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Container resolves and holds the module's collaborators.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	db             *bun.DB
	cacheService   repocache.CacheService
	keySerializer  repocache.KeySerializer
	cacheTTL       time.Duration

	source     blog.Source
	articleSvc blog.Service
	permalinks *articles.PermalinkResolver
	commands   *articlescmd.HandlerSet

	sourceErr error
}

// Option func customises container construction.
type Option func(*Container)

// WithBunDB supplies an existing bun.DB used by the bun source.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.db = db
	}
}

// WithCache installs a shared repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logging provider resolved from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithArticleSource replaces the config-selected article source.
func WithArticleSource(source blog.Source) Option {
	return func(c *Container) {
		c.source = source
	}
}

// WithArticleService replaces the whole listing service. Sources and
// permalink wiring are skipped when set.
func WithArticleService(svc blog.Service) Option {
	return func(c *Container) {
		c.articleSvc = svc
	}
}

// NewContainer resolves the dependency graph for the supplied configuration.
// Invalid configuration panics, mirroring the fail-fast construction contract
// of the public facade.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) *Container {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.configureLogging()
	c.configureCacheDefaults()
	c.configureSource()
	c.configurePermalinks()

	if c.articleSvc == nil {
		svcOpts := []articles.ServiceOption{
			articles.WithLogger(logging.ArticlesLogger(c.loggerProvider)),
		}
		if c.permalinks != nil {
			svcOpts = append(svcOpts, articles.WithPermalinks(c.permalinks))
		}
		c.articleSvc = articles.NewService(c.source, svcOpts...)
	}

	if cfg.Features.Commands {
		c.configureCommands()
	}

	return c
}

// ArticleService returns the listing service.
func (c *Container) ArticleService() blog.Service {
	if c == nil {
		return nil
	}
	return c.articleSvc
}

// ArticleSource returns the resolved article source.
func (c *Container) ArticleSource() blog.Source {
	if c == nil {
		return nil
	}
	return c.source
}

// SourceError reports a source construction failure. The container keeps a
// degraded service wired to no source so List surfaces SourceUnavailableError
// instead of panicking at build time.
func (c *Container) SourceError() error {
	if c == nil {
		return nil
	}
	return c.sourceErr
}

// LoggerProvider returns the active logging provider, possibly nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	if c == nil {
		return nil
	}
	return c.loggerProvider
}

// DB returns the bun database handle when one was supplied or opened.
func (c *Container) DB() *bun.DB {
	if c == nil {
		return nil
	}
	return c.db
}

// PermalinkResolver returns the urlkit-backed resolver, nil when routes are
// not configured.
func (c *Container) PermalinkResolver() *articles.PermalinkResolver {
	if c == nil {
		return nil
	}
	return c.permalinks
}

// ArticleCommands returns the registered command handlers, nil unless the
// commands feature is enabled.
func (c *Container) ArticleCommands() *articlescmd.HandlerSet {
	if c == nil {
		return nil
	}
	return c.commands
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return
	}

	switch c.Config.Logging.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err == nil {
			c.loggerProvider = provider
		}
	default:
		// "noop" and unknown providers fall back to no-op loggers.
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureSource() {
	if c.source != nil || c.articleSvc != nil {
		return
	}

	switch c.Config.Source.Provider {
	case runtimeconfig.SourceMarkdown:
		source, err := markdown.NewSource(markdown.Config{
			ContentDir:     c.Config.Markdown.ContentDir,
			Pattern:        c.Config.Markdown.Pattern,
			Recursive:      c.Config.Markdown.Recursive,
			RenderExcerpts: c.Config.Features.Excerpts,
			Parser: interfaces.ParseOptions{
				Extensions: c.Config.Markdown.Parser.Extensions,
				Sanitize:   c.Config.Markdown.Parser.Sanitize,
				HardWraps:  c.Config.Markdown.Parser.HardWraps,
				SafeMode:   c.Config.Markdown.Parser.SafeMode,
			},
		}, markdown.WithLogger(logging.MarkdownLogger(c.loggerProvider)))
		if err != nil {
			c.sourceErr = err
			return
		}
		c.source = source

	case runtimeconfig.SourceIndex:
		c.source = index.NewSource(c.Config.Index.Path,
			index.WithLogger(logging.IndexLogger(c.loggerProvider)))

	case runtimeconfig.SourceBun:
		if c.db == nil {
			db, err := OpenDatabase(c.Config.Storage)
			if err != nil {
				c.sourceErr = err
				return
			}
			c.db = db
		}
		if c.Config.Cache.Enabled && c.cacheService != nil {
			c.source = articles.NewBunArticleRepositoryWithCache(c.db, c.cacheService, c.keySerializer)
			return
		}
		c.source = articles.NewBunArticleRepository(c.db)

	default:
		c.source = articles.NewMemoryRepository()
	}
}

func (c *Container) configurePermalinks() {
	routes := c.Config.Routes
	if routes.RouteConfig == nil || c.articleSvc != nil {
		return
	}
	if !c.Config.Features.Permalinks {
		return
	}

	manager := urlkit.NewRouteManager(routes.RouteConfig)
	c.permalinks = articles.NewPermalinkResolver(articles.PermalinkOptions{
		Manager:      manager,
		Group:        routes.Group,
		ArticleRoute: routes.ArticleRoute,
		SlugParam:    routes.SlugParam,
		TagQueryKey:  routes.TagQueryKey,
	})
}

func (c *Container) configureCommands() {
	if c.source == nil {
		return
	}
	set, err := articlescmd.RegisterArticleCommands(nil, c.source, c.loggerProvider)
	if err != nil {
		return
	}
	c.commands = set
}
