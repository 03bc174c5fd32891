package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrSourceProviderUnknown indicates an unrecognised article source provider.
var ErrSourceProviderUnknown = errors.New("blog config: source provider is invalid")

// ErrMarkdownContentDirRequired guards the markdown source against an empty content directory.
var ErrMarkdownContentDirRequired = errors.New("blog config: markdown content directory is required when the markdown source is selected")

// ErrIndexPathRequired guards the index source against an empty index path.
var ErrIndexPathRequired = errors.New("blog config: index path is required when the index source is selected")

// ErrStorageDSNRequired guards the bun source against an empty DSN.
var ErrStorageDSNRequired = errors.New("blog config: storage dsn is required when the bun source is selected")

// ErrStorageDriverUnknown indicates an unsupported database driver.
var ErrStorageDriverUnknown = errors.New("blog config: storage driver is invalid")

// ErrCacheTTLInvalid rejects negative cache TTLs.
var ErrCacheTTLInvalid = errors.New("blog config: cache ttl must be zero or positive")

var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Source providers accepted by SourceConfig.Provider.
const (
	SourceMemory   = "memory"
	SourceMarkdown = "markdown"
	SourceIndex    = "index"
	SourceBun      = "bun"
)

// Config aggregates feature flags and adapter bindings for the blog module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Source   SourceConfig
	Markdown MarkdownConfig
	Index    IndexConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Routes   RoutesConfig
	Features Features
	Logging  LoggingConfig
}

// SourceConfig selects which article source backs the listing service.
type SourceConfig struct {
	Provider string
}

// MarkdownConfig captures filesystem and parser behaviour for the markdown source.
type MarkdownConfig struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// IndexConfig captures the location of a generated JSON article index.
type IndexConfig struct {
	Path string
}

// StorageConfig lists connection details for the DB-backed source.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures cache behaviour toggles for the bun repository.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// RoutesConfig captures permalink resolution settings.
type RoutesConfig struct {
	RouteConfig  *urlkit.Config
	Group        string
	ArticleRoute string
	SlugParam    string
	TagQueryKey  string
}

// Features toggles module functionality.
type Features struct {
	Permalinks bool
	Excerpts   bool
	Commands   bool
	Logger     bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an embedded blog module.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Source: SourceConfig{
			Provider: SourceMemory,
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Routes: RoutesConfig{
			SlugParam:   "slug",
			TagQueryKey: "tag",
		},
		Features: Features{
			Excerpts: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalize(cfg.Source.Provider) {
	case "", SourceMemory:
	case SourceMarkdown:
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	case SourceIndex:
		if strings.TrimSpace(cfg.Index.Path) == "" {
			return ErrIndexPathRequired
		}
	case SourceBun:
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
		// Same alias set the database layer resolves.
		switch normalize(cfg.Storage.Driver) {
		case "", "sqlite", "sqlite3", "postgres", "postgresql", "pg":
		default:
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: %s", ErrSourceProviderUnknown, cfg.Source.Provider)
	}

	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
