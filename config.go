package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrSourceProviderUnknown      = runtimeconfig.ErrSourceProviderUnknown
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrIndexPathRequired          = runtimeconfig.ErrIndexPathRequired
	ErrStorageDSNRequired         = runtimeconfig.ErrStorageDSNRequired
	ErrStorageDriverUnknown       = runtimeconfig.ErrStorageDriverUnknown
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	SourceConfig         = runtimeconfig.SourceConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	IndexConfig          = runtimeconfig.IndexConfig
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	RoutesConfig         = runtimeconfig.RoutesConfig
	Features             = runtimeconfig.Features
	LoggingConfig        = runtimeconfig.LoggingConfig
)

// Source provider identifiers accepted by SourceConfig.Provider.
const (
	SourceMemory   = runtimeconfig.SourceMemory
	SourceMarkdown = runtimeconfig.SourceMarkdown
	SourceIndex    = runtimeconfig.SourceIndex
	SourceBun      = runtimeconfig.SourceBun
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
