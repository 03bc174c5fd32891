// Package articlescmd wires article maintenance commands (index generation)
// onto the shared command handler foundation.
package articlescmd

import (
	"context"
	"errors"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/index"
	"github.com/goliatone/go-blog/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the article command handlers produced by RegisterArticleCommands.
type HandlerSet struct {
	SyncIndex *SyncIndexHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	factory       WriterFactory
	syncIndexOpts []commands.HandlerOption[SyncIndexCommand]
}

// WithWriterFactory overrides how index writers are built from output paths.
// The default wraps the JSON index source.
func WithWriterFactory(factory WriterFactory) Option {
	return func(cfg *options) {
		if factory != nil {
			cfg.factory = factory
		}
	}
}

// WithSyncIndexOptions forwards options to the SyncIndexHandler constructor.
func WithSyncIndexOptions(opts ...commands.HandlerOption[SyncIndexCommand]) Option {
	return func(cfg *options) {
		cfg.syncIndexOpts = append(cfg.syncIndexOpts, opts...)
	}
}

// RegisterArticleCommands builds the article command handlers and registers
// them with the provided registry. The HandlerSet is returned so callers can
// wire additional integrations (dispatcher, cron) as needed.
func RegisterArticleCommands(reg CommandRegistry, source blog.Source, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if source == nil {
		return nil, errors.New("article command registration: source is nil")
	}

	cfg := options{
		factory: func(path string) IndexWriter {
			return index.NewSource(path)
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "articles")

	syncHandler := NewSyncIndexHandler(source, cfg.factory, logger, cfg.syncIndexOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(syncHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		SyncIndex: syncHandler,
	}, nil
}

// RegisterSyncIndexCron wires the sync handler into a cron registrar using the
// supplied command configuration and message payload. The handler is executed
// with a background context.
func RegisterSyncIndexCron(reg CronRegistrar, handler *SyncIndexHandler, cfg command.HandlerConfig, msg SyncIndexCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
