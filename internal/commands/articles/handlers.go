package articlescmd

import (
	"context"
	"errors"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const syncIndexOperation = "articles.sync_index"

// ErrSourceRequired is returned when a sync handler is built without a source.
var ErrSourceRequired = errors.New("articles command: source is required")

var _ command.Commander[SyncIndexCommand] = (*SyncIndexHandler)(nil)

// IndexWriter persists a generated article index document.
type IndexWriter interface {
	Write(ctx context.Context, items []*blog.Article) error
}

// WriterFactory builds an IndexWriter bound to the supplied output path.
type WriterFactory func(path string) IndexWriter

// SyncIndexHandler regenerates the article index through the shared command
// handler foundation.
type SyncIndexHandler struct {
	inner *commands.Handler[SyncIndexCommand]
}

// NewSyncIndexHandler creates a handler that loads every article from source
// and writes the index document produced by factory.
func NewSyncIndexHandler(source blog.Source, factory WriterFactory, logger interfaces.Logger, opts ...commands.HandlerOption[SyncIndexCommand]) *SyncIndexHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncIndexCommand) error {
		if source == nil {
			return ErrSourceRequired
		}

		items, err := source.Load(ctx)
		if err != nil {
			return err
		}

		if msg.DryRun {
			logging.WithFields(baseLogger, map[string]any{
				"article_count": len(items),
				"dry_run":       true,
			}).Info("articles.command.sync_index.preview")
			return nil
		}

		if factory == nil {
			return errors.New("articles command: writer factory is required")
		}
		writer := factory(msg.IndexPath)
		if writer == nil {
			return errors.New("articles command: writer factory returned nil")
		}
		if err := writer.Write(ctx, items); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"article_count": len(items),
			"index_path":    msg.IndexPath,
		}).Info("articles.command.sync_index.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncIndexCommand]{
		commands.WithLogger[SyncIndexCommand](baseLogger),
		commands.WithOperation[SyncIndexCommand](syncIndexOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncIndexHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncIndexCommand].
func (h *SyncIndexHandler) Execute(ctx context.Context, msg SyncIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}
