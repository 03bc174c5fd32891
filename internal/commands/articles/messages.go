package articlescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const syncIndexMessageType = "blog.articles.sync_index"

// SyncIndexCommand regenerates the JSON article index from the configured
// article source. The command is idempotent: running it twice against an
// unchanged content tree produces the same index document.
type SyncIndexCommand struct {
	// IndexPath selects the output location for the generated index document.
	IndexPath string `json:"index_path"`
	// DryRun collects the article set without writing the index file.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (SyncIndexCommand) Type() string { return syncIndexMessageType }

// Validate ensures the output path is present before handlers execute.
func (cmd SyncIndexCommand) Validate() error {
	if cmd.DryRun {
		return nil
	}
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.IndexPath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.articles.sync_index.index_path_required", "index path is required")
			}
			return nil
		})),
	)
}
