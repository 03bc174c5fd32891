// Command blog-index regenerates the JSON article index from a markdown
// content tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
	articlescmd "github.com/goliatone/go-blog/internal/commands/articles"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("blog-index: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("blog-index", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories of the content root")
	indexPath := fs.String("out", "articles.json", "Output location for the generated index")
	dryRun := fs.Bool("dry-run", false, "Load the article set without writing the index")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := blog.DefaultConfig()
	cfg.Source.Provider = blog.SourceMarkdown
	cfg.Markdown.ContentDir = *contentDir
	cfg.Markdown.Pattern = *pattern
	cfg.Markdown.Recursive = *recursive
	cfg.Features.Commands = true

	module, err := blog.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if err := module.Container().SourceError(); err != nil {
		return fmt.Errorf("configure source: %w", err)
	}

	set := module.Commands()
	if set == nil || set.SyncIndex == nil {
		return fmt.Errorf("sync-index command not configured")
	}

	ctx := context.Background()
	msg := articlescmd.SyncIndexCommand{IndexPath: *indexPath, DryRun: *dryRun}
	if err := set.SyncIndex.Execute(ctx, msg); err != nil {
		return fmt.Errorf("execute sync-index command: %w", err)
	}

	if *dryRun {
		fmt.Fprintln(os.Stdout, "dry run complete; index not written")
		return nil
	}
	fmt.Fprintf(os.Stdout, "article index written to %s\n", *indexPath)
	return nil
}
