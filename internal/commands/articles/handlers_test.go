package articlescmd_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	blog "github.com/goliatone/go-blog/articles"
	articlescmd "github.com/goliatone/go-blog/internal/commands/articles"
	"github.com/goliatone/go-blog/internal/index"
)

type staticSource struct {
	items []*blog.Article
	err   error
}

func (s *staticSource) Load(context.Context) ([]*blog.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type recordingRegistry struct {
	handlers []any
	err      error
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	if r.err != nil {
		return r.err
	}
	r.handlers = append(r.handlers, handler)
	return nil
}

func sampleArticles() []*blog.Article {
	return []*blog.Article{
		{
			Link:        "react-hooks",
			Slug:        "react-hooks",
			Title:       "React Hooks",
			PublishedAt: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"React"},
		},
		{
			Link:        "webflow-intro",
			Slug:        "webflow-intro",
			Title:       "Webflow Intro",
			PublishedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"Webflow"},
		},
	}
}

func TestSyncIndexWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	source := &staticSource{items: sampleArticles()}

	set, err := articlescmd.RegisterArticleCommands(&recordingRegistry{}, source, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	msg := articlescmd.SyncIndexCommand{IndexPath: path}
	if err := set.SyncIndex.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}

	loaded, err := index.NewSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load generated index: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 articles in index, got %d", len(loaded))
	}
	if loaded[0].Link != "react-hooks" {
		t.Fatalf("expected newest article first, got %s", loaded[0].Link)
	}
}

func TestSyncIndexDryRunSkipsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	source := &staticSource{items: sampleArticles()}

	set, err := articlescmd.RegisterArticleCommands(&recordingRegistry{}, source, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	msg := articlescmd.SyncIndexCommand{IndexPath: path, DryRun: true}
	if err := set.SyncIndex.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if _, err := index.NewSource(path).Load(context.Background()); !errors.Is(err, blog.ErrSourceUnavailable) {
		t.Fatalf("expected no index written on dry run, got %v", err)
	}
}

func TestSyncIndexValidationRequiresPath(t *testing.T) {
	source := &staticSource{items: sampleArticles()}

	set, err := articlescmd.RegisterArticleCommands(&recordingRegistry{}, source, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = set.SyncIndex.Execute(context.Background(), articlescmd.SyncIndexCommand{})
	if err == nil {
		t.Fatal("expected validation error for missing index path")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestSyncIndexSourceFailure(t *testing.T) {
	source := &staticSource{err: &blog.SourceUnavailableError{Source: "markdown", Err: errors.New("gone")}}

	set, err := articlescmd.RegisterArticleCommands(&recordingRegistry{}, source, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	msg := articlescmd.SyncIndexCommand{IndexPath: filepath.Join(t.TempDir(), "articles.json")}
	err = set.SyncIndex.Execute(context.Background(), msg)
	if err == nil {
		t.Fatal("expected source failure to surface")
	}
	if !errors.Is(err, blog.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable in chain, got %v", err)
	}
}

func TestRegisterArticleCommandsRequiresSource(t *testing.T) {
	if _, err := articlescmd.RegisterArticleCommands(&recordingRegistry{}, nil, nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestRegisterArticleCommandsRegistersHandlers(t *testing.T) {
	reg := &recordingRegistry{}
	source := &staticSource{items: sampleArticles()}

	if _, err := articlescmd.RegisterArticleCommands(reg, source, nil); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(reg.handlers) != 1 {
		t.Fatalf("expected 1 registered handler, got %d", len(reg.handlers))
	}
}
