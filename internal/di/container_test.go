package di_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/articles"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
)

func seedMemorySource(t *testing.T) *articles.MemoryRepository {
	t.Helper()
	repo := articles.NewMemoryRepository()
	ctx := context.Background()
	for _, record := range []*blog.Article{
		{Link: "react-hooks", Slug: "react-hooks", Title: "React Hooks", PublishedAt: day(3), Tags: []string{"React"}},
		{Link: "webflow-intro", Slug: "webflow-intro", Title: "Webflow Intro", PublishedAt: day(2), Tags: []string{"Webflow"}},
	} {
		if _, err := repo.Create(ctx, record); err != nil {
			t.Fatalf("seed %s: %v", record.Link, err)
		}
	}
	return repo
}

func TestContainerDefaultsToMemorySource(t *testing.T) {
	c := di.NewContainer(runtimeconfig.DefaultConfig())

	if c.ArticleService() == nil {
		t.Fatal("expected article service")
	}
	if _, ok := c.ArticleSource().(*articles.MemoryRepository); !ok {
		t.Fatalf("expected memory source, got %T", c.ArticleSource())
	}

	vm, err := c.ArticleService().List(context.Background(), blog.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vm.Articles) != 0 {
		t.Fatalf("expected empty listing, got %d", len(vm.Articles))
	}
}

func TestContainerWithArticleSource(t *testing.T) {
	repo := seedMemorySource(t)

	c := di.NewContainer(runtimeconfig.DefaultConfig(), di.WithArticleSource(repo))

	vm, err := c.ArticleService().List(context.Background(), blog.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vm.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(vm.Articles))
	}
	if vm.Featured == nil || vm.Featured.Link != "react-hooks" {
		t.Fatalf("expected featured react-hooks, got %+v", vm.Featured)
	}
}

func TestContainerMarkdownSource(t *testing.T) {
	dir := t.TempDir()
	content := "---\ntitle: Hello\nlink: hello\ndate: 2024-03-01T00:00:00Z\ntags: [React]\n---\n\nBody.\n"
	if err := os.WriteFile(filepath.Join(dir, "hello.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.Source.Provider = runtimeconfig.SourceMarkdown
	cfg.Markdown.ContentDir = dir

	c := di.NewContainer(cfg)
	if err := c.SourceError(); err != nil {
		t.Fatalf("source error: %v", err)
	}

	vm, err := c.ArticleService().List(context.Background(), blog.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vm.Articles) != 1 || vm.Articles[0].Link != "hello" {
		t.Fatalf("unexpected articles %+v", vm.Articles)
	}
}

func TestContainerIndexSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	payload := `{"articles": [{"link": "hello", "title": "Hello", "published_at": "2024-03-01T00:00:00Z"}]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.Source.Provider = runtimeconfig.SourceIndex
	cfg.Index.Path = path

	c := di.NewContainer(cfg)

	vm, err := c.ArticleService().List(context.Background(), blog.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vm.Articles) != 1 || vm.Articles[0].Link != "hello" {
		t.Fatalf("unexpected articles %+v", vm.Articles)
	}
}

func TestContainerPermalinks(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Permalinks = true
	cfg.Routes.Group = "frontend"
	cfg.Routes.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"article": "/blog/:slug",
					"list":    "/blog",
				},
			},
		},
	}

	c := di.NewContainer(cfg, di.WithArticleSource(seedMemorySource(t)))
	if c.PermalinkResolver() == nil {
		t.Fatal("expected permalink resolver")
	}

	vm, err := c.ArticleService().List(context.Background(), blog.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if vm.Articles[0].Permalink != "https://example.com/blog/react-hooks" {
		t.Fatalf("unexpected permalink %q", vm.Articles[0].Permalink)
	}
}

func TestContainerCommandsFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true

	c := di.NewContainer(cfg, di.WithArticleSource(seedMemorySource(t)))
	set := c.ArticleCommands()
	if set == nil || set.SyncIndex == nil {
		t.Fatal("expected sync-index handler")
	}

	path := filepath.Join(t.TempDir(), "articles.json")
	if err := set.SyncIndex.Execute(context.Background(), commandsSyncMessage(path)); err != nil {
		t.Fatalf("sync index: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected index written: %v", err)
	}
}

func TestContainerPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid config")
		}
	}()

	cfg := runtimeconfig.DefaultConfig()
	cfg.Source.Provider = "unknown"
	di.NewContainer(cfg)
}
