package di_test

import (
	"context"
	"testing"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/articles"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
)

func TestContainerBunSource(t *testing.T) {
	ctx := context.Background()

	db, err := di.OpenSQLite("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := db.NewCreateTable().Model((*blog.Article)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := articles.NewBunArticleRepository(db)
	for _, record := range []*blog.Article{
		{Link: "react-hooks", Slug: "react-hooks", Title: "React Hooks", PublishedAt: day(3), Tags: []string{"React"}},
		{Link: "webflow-intro", Slug: "webflow-intro", Title: "Webflow Intro", PublishedAt: day(2), Tags: []string{"Webflow"}},
	} {
		if _, err := repo.Create(ctx, record); err != nil {
			t.Fatalf("seed %s: %v", record.Link, err)
		}
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.Source.Provider = runtimeconfig.SourceBun
	cfg.Storage.DSN = "file::memory:?cache=shared"
	cfg.Cache.Enabled = false

	c := di.NewContainer(cfg, di.WithBunDB(db))
	if err := c.SourceError(); err != nil {
		t.Fatalf("source error: %v", err)
	}

	vm, err := c.ArticleService().List(ctx, blog.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vm.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(vm.Articles))
	}
	if vm.Articles[0].Link != "react-hooks" {
		t.Fatalf("expected newest first, got %s", vm.Articles[0].Link)
	}

	got, err := repo.GetByLink(ctx, "webflow-intro")
	if err != nil {
		t.Fatalf("get by link: %v", err)
	}
	if got.Link != "webflow-intro" {
		t.Fatalf("unexpected record %+v", got)
	}
}
