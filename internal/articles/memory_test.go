package articles_test

import (
	"context"
	"errors"
	"testing"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/articles"
	"github.com/google/uuid"
)

func TestMemoryRepositoryCreateDerivesDeterministicID(t *testing.T) {
	repo := articles.NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, seedArticle("react-hooks", day(1), "React"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected derived identifier")
	}

	again := articles.NewMemoryRepository()
	second, err := again.Create(ctx, seedArticle("react-hooks", day(1), "React"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != second.ID {
		t.Fatalf("expected link-derived IDs to match: %s vs %s", created.ID, second.ID)
	}
}

func TestMemoryRepositoryCreateValidates(t *testing.T) {
	repo := articles.NewMemoryRepository()

	_, err := repo.Create(context.Background(), &blog.Article{Title: "no link"})
	if !errors.Is(err, blog.ErrArticleMalformed) {
		t.Fatalf("expected ErrArticleMalformed, got %v", err)
	}
}

func TestMemoryRepositoryGetByLink(t *testing.T) {
	repo := articles.NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, seedArticle("webflow-intro", day(2), "Webflow")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByLink(ctx, "webflow-intro")
	if err != nil {
		t.Fatalf("get by link: %v", err)
	}
	if got.Link != "webflow-intro" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := repo.GetByLink(ctx, "missing"); !errors.Is(err, blog.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestMemoryRepositoryLoadOrdersByDate(t *testing.T) {
	repo := articles.NewMemoryRepository()
	ctx := context.Background()

	for _, record := range []*blog.Article{
		seedArticle("oldest", day(1)),
		seedArticle("newest", day(9)),
		seedArticle("middle", day(5)),
	} {
		if _, err := repo.Create(ctx, record); err != nil {
			t.Fatalf("create %s: %v", record.Link, err)
		}
	}

	items, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	for i, link := range want {
		if items[i].Link != link {
			t.Fatalf("position %d: expected %s, got %s", i, link, items[i].Link)
		}
	}
}

func TestMemoryRepositoryLoadReturnsClones(t *testing.T) {
	repo := articles.NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, seedArticle("react-hooks", day(1), "React")); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	first[0].Permalink = "https://example.com/react-hooks"
	first[0].Tags[0] = "mutated"

	second, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if second[0].Permalink != "" {
		t.Fatal("expected stored record to be isolated from decoration")
	}
	if second[0].Tags[0] != "React" {
		t.Fatalf("expected stored tags untouched, got %v", second[0].Tags)
	}
}
