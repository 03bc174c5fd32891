package articles_test

import (
	"context"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/articles"
)

func newBlogRouteManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
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
	})
}

func TestPermalinkResolverArticleURL(t *testing.T) {
	resolver := articles.NewPermalinkResolver(articles.PermalinkOptions{
		Manager: newBlogRouteManager(),
		Group:   "frontend",
	})

	item := seedArticle("react-hooks", day(1), "React")
	url, err := resolver.ArticleURL(context.Background(), item)
	if err != nil {
		t.Fatalf("article url: %v", err)
	}
	if url != "https://example.com/blog/react-hooks" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestPermalinkResolverTagURL(t *testing.T) {
	resolver := articles.NewPermalinkResolver(articles.PermalinkOptions{
		Manager: newBlogRouteManager(),
		Group:   "frontend",
	})

	url, err := resolver.TagURL(context.Background(), "Webflow")
	if err != nil {
		t.Fatalf("tag url: %v", err)
	}
	if url != "https://example.com/blog?tag=Webflow" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestPermalinkResolverUnknownGroup(t *testing.T) {
	resolver := articles.NewPermalinkResolver(articles.PermalinkOptions{
		Manager: newBlogRouteManager(),
		Group:   "missing",
	})

	if _, err := resolver.ArticleURL(context.Background(), seedArticle("react-hooks", day(1))); err == nil {
		t.Fatal("expected lookup error for unknown group")
	}
}

func TestPermalinkResolverWithoutManager(t *testing.T) {
	resolver := articles.NewPermalinkResolver(articles.PermalinkOptions{})

	url, err := resolver.ArticleURL(context.Background(), seedArticle("react-hooks", day(1)))
	if err != nil {
		t.Fatalf("expected nil error without manager, got %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty url, got %q", url)
	}
}

func TestServiceListResolvesPermalinks(t *testing.T) {
	resolver := articles.NewPermalinkResolver(articles.PermalinkOptions{
		Manager: newBlogRouteManager(),
		Group:   "frontend",
	})

	repo := articles.NewMemoryRepository()
	ctx := context.Background()
	if _, err := repo.Create(ctx, seedArticle("react-hooks", day(2), "React")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, seedArticle("webflow-intro", day(1), "Webflow")); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := articles.NewService(repo, articles.WithPermalinks(resolver))

	vm, err := svc.List(ctx, blog.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if vm.Articles[0].Permalink != "https://example.com/blog/react-hooks" {
		t.Fatalf("unexpected permalink %q", vm.Articles[0].Permalink)
	}
	if vm.Featured == nil || vm.Featured.Permalink != "https://example.com/blog/react-hooks" {
		t.Fatalf("expected featured permalink, got %+v", vm.Featured)
	}
}
