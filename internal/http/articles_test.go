package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/articles"
	bloghttp "github.com/goliatone/go-blog/internal/http"
)

func day(n int) time.Time {
	return time.Date(2024, time.March, n, 0, 0, 0, 0, time.UTC)
}

func seedArticle(link string, published time.Time, tags ...string) *blog.Article {
	return &blog.Article{
		Link:        link,
		Slug:        link,
		Title:       link,
		PublishedAt: published,
		Tags:        tags,
	}
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	repo := articles.NewMemoryRepository()
	ctx := context.Background()
	for _, record := range []*blog.Article{
		seedArticle("react-hooks", day(3), "React"),
		seedArticle("webflow-intro", day(2), "Webflow"),
		seedArticle("react-state", day(1), "React"),
	} {
		if _, err := repo.Create(ctx, record); err != nil {
			t.Fatalf("seed %s: %v", record.Link, err)
		}
	}

	api := bloghttp.NewAPI(articles.NewService(repo))
	mux := http.NewServeMux()
	api.Register(mux, "/api/articles")
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestArticleListUnfiltered(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, "/api/articles")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var vm blog.ViewModel
	if err := json.Unmarshal(rec.Body.Bytes(), &vm); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vm.Articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(vm.Articles))
	}
	if vm.Featured == nil || vm.Featured.Link != "react-hooks" {
		t.Fatalf("expected featured react-hooks, got %+v", vm.Featured)
	}
	if vm.Filtered {
		t.Fatal("expected unfiltered response")
	}
}

func TestArticleListFilteredByTag(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, "/api/articles?tag=Webflow")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var vm blog.ViewModel
	if err := json.Unmarshal(rec.Body.Bytes(), &vm); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vm.Articles) != 1 || vm.Articles[0].Link != "webflow-intro" {
		t.Fatalf("unexpected filtered articles: %+v", vm.Articles)
	}
	if vm.Featured != nil {
		t.Fatal("expected featured suppressed when filtered")
	}
	if !vm.Filtered {
		t.Fatal("expected filtered flag")
	}
	if len(vm.Tags) != 2 {
		t.Fatalf("tag summary must cover the unfiltered set, got %d", len(vm.Tags))
	}
}

func TestArticleListRepeatedTags(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, "/api/articles?tag=React&tag=Webflow")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var vm blog.ViewModel
	if err := json.Unmarshal(rec.Body.Bytes(), &vm); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vm.Articles) != 3 {
		t.Fatalf("expected union of both tags, got %d articles", len(vm.Articles))
	}
}

func TestArticleGet(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, "/api/articles/react-hooks")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var record blog.Article
	if err := json.Unmarshal(rec.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.Link != "react-hooks" {
		t.Fatalf("unexpected article %+v", record)
	}
}

func TestArticleGetNotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, "/api/articles/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestArticleTags(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, "/api/articles/tags")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tags []blog.TagCount
	if err := json.Unmarshal(rec.Body.Bytes(), &tags); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[0].Tag != "React" || tags[0].Count != 2 {
		t.Fatalf("unexpected first tag %+v", tags[0])
	}
}

type failingSource struct{}

func (failingSource) Load(context.Context) ([]*blog.Article, error) {
	return nil, errors.New("backing store offline")
}

func TestArticleListSourceUnavailable(t *testing.T) {
	api := bloghttp.NewAPI(articles.NewService(failingSource{}))
	mux := http.NewServeMux()
	api.Register(mux, "/api/articles")

	rec := doRequest(t, mux, "/api/articles")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
