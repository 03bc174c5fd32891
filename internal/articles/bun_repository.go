package articles

import (
	"context"
	"fmt"
	"sort"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	blog "github.com/goliatone/go-blog/articles"
)

// BunArticleRepository persists articles through go-repository-bun with
// optional read caching. It doubles as the DB-backed Source for the listing
// service: Load re-establishes the most-recent-first ordering on every call.
type BunArticleRepository struct {
	repo repository.Repository[*blog.Article]
}

func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return NewBunArticleRepositoryWithCache(db, nil, nil)
}

// NewBunArticleRepositoryWithCache constructs an article repository with optional caching.
func NewBunArticleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleRepository {
	base := NewArticleRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunArticleRepository{repo: wrapped}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *blog.Article) (*blog.Article, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Article, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "article", id.String())
	}
	return result, nil
}

func (r *BunArticleRepository) GetByLink(ctx context.Context, link string) (*blog.Article, error) {
	result, err := r.repo.GetByIdentifier(ctx, link)
	if err != nil {
		return nil, mapRepositoryError(err, "article", link)
	}
	return result, nil
}

// Load satisfies the Source contract. Failures surface as
// SourceUnavailableError so callers see a single error shape regardless of
// which source backs the listing.
func (r *BunArticleRepository) Load(ctx context.Context) ([]*blog.Article, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, &blog.SourceUnavailableError{Source: "bun", Err: err}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &blog.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
