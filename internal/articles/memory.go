package articles

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	blog "github.com/goliatone/go-blog/articles"
	"github.com/goliatone/go-blog/internal/identity"
)

// MemoryRepository is an in-memory implementation for scaffolding and tests.
// Load hands out cloned records so concurrent renders never observe each
// other's view-model decorations.
type MemoryRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*blog.Article
	linkIndex map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory article repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records:   make(map[uuid.UUID]*blog.Article),
		linkIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied article, deriving a deterministic ID from the
// link when none is set.
func (m *MemoryRepository) Create(_ context.Context, record *blog.Article) (*blog.Article, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneArticle(record)
	if copied.ID == uuid.Nil {
		copied.ID = identity.ArticleUUID(copied.Link)
	}
	m.records[copied.ID] = copied
	m.linkIndex[copied.Link] = copied.ID
	return cloneArticle(copied), nil
}

// GetByID retrieves an article by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*blog.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &blog.NotFoundError{Resource: "article", Key: id.String()}
	}
	return cloneArticle(rec), nil
}

// GetByLink retrieves an article by its unique link, returning NotFoundError when absent.
func (m *MemoryRepository) GetByLink(_ context.Context, link string) (*blog.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.linkIndex[link]
	if !ok {
		return nil, &blog.NotFoundError{Resource: "article", Key: link}
	}
	return cloneArticle(m.records[id]), nil
}

// Load returns every article, most recent first. It satisfies the Source
// contract consumed by the listing service.
func (m *MemoryRepository) Load(_ context.Context) ([]*blog.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*blog.Article, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, cloneArticle(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}

func cloneArticle(src *blog.Article) *blog.Article {
	if src == nil {
		return nil
	}

	copied := *src
	if len(src.Tags) > 0 {
		copied.Tags = append([]string(nil), src.Tags...)
	}
	if len(src.Checksum) > 0 {
		copied.Checksum = append([]byte(nil), src.Checksum...)
	}
	if src.Image != nil {
		image := *src.Image
		copied.Image = &image
	}
	if src.DeletedAt != nil {
		deleted := *src.DeletedAt
		copied.DeletedAt = &deleted
	}
	return &copied
}
