package articles

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	blog "github.com/goliatone/go-blog/articles"
)

func NewArticleRepository(db *bun.DB) repository.Repository[*blog.Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*blog.Article]{
		NewRecord: func() *blog.Article { return &blog.Article{} },
		GetID: func(a *blog.Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *blog.Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "link"
		},
		GetIdentifierValue: func(a *blog.Article) string {
			if a == nil {
				return ""
			}
			return a.Link
		},
	})
}
