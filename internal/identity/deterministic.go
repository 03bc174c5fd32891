package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArticleUUID derives an article identifier from its link, the record's
// unique key. Repeated loads of the same source yield identical IDs.
func ArticleUUID(link string) uuid.UUID {
	return UUID("go-blog:article:" + strings.TrimSpace(link))
}

// AuthorUUID derives a stable identifier for an external author reference.
func AuthorUUID(author string) uuid.UUID {
	return UUID("go-blog:author:" + strings.ToLower(strings.TrimSpace(author)))
}
