package articles

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Article is one blog post's metadata record, not its full body content.
// Records are constructed once per load by a Source and are treated as
// immutable for the duration of a render.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID          uuid.UUID  `bun:",pk,type:uuid"              json:"id"`
	Link        string     `bun:"link,notnull,unique"        json:"link"`
	Slug        string     `bun:"slug,notnull"               json:"slug"`
	Title       string     `bun:"title,notnull"              json:"title"`
	Description string     `bun:"description"                json:"description,omitempty"`
	Excerpt     string     `bun:"excerpt"                    json:"excerpt,omitempty"`
	Image       *string    `bun:"image"                      json:"image,omitempty"`
	PublishedAt time.Time  `bun:"published_at,notnull"       json:"published_at"`
	Author      string     `bun:"author"                     json:"author,omitempty"`
	Tags        []string   `bun:"tags,type:jsonb"            json:"tags,omitempty"`
	Draft       bool       `bun:"draft,notnull,default:false" json:"draft"`
	Checksum    []byte     `bun:"checksum"                   json:"-"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero"        json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	// Permalink is resolved by the listing service when a route manager is
	// configured. It is never persisted.
	Permalink string `bun:"-" json:"permalink,omitempty"`
}

// TagCount pairs a tag label with the number of articles referencing it.
// Entries are derived from the full article set on every invocation and are
// never persisted.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ViewModel is the render-ready payload handed to presentation. Articles keep
// the post-filter subset in source order, Featured carries the hero item when
// no filter is active, and Tags always reflects the full unfiltered set so the
// filter UI never loses options as filters are applied.
type ViewModel struct {
	Articles []*Article `json:"articles"`
	Featured *Article   `json:"featured,omitempty"`
	Tags     []TagCount `json:"tags"`
	Filtered bool       `json:"filtered"`
}
