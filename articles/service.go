package articles

import "context"

// Source is the sole interface to content storage. Implementations load the
// full article metadata set in one call, most recent first; every downstream
// transform relies on that ordering. A source that cannot be read reports a
// SourceUnavailableError and never retries.
type Source interface {
	Load(ctx context.Context) ([]*Article, error)
}

// Service exposes the blog listing use cases.
type Service interface {
	// List computes the view model for the supplied filter request.
	List(ctx context.Context, req ListRequest) (*ViewModel, error)
	// Get returns a single article by its link, or a NotFoundError.
	Get(ctx context.Context, link string) (*Article, error)
	// Tags returns the tag vocabulary of the full article set.
	Tags(ctx context.Context) ([]TagCount, error)
}

// ListRequest carries the request-level filter input. Tags accepts the raw
// values from the boundary (absent, single, or repeated); normalization
// happens inside the listing transforms.
type ListRequest struct {
	Tags []string
}

// Validator is implemented by records that can check their own required
// fields. Sources apply it uniformly before admitting a record.
type Validator interface {
	Validate() error
}
