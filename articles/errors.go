package articles

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceUnavailable   = errors.New("articles: source unavailable")
	ErrArticleMalformed    = errors.New("articles: article record malformed")
	ErrArticleNotFound     = errors.New("articles: article not found")
	ErrLinkRequired        = errors.New("articles: link is required")
	ErrTitleRequired       = errors.New("articles: title is required")
	ErrPublishedAtRequired = errors.New("articles: publication date is required")
	ErrSlugInvalid         = errors.New("articles: slug contains invalid characters")
)

// SourceUnavailableError captures a content source that could not be read.
// The failure is surfaced to the caller as-is; retry and caching policy belong
// to the host build pipeline, not this module.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	if e == nil {
		return ErrSourceUnavailable.Error()
	}
	source := strings.TrimSpace(e.Source)
	if source == "" {
		source = "unknown"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: source=%s: %v", ErrSourceUnavailable.Error(), source, e.Err)
	}
	return fmt.Sprintf("%s: source=%s", ErrSourceUnavailable.Error(), source)
}

func (e *SourceUnavailableError) Unwrap() error {
	return ErrSourceUnavailable
}

// MalformedArticleError captures a record missing a required field. Sources
// skip such records with a logged warning; the error type exists so the skip
// decision can be reported uniformly.
type MalformedArticleError struct {
	Link  string
	Path  string
	Cause error
}

func (e *MalformedArticleError) Error() string {
	if e == nil {
		return ErrArticleMalformed.Error()
	}
	ref := strings.TrimSpace(e.Link)
	if ref == "" {
		ref = strings.TrimSpace(e.Path)
	}
	if ref == "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", ErrArticleMalformed.Error(), e.Cause)
		}
		return ErrArticleMalformed.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: record=%s: %v", ErrArticleMalformed.Error(), ref, e.Cause)
	}
	return fmt.Sprintf("%s: record=%s", ErrArticleMalformed.Error(), ref)
}

func (e *MalformedArticleError) Unwrap() error {
	return ErrArticleMalformed
}

// NotFoundError captures single-article lookups that matched nothing.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrArticleNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: %s=%s", ErrArticleNotFound.Error(), e.Resource, key)
	}
	return ErrArticleNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrArticleNotFound
}
