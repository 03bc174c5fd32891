package articles

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the fields every well-formed record must carry: link, title,
// and an orderable publication date. Sources reject records failing this check
// with a logged warning; the skip-and-warn policy is applied uniformly across
// every source implementation.
func (a *Article) Validate() error {
	if a == nil {
		return ErrArticleMalformed
	}

	err := validation.ValidateStruct(a,
		validation.Field(&a.Link, validation.Required.Error(ErrLinkRequired.Error())),
		validation.Field(&a.Title, validation.Required.Error(ErrTitleRequired.Error())),
		validation.Field(&a.PublishedAt, validation.Required.Error(ErrPublishedAtRequired.Error())),
		validation.Field(&a.Slug, validation.By(func(any) error {
			if a.Slug == "" {
				return nil
			}
			if !IsValidSlug(a.Slug) {
				return errors.New(ErrSlugInvalid.Error())
			}
			return nil
		})),
	)
	if err != nil {
		return &MalformedArticleError{Link: a.Link, Cause: err}
	}
	return nil
}
