package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// ArticleMeta is the structured frontmatter carried by a blog post file.
type ArticleMeta struct {
	Title       string
	Slug        string
	Link        string
	Description string
	Excerpt     string
	Image       string
	Tags        []string
	Author      string
	Date        time.Time
	Draft       bool
	Custom      map[string]any
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. The returned body has the frontmatter delimiters stripped.
func ParseFrontMatter(source []byte) (ArticleMeta, []byte, error) {
	var env metaEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &env)
	if err != nil {
		return ArticleMeta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToMeta(env), body, nil
}

type metaEnvelope struct {
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug"`
	Link        string         `yaml:"link"`
	Description string         `yaml:"description"`
	Excerpt     string         `yaml:"excerpt"`
	Image       string         `yaml:"image"`
	Tags        []string       `yaml:"tags"`
	Author      string         `yaml:"author"`
	Date        time.Time      `yaml:"date"`
	Draft       bool           `yaml:"draft"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToMeta(env metaEnvelope) ArticleMeta {
	return ArticleMeta{
		Title:       env.Title,
		Slug:        env.Slug,
		Link:        env.Link,
		Description: env.Description,
		Excerpt:     env.Excerpt,
		Image:       env.Image,
		Tags:        append([]string(nil), env.Tags...),
		Author:      env.Author,
		Date:        env.Date,
		Draft:       env.Draft,
		Custom:      cloneMap(env.Custom),
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
