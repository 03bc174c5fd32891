// Package markdown implements the filesystem-backed article source: glob
// discovery, frontmatter extraction, and Goldmark rendering for excerpts.
package markdown
