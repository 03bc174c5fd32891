package index

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrIndexInvalid marks an index document that failed schema validation.
var ErrIndexInvalid = errors.New("index: document invalid")

// indexSchema describes the generated article index document. Validation runs
// before mapping so a hand-edited or truncated index fails loudly instead of
// producing a half-empty listing.
const indexSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["articles"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "generated_at": {"type": "string"},
    "articles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["link", "title", "published_at"],
        "properties": {
          "link": {"type": "string", "minLength": 1},
          "slug": {"type": "string"},
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "excerpt": {"type": "string"},
          "image": {"type": "string"},
          "published_at": {"type": "string"},
          "author": {"type": "string"},
          "tags": {"type": "array", "items": {"type": "string"}},
          "draft": {"type": "boolean"},
          "checksum": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compileSchemaOnce  sync.Once
	indexSchemaResName = "article-index.json"
)

func compiledIndexSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(indexSchemaResName, strings.NewReader(indexSchema)); err != nil {
			compiledSchemaErr = err
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile(indexSchemaResName)
	})
	return compiledSchema, compiledSchemaErr
}

// ValidateDocument checks a decoded index document against the index schema.
func ValidateDocument(doc any) error {
	schema, err := compiledIndexSchema()
	if err != nil {
		return fmt.Errorf("index: compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrIndexInvalid, summariseValidation(err))
	}
	return nil
}

func summariseValidation(err error) string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return err.Error()
	}

	var parts []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return strings.Join(parts, "; ")
}
