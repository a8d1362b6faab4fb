package quizgen

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionListDef is the JSON Schema for a provider response: an array of
// question objects. Field-level checks stay in the per-item validation so
// a single malformed item is skipped instead of failing the whole batch.
var questionListDef = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// questionListSchema returns the compiled response schema.
func questionListSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const url = "schema://question-list.json"
		if err := c.AddResource(url, questionListDef); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}
