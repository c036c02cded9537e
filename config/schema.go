package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// runSchema is the JSON Schema for a run configuration document. It
// catches structural mistakes (wrong types, unknown operators) before
// the document is decoded into a Run.
const runSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name": { "type": "string" },
		"filter": { "type": "string" },
		"reporter": { "type": "string" },
		"noAnalysis": { "type": "boolean" },
		"samples": { "type": "integer", "minimum": 1 },
		"params": {
			"type": "object",
			"additionalProperties": false,
			"required": ["name", "op", "init", "step", "count"],
			"properties": {
				"name": { "type": "string", "minLength": 1 },
				"op": { "enum": ["+", "*"] },
				"init": { "type": "string" },
				"step": { "type": "string" },
				"count": { "type": "integer", "minimum": 0 }
			}
		}
	}
}`

var compiledRunSchema = jsonschema.MustCompileString("run-config.json", runSchema)

// CheckDocument validates a raw configuration document against the run
// schema. The document format is determined by the file extension in
// path, defaulting to YAML.
func CheckDocument(data []byte, path string) error {
	var doc interface{}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("invalid YAML: %w", err)
		}
		// The schema library expects json.Unmarshal value shapes, so
		// round-trip the YAML document through JSON.
		normalized, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("invalid YAML document: %w", err)
		}
		if err := json.Unmarshal(normalized, &doc); err != nil {
			return fmt.Errorf("invalid YAML document: %w", err)
		}
	}

	if err := compiledRunSchema.Validate(doc); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
