package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema every bank file must satisfy. Structural
// checks only; the answer-in-options invariant is enforced by New.
const bankSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["question", "options", "answer", "explanation"],
		"additionalProperties": false,
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"minItems": 2,
				"items": {"type": "string", "minLength": 1}
			},
			"answer": {"type": "string", "minLength": 1},
			"explanation": {"type": "string"}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the bank schema once per process.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(bankSchema)))
		if err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://bank.json", doc); err != nil {
			schemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://bank.json")
	})
	return compiledSchema, schemaErr
}

// validateRaw checks raw bank JSON against the schema.
func validateRaw(raw []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
