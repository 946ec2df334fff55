package questionbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionSchemaURL = "schema://sat-question.json"

// questionSchema describes one record of a section array in the dataset
const questionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "domain", "question"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "domain": {"type": "string"},
    "difficulty": {"type": "string"},
    "question": {
      "type": "object",
      "required": ["question", "choices", "correct_answer"],
      "properties": {
        "question": {"type": "string", "minLength": 1},
        "choices": {
          "type": "object",
          "minProperties": 1,
          "additionalProperties": {"type": "string"}
        },
        "explanation": {"type": "string"},
        "correct_answer": {"type": "string", "minLength": 1}
      }
    }
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func recordSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(questionSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add question schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(questionSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateRecord checks a raw dataset record against the question schema
func validateRecord(raw json.RawMessage) error {
	schema, err := recordSchema()
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
