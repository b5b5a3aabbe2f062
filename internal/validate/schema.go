package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Structural schemas for the persisted payload JSON. Domain rules (amount
// positivity, 22-digit identifiers) live in the validator; these only pin
// the shape the persistence layer relies on.
var payrollSchema = map[string]any{
	"type":     "object",
	"required": []any{"period", "entries", "total"},
	"properties": map[string]any{
		"period":          map[string]any{"type": "string", "pattern": `^\d{2}/\d{4}$`},
		"period_fallback": map[string]any{"type": "boolean"},
		"total":           map[string]any{"type": "string"},
		"entries": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"last_name", "first_name", "amount"},
				"properties": map[string]any{
					"last_name":       map[string]any{"type": "string", "minLength": 1},
					"first_name":      map[string]any{"type": "string", "minLength": 1},
					"national_id":     map[string]any{"type": "string", "pattern": `^\d{7,8}$`},
					"bank_account_id": map[string]any{"type": "string", "pattern": `^\d{22}$`},
					"amount":          map[string]any{"type": "string"},
				},
			},
		},
	},
}

var transferSchema = map[string]any{
	"type":     "object",
	"required": []any{"amount", "currency", "operation_date"},
	"properties": map[string]any{
		"amount":            map[string]any{"type": "string"},
		"source_account_id": map[string]any{"type": "string", "pattern": `^\d{22}$`},
		"dest_account_id":   map[string]any{"type": "string", "pattern": `^\d{22}$`},
		"reference":         map[string]any{"type": "string"},
		"currency":          map[string]any{"type": "string", "enum": []any{"ARS", "USD"}},
		"operation_date":    map[string]any{"type": "string"},
		"date_fallback":     map[string]any{"type": "boolean"},
	},
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
