package config

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{FieldNameTag: "yaml", RequiredFromJSONSchemaTags: true}
	schema := r.Reflect(&Config{})
	schema.Title = "feedrank configuration"
	return schema
}

// SchemaJSON returns the indented JSON representation of the config schema
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
