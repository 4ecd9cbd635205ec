package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/grovetools/muxify/internal/config"
	"github.com/grovetools/muxify/pkg/workspace"
)

func main() {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "toml",
	}

	schema := r.Reflect(&config.Config{})
	schema.Title = "muxify Configuration"
	schema.Description = "Schema for ~/.config/muxify/config.toml."

	// Every key has a default
	schema.Required = nil

	writeSchema("config.schema.json", schema)
	writeSchema("workspace.schema.json", workspace.Schema())
}

func writeSchema(path string, schema *jsonschema.Schema) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	// Write to the package root
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", path)
}
