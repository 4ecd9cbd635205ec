package workspace

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/invopop/jsonschema"
)

func TestSchema(t *testing.T) {
	schema := Schema()
	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("failed to marshal schema: %v", err)
	}
	out := string(data)

	for _, want := range []string{`"workspace"`, `"windows"`, `"percentage"`, `"maximum":99`} {
		if !strings.Contains(out, want) {
			t.Errorf("schema missing %s: %s", want, out)
		}
	}

	found := false
	for _, req := range schema.Required {
		if req == "workspace" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected workspace to be required, got %v", schema.Required)
	}
}

func TestSchemaAdditionalProperties(t *testing.T) {
	schema := Schema()

	if schema.AdditionalProperties != nil {
		t.Errorf("top level should allow unknown keys, got %v", schema.AdditionalProperties)
	}
	window, ok := schema.Definitions["WindowDocument"]
	if !ok {
		t.Fatalf("missing WindowDocument definition: %v", schema.Definitions)
	}
	if window.AdditionalProperties != nil {
		t.Errorf("windows should allow unknown keys, got %v", window.AdditionalProperties)
	}
	pane, ok := schema.Definitions["PaneDocument"]
	if !ok {
		t.Fatalf("missing PaneDocument definition: %v", schema.Definitions)
	}
	if pane.AdditionalProperties != jsonschema.FalseSchema {
		t.Errorf("panes should reject unknown keys, got %v", pane.AdditionalProperties)
	}

	// The parser agrees with the schema.
	doc := `{"workspace": "w", "note": 1, "windows": [{"name": "a", "color": "red", "panes": [{}]}]}`
	if _, err := Parse([]byte(doc), FormatJSON); err != nil {
		t.Errorf("unknown window and top-level keys should be ignored: %v", err)
	}
	doc = `{"workspace": "w", "windows": [{"panes": [{"size": 3}]}]}`
	if _, err := Parse([]byte(doc), FormatJSON); err == nil {
		t.Error("unknown pane key should be rejected")
	}
}
