package workspace

import (
	"github.com/invopop/jsonschema"
)

// Document describes the on-disk shape of a workspace definition. It is used
// to publish a JSON schema for editors; parsing goes through Parse.
type Document struct {
	Workspace string           `json:"workspace" jsonschema:"description=Name used to launch the workspace"`
	Windows   []WindowDocument `json:"windows,omitempty"`
}

type WindowDocument struct {
	Name    string         `json:"name,omitempty" jsonschema:"description=Window name; tmux picks one when omitted"`
	Command string         `json:"command,omitempty" jsonschema:"description=Initial command of the window"`
	Layout  string         `json:"layout,omitempty" jsonschema:"description=Layout applied after all panes exist,example=tiled,example=main-horizontal"`
	Panes   []PaneDocument `json:"panes,omitempty"`
}

type PaneDocument struct {
	Split      string `json:"split,omitempty" jsonschema:"enum=h,enum=v,default=h"`
	Percentage *int   `json:"percentage,omitempty" jsonschema:"minimum=1,maximum=99"`
	Target     *int   `json:"target,omitempty" jsonschema:"minimum=0,description=Index of the pane to split"`
	Command    string `json:"command,omitempty" jsonschema:"description=Command run in the new pane"`
}

// JSONSchemaExtend closes pane objects. Parse rejects unknown pane keys but
// ignores unknown window and top-level keys.
func (PaneDocument) JSONSchemaExtend(s *jsonschema.Schema) {
	s.AdditionalProperties = jsonschema.FalseSchema
}

// Schema reflects the JSON schema of a workspace definition document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "json",
	}

	schema := r.Reflect(&Document{})
	schema.Title = "muxify workspace"
	schema.Description = "Windows and panes created in the active tmux session by `muxify <workspace>`."
	return schema
}
