package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a workspace definition document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var formatsByExt = map[string]Format{
	".json":  FormatJSON,
	".jsonc": FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".toml":  FormatTOML,
}

// FormatForPath returns the document format implied by path's extension.
func FormatForPath(path string) (Format, bool) {
	f, ok := formatsByExt[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// ParseFile reads and parses one definition file. Every failure, including
// invalid fields, is returned as a *ParseError carrying the path.
func ParseFile(path string) (*Workspace, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unsupported extension %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	ws, err := Parse(data, format)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	ws.source = path
	return ws, nil
}

// Parse decodes a definition document and builds its Workspace.
func Parse(data []byte, format Format) (*Workspace, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

func decode(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if doc == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return doc, nil
}

var paneFields = map[string]bool{
	"split":      true,
	"percentage": true,
	"target":     true,
	"command":    true,
}

func fromDocument(doc map[string]any) (*Workspace, error) {
	rawName, ok := doc["workspace"]
	if !ok {
		return nil, fmt.Errorf("missing required field %q", "workspace")
	}
	name, ok := rawName.(string)
	if !ok || name == "" {
		return nil, &InvalidFieldError{Pane: -1, Field: "workspace", Value: rawName, Reason: "must be a non-empty string"}
	}

	var windows []Window
	if raw, ok := doc["windows"]; ok {
		objs, ok := objectList(raw)
		if !ok {
			return nil, &InvalidFieldError{Pane: -1, Field: "windows", Value: raw, Reason: "must be a list of objects"}
		}
		for i, obj := range objs {
			w, err := windowFromObject(obj, i)
			if err != nil {
				return nil, err
			}
			windows = append(windows, w)
		}
	}

	return New(name, windows)
}

func windowFromObject(obj map[string]any, index int) (Window, error) {
	var w Window
	var err error

	fieldErr := func(field string, value any, reason string) error {
		return &InvalidFieldError{Window: windowLabel(w.Name, index), Pane: -1, Field: field, Value: value, Reason: reason}
	}

	if w.Name, err = optionalString(obj, "name"); err != nil {
		return Window{}, fieldErr("name", obj["name"], "must be a string")
	}
	if w.Command, err = optionalString(obj, "command"); err != nil {
		return Window{}, fieldErr("command", obj["command"], "must be a string")
	}
	if w.Layout, err = optionalString(obj, "layout"); err != nil {
		return Window{}, fieldErr("layout", obj["layout"], "must be a string")
	}

	raw, ok := obj["panes"]
	if !ok {
		return w, nil
	}
	objs, ok := objectList(raw)
	if !ok {
		return Window{}, fieldErr("panes", raw, "must be a list of objects")
	}
	for i, p := range objs {
		pane, err := paneFromObject(p)
		if err != nil {
			err.Window = windowLabel(w.Name, index)
			err.Pane = i
			return Window{}, err
		}
		w.Panes = append(w.Panes, pane)
	}
	return w, nil
}

func paneFromObject(obj map[string]any) (Pane, *InvalidFieldError) {
	var p Pane
	for key := range obj {
		if !paneFields[key] {
			return Pane{}, &InvalidFieldError{Field: key, Reason: "unknown pane field"}
		}
	}

	if raw, ok := obj["split"]; ok {
		s, ok := raw.(string)
		if !ok {
			return Pane{}, &InvalidFieldError{Field: "split", Value: raw, Reason: `must be "h" or "v"`}
		}
		p.Split = Split(s)
	} else {
		p.Split = SplitHorizontal
	}

	if raw, ok := obj["percentage"]; ok {
		n, ok := asInt(raw)
		if !ok {
			return Pane{}, &InvalidFieldError{Field: "percentage", Value: raw, Reason: "must be an integer"}
		}
		p.Percentage = &n
	}
	if raw, ok := obj["target"]; ok {
		n, ok := asInt(raw)
		if !ok {
			return Pane{}, &InvalidFieldError{Field: "target", Value: raw, Reason: "must be an integer"}
		}
		p.Target = &n
	}

	cmd, err := optionalString(obj, "command")
	if err != nil {
		return Pane{}, &InvalidFieldError{Field: "command", Value: obj["command"], Reason: "must be a string"}
	}
	p.Command = cmd
	return p, nil
}

func optionalString(obj map[string]any, key string) (*string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%s is %T", key, raw)
	}
	return &s, nil
}

// objectList accepts the list shapes produced by the json, yaml and toml
// decoders.
func objectList(v any) ([]map[string]any, bool) {
	switch list := v.(type) {
	case []map[string]any:
		return list, true
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, obj)
		}
		return out, true
	}
	return nil, false
}

// asInt accepts integer values only. Floats are rejected in every format,
// including whole ones such as 50.0.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int64ToInt(n)
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int64ToInt(i)
	}
	return 0, false
}

func int64ToInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}
