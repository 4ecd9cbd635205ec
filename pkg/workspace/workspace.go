package workspace

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Workspace is a named, immutable set of windows ready to be compiled into a
// command stream.
//
// Windows are keyed by name. A later window with the same name replaces the
// earlier definition but keeps the earlier position. Unnamed windows never
// collapse into each other.
type Workspace struct {
	name       string
	source     string
	windows    *orderedmap.OrderedMap[string, WindowDescriptor]
	duplicates []string
}

// New builds every window of a workspace, failing on the first invalid field.
func New(name string, windows []Window) (*Workspace, error) {
	if name == "" {
		return nil, &InvalidFieldError{Pane: -1, Field: "workspace", Reason: "is required"}
	}

	ws := &Workspace{
		name:    name,
		windows: orderedmap.New[string, WindowDescriptor](),
	}
	for i, w := range windows {
		wd, err := buildWindow(w, i)
		if err != nil {
			return nil, err
		}
		if _, present := ws.windows.Set(windowKey(w, i), wd); present {
			ws.duplicates = append(ws.duplicates, wd.Name())
		}
	}
	return ws, nil
}

func windowKey(w Window, index int) string {
	if w.Name != nil && *w.Name != "" {
		return "name:" + *w.Name
	}
	return fmt.Sprintf("index:%d", index)
}

// Name is the catalog lookup key.
func (ws *Workspace) Name() string { return ws.name }

// Source is the file the workspace was parsed from, if any.
func (ws *Workspace) Source() string { return ws.source }

// Duplicates lists window names that were defined more than once; the last
// definition of each is the one kept.
func (ws *Workspace) Duplicates() []string {
	return append([]string(nil), ws.duplicates...)
}

// Windows returns the window descriptors in creation order.
func (ws *Workspace) Windows() []WindowDescriptor {
	out := make([]WindowDescriptor, 0, ws.windows.Len())
	for pair := ws.windows.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Create returns the full command stream for the workspace. For each window
// in order it yields new-window, then its splits in declaration order, then
// select-layout if set. Every call returns an equal, freshly allocated stream.
func (ws *Workspace) Create() []Command {
	var cmds []Command
	for pair := ws.windows.Oldest(); pair != nil; pair = pair.Next() {
		cmds = append(cmds, pair.Value.Commands()...)
	}
	return cmds
}
