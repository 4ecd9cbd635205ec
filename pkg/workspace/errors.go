package workspace

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidField matches any *InvalidFieldError via errors.Is.
	ErrInvalidField = errors.New("invalid field")
	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("workspace not found")
)

// ParseError reports a definition file that could not be turned into a
// Workspace. Err is either a decoding error or an *InvalidFieldError.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidFieldError describes a window or pane field whose value has the
// wrong shape. Window is the owning window's name (or its position when
// unnamed); Pane is the zero-based pane index, or -1 for window-level fields.
type InvalidFieldError struct {
	Window string
	Pane   int
	Field  string
	Value  any
	Reason string
}

func (e *InvalidFieldError) Error() string {
	var b strings.Builder
	if e.Window != "" {
		fmt.Fprintf(&b, "window %s: ", e.Window)
	}
	if e.Pane >= 0 {
		fmt.Fprintf(&b, "pane %d: ", e.Pane)
	}
	fmt.Fprintf(&b, "invalid field %q: %s", e.Field, e.Reason)
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %T %v)", e.Value, e.Value)
	}
	return b.String()
}

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidField }

// NotFoundError is returned when a catalog has no workspace with Name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown workspace: %s", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ExecutionFault reports the first command of a stream the runner failed to
// execute. Commands before Index have already taken effect.
type ExecutionFault struct {
	Index int
	Args  Command
	Err   error
}

func (e *ExecutionFault) Error() string {
	return fmt.Sprintf("command %d (%s) failed: %v", e.Index+1, e.Args, e.Err)
}

func (e *ExecutionFault) Unwrap() error { return e.Err }

func windowLabel(name *string, index int) string {
	if name != nil && *name != "" {
		return fmt.Sprintf("%q", *name)
	}
	return fmt.Sprintf("#%d", index)
}
