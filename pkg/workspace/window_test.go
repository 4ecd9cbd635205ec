package workspace

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBuildWindowCreateArgs(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   Command
	}{
		{"bare", Window{}, Command{"new-window"}},
		{"name only", Window{Name: strPtr("editor")}, Command{"new-window", "-n", "editor"}},
		{"command only", Window{Command: strPtr("vim")}, Command{"new-window", "vim"}},
		{"name and command", Window{Name: strPtr("editor"), Command: strPtr("vim .")}, Command{"new-window", "-n", "editor", "vim ."}},
		{"empty name is absent", Window{Name: strPtr(""), Command: strPtr("")}, Command{"new-window"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wd, err := BuildWindow(tt.window)
			if err != nil {
				t.Fatalf("BuildWindow failed: %v", err)
			}
			if got := wd.CreateArgs(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CreateArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildWindowLayoutAfterPanes(t *testing.T) {
	wd, err := BuildWindow(Window{
		Name:   strPtr("dev"),
		Layout: strPtr("tiled"),
		Panes: []Pane{
			{Command: strPtr("htop")},
			{Split: SplitVertical, Percentage: intPtr(30)},
		},
	})
	if err != nil {
		t.Fatalf("BuildWindow failed: %v", err)
	}

	want := []Command{
		{"new-window", "-n", "dev"},
		{"split-window", "-h", "htop"},
		{"split-window", "-v", "-p", "30"},
		{"select-layout", "tiled"},
	}
	if got := wd.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("Commands() = %q, want %q", got, want)
	}

	layout, ok := wd.LayoutArgs()
	if !ok || !reflect.DeepEqual(layout, Command{"select-layout", "tiled"}) {
		t.Errorf("LayoutArgs() = %q, %v", layout, ok)
	}
}

func TestBuildWindowWithoutLayout(t *testing.T) {
	wd, err := BuildWindow(Window{Panes: []Pane{{}}})
	if err != nil {
		t.Fatalf("BuildWindow failed: %v", err)
	}
	if _, ok := wd.LayoutArgs(); ok {
		t.Error("expected no layout command")
	}
	if n := len(wd.Commands()); n != 2 {
		t.Errorf("expected 2 commands, got %d", n)
	}
}

func TestBuildWindowTagsPaneErrors(t *testing.T) {
	_, err := BuildWindow(Window{
		Name:  strPtr("logs"),
		Panes: []Pane{{}, {Percentage: intPtr(150)}},
	})
	var fe *InvalidFieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *InvalidFieldError, got %v", err)
	}
	if fe.Window != `"logs"` || fe.Pane != 1 || fe.Field != "percentage" {
		t.Errorf("unexpected error fields: %+v", fe)
	}
	if !strings.Contains(err.Error(), `window "logs": pane 1`) {
		t.Errorf("error message missing location: %v", err)
	}
}

func TestBuildWindowEmptyLayout(t *testing.T) {
	_, err := BuildWindow(Window{Layout: strPtr("")})
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}
