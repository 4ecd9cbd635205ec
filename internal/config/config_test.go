package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefinedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `workspace_dir = "/srv/workspaces"
extensions = ["json", ".YAML", " "]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.WorkspaceDir != "/srv/workspaces" {
		t.Errorf("expected workspace dir override, got %q", cfg.WorkspaceDir)
	}
	if cfg.DefaultWorkspace != DefaultWorkspaceName {
		t.Errorf("expected default workspace to stay %q, got %q", DefaultWorkspaceName, cfg.DefaultWorkspace)
	}
	if cfg.TmuxBinary != "tmux" {
		t.Errorf("expected tmux binary default, got %q", cfg.TmuxBinary)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{".json", ".yaml"}) {
		t.Errorf("unexpected extensions %v", cfg.Extensions)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("workspace_directory = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "workspace_directory") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("workspace_dir = \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := map[string]string{
		"~":              home,
		"~/.workspaces":  filepath.Join(home, ".workspaces"),
		"/abs/path":      "/abs/path",
		"relative/~/dir": "relative/~/dir",
	}
	for in, want := range tests {
		if got := ExpandPath(in); got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", in, got, want)
		}
	}
}
