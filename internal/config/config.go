// Package config loads the muxify launcher configuration.
package config

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultWorkspaceDir  = "~/.workspaces"
	DefaultWorkspaceName = "default"
)

// Config represents ~/.config/muxify/config.toml.
type Config struct {
	// WorkspaceDir is scanned for workspace definition files.
	WorkspaceDir string `toml:"workspace_dir"`
	// DefaultWorkspace is launched when no name is given.
	DefaultWorkspace string `toml:"default_workspace"`
	// TmuxBinary overrides the tmux executable.
	TmuxBinary string `toml:"tmux_binary"`
	// TmuxSocket selects a tmux server by socket name (tmux -L).
	TmuxSocket string `toml:"tmux_socket"`
	// Extensions lists the definition file extensions considered.
	Extensions []string `toml:"extensions"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		WorkspaceDir:     DefaultWorkspaceDir,
		DefaultWorkspace: DefaultWorkspaceName,
		TmuxBinary:       "tmux",
		Extensions:       []string{".json"},
	}
}

// DefaultPath returns the global config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "muxify", "config.toml"), nil
}

// Load reads path over the defaults. Only keys present in the file replace
// default values; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fileCfg Config
	meta, err := toml.Decode(string(data), &fileCfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if meta.IsDefined("workspace_dir") {
		cfg.WorkspaceDir = strings.TrimSpace(fileCfg.WorkspaceDir)
	}
	if meta.IsDefined("default_workspace") {
		cfg.DefaultWorkspace = strings.TrimSpace(fileCfg.DefaultWorkspace)
	}
	if meta.IsDefined("tmux_binary") {
		cfg.TmuxBinary = strings.TrimSpace(fileCfg.TmuxBinary)
	}
	if meta.IsDefined("tmux_socket") {
		cfg.TmuxSocket = strings.TrimSpace(fileCfg.TmuxSocket)
	}
	if meta.IsDefined("extensions") {
		cfg.Extensions = normalizeExtensions(fileCfg.Extensions)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// ResolvedWorkspaceDir returns WorkspaceDir with ~ expanded.
func (c *Config) ResolvedWorkspaceDir() string {
	return ExpandPath(c.WorkspaceDir)
}

// ExpandPath expands a leading ~/ to the home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
