package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/muxify/internal/catalog"
	"github.com/grovetools/muxify/internal/config"
	"github.com/grovetools/muxify/pkg/tmux"
)

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if workspaceDir != "" {
		cfg.WorkspaceDir = workspaceDir
	}
	if tmuxBinary != "" {
		cfg.TmuxBinary = tmuxBinary
	}
	if tmuxSocket != "" {
		cfg.TmuxSocket = tmuxSocket
	}
	return cfg, nil
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func loadCatalog(cfg *config.Config, logger logrus.FieldLogger) (*catalog.Catalog, error) {
	dir := cfg.ResolvedWorkspaceDir()
	c, err := catalog.Load(dir, catalog.Options{
		Extensions: cfg.Extensions,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load workspaces from %s: %w", dir, err)
	}
	return c, nil
}

func newTmuxClient(cfg *config.Config) (*tmux.Client, error) {
	client, err := tmux.NewClient(tmux.WithBinary(cfg.TmuxBinary), tmux.WithSocket(cfg.TmuxSocket))
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux client: %w", err)
	}
	return client, nil
}
