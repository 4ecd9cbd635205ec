// Package launcher resolves a workspace by name and runs its command stream.
package launcher

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/muxify/internal/catalog"
	"github.com/grovetools/muxify/pkg/workspace"
)

// Launcher creates workspaces from a catalog through a command runner.
type Launcher struct {
	catalog *catalog.Catalog
	runner  workspace.Runner
	logger  logrus.FieldLogger
}

func New(c *catalog.Catalog, runner workspace.Runner, logger logrus.FieldLogger) *Launcher {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		logger = l
	}
	return &Launcher{catalog: c, runner: runner, logger: logger}
}

// Plan returns the command stream of the named workspace without running it.
func (l *Launcher) Plan(name string) ([]workspace.Command, error) {
	ws, err := l.catalog.Find(name)
	if err != nil {
		return nil, err
	}
	return ws.Create(), nil
}

// Launch runs the named workspace's stream, one command at a time, and
// stops at the first command that fails.
func (l *Launcher) Launch(ctx context.Context, name string) error {
	ws, err := l.catalog.Find(name)
	if err != nil {
		return err
	}
	if l.runner == nil {
		return fmt.Errorf("no command runner configured")
	}

	stream := ws.Create()
	log := l.logger.WithFields(logrus.Fields{
		"workspace": ws.Name(),
		"source":    ws.Source(),
		"commands":  len(stream),
	})
	log.Debug("launching workspace")

	traced := workspace.RunnerFunc(func(ctx context.Context, args []string) error {
		log.WithField("args", workspace.Command(args).String()).Debug("running tmux command")
		return l.runner.Run(ctx, args)
	})

	if err := workspace.Execute(ctx, traced, stream); err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", ws.Name(), err)
	}
	return nil
}
