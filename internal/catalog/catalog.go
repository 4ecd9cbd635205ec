// Package catalog discovers workspace definition files in a directory and
// indexes the ones that parse.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/muxify/pkg/workspace"
)

// ParseFunc turns one definition file into a workspace.
type ParseFunc func(path string) (*workspace.Workspace, error)

// Options controls discovery.
type Options struct {
	// Extensions are the recognized file extensions, including the dot.
	// Defaults to .json.
	Extensions []string
	// Parse defaults to workspace.ParseFile.
	Parse ParseFunc
	// Logger receives one warning per skipped file. Defaults to a logrus
	// logger on stderr at warn level.
	Logger logrus.FieldLogger
}

// Catalog holds the workspaces loaded from one directory, in load order.
type Catalog struct {
	dir        string
	workspaces []*workspace.Workspace
	errors     []*workspace.ParseError
}

// Load scans dir and parses every file with a recognized extension. A file
// that fails to parse is logged, recorded in Errors and skipped. Only an
// unreadable directory fails the load.
func Load(dir string, opts Options) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace directory: %w", err)
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".json"}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExtension(entry.Name(), exts) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	c := Build(paths, opts)
	c.dir = dir
	return c, nil
}

// Build parses each path in order and folds the results into a catalog.
func Build(paths []string, opts Options) *Catalog {
	parse := opts.Parse
	if parse == nil {
		parse = workspace.ParseFile
	}
	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger()
	}

	c := &Catalog{}
	seen := make(map[string]string)
	for _, path := range paths {
		ws, err := parse(path)
		if err != nil {
			pe := asParseError(path, err)
			logger.WithField("path", path).WithError(pe.Err).Warn("skipping workspace definition")
			c.errors = append(c.errors, pe)
			continue
		}

		if first, ok := seen[ws.Name()]; ok {
			logger.WithFields(logrus.Fields{
				"workspace": ws.Name(),
				"path":      path,
				"first":     first,
			}).Warn("workspace name already defined, later definition is unreachable")
		} else {
			seen[ws.Name()] = path
		}
		for _, dup := range ws.Duplicates() {
			logger.WithFields(logrus.Fields{
				"workspace": ws.Name(),
				"window":    dup,
			}).Warn("duplicate window name, last definition wins")
		}

		c.workspaces = append(c.workspaces, ws)
	}
	return c
}

func asParseError(path string, err error) *workspace.ParseError {
	var pe *workspace.ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return &workspace.ParseError{Path: path, Err: err}
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func defaultLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// Dir is the scanned directory, empty for catalogs made with Build.
func (c *Catalog) Dir() string { return c.dir }

// Find returns the first loaded workspace called name.
func (c *Catalog) Find(name string) (*workspace.Workspace, error) {
	for _, ws := range c.workspaces {
		if ws.Name() == name {
			return ws, nil
		}
	}
	return nil, &workspace.NotFoundError{Name: name}
}

// Names lists workspace names in load order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.workspaces))
	for i, ws := range c.workspaces {
		names[i] = ws.Name()
	}
	return names
}

// Workspaces returns the loaded workspaces in load order.
func (c *Catalog) Workspaces() []*workspace.Workspace {
	return append([]*workspace.Workspace(nil), c.workspaces...)
}

// Errors returns the parse failures of skipped files.
func (c *Catalog) Errors() []*workspace.ParseError {
	return append([]*workspace.ParseError(nil), c.errors...)
}

// Len reports how many workspaces loaded.
func (c *Catalog) Len() int { return len(c.workspaces) }
