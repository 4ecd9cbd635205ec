package tmux

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/grovetools/core/command"
)

// DefaultBinary is the multiplexer executable looked up in PATH.
const DefaultBinary = "tmux"

type Client struct {
	binary   string
	socket   string
	executor command.Executor
	builder  *command.SafeBuilder
}

// Option configures a Client.
type Option func(*Client)

// WithBinary uses binary (a name in PATH or a path) instead of tmux.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithSocket talks to the server on the named socket (tmux -L).
func WithSocket(name string) Option {
	return func(c *Client) { c.socket = name }
}

// WithExecutor creates processes through e instead of os/exec directly.
func WithExecutor(e command.Executor) Option {
	return func(c *Client) { c.executor = e }
}

func NewClient(opts ...Option) (*Client, error) {
	c := &Client{binary: DefaultBinary}
	for _, opt := range opts {
		opt(c)
	}

	path, err := exec.LookPath(c.binary)
	if err != nil {
		return nil, fmt.Errorf("%s command not found in PATH: %w", c.binary, err)
	}
	c.binary = path

	if c.executor != nil {
		c.builder = command.NewSafeBuilderWithExecutor(c.executor)
	} else {
		c.builder = command.NewSafeBuilder()
	}
	return c, nil
}

// Run executes one tmux command. It satisfies workspace.Runner.
func (c *Client) Run(ctx context.Context, args []string) error {
	_, err := c.run(ctx, args...)
	return err
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	if c.socket != "" {
		args = append([]string{"-L", c.socket}, args...)
	}

	cmd, err := c.builder.Build(ctx, c.binary, args...)
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}

	execCmd := cmd.Exec()
	output, err := execCmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("tmux command failed: %w, output: %s", err, strings.TrimSpace(string(output)))
	}

	return string(output), nil
}
