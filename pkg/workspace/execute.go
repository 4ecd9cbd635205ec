package workspace

import "context"

// Runner executes one multiplexer command.
type Runner interface {
	Run(ctx context.Context, args []string) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, args []string) error

func (f RunnerFunc) Run(ctx context.Context, args []string) error { return f(ctx, args) }

// Execute runs stream in order and stops at the first failure, returning it
// as an *ExecutionFault. Nothing already executed is rolled back.
func Execute(ctx context.Context, r Runner, stream []Command) error {
	for i, cmd := range stream {
		if err := r.Run(ctx, cmd.clone()); err != nil {
			return &ExecutionFault{Index: i, Args: cmd, Err: err}
		}
	}
	return nil
}
