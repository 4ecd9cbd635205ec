package workspace

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type recordingRunner struct {
	calls  [][]string
	failAt int
}

func (r *recordingRunner) Run(ctx context.Context, args []string) error {
	r.calls = append(r.calls, args)
	if r.failAt > 0 && len(r.calls) == r.failAt {
		return errors.New("exit status 1")
	}
	return nil
}

func TestExecuteRunsInOrder(t *testing.T) {
	stream := []Command{
		{"new-window", "-n", "a"},
		{"split-window", "-h"},
		{"select-layout", "tiled"},
	}
	r := &recordingRunner{}
	if err := Execute(context.Background(), r, stream); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := [][]string{
		{"new-window", "-n", "a"},
		{"split-window", "-h"},
		{"select-layout", "tiled"},
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("runner saw %q, want %q", r.calls, want)
	}
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	stream := []Command{
		{"new-window"},
		{"split-window", "-v"},
		{"split-window", "-h"},
	}
	r := &recordingRunner{failAt: 2}
	err := Execute(context.Background(), r, stream)

	var fault *ExecutionFault
	if !errors.As(err, &fault) {
		t.Fatalf("expected *ExecutionFault, got %v", err)
	}
	if fault.Index != 1 {
		t.Errorf("expected fault at index 1, got %d", fault.Index)
	}
	if !reflect.DeepEqual(fault.Args, Command{"split-window", "-v"}) {
		t.Errorf("unexpected fault args %q", fault.Args)
	}
	if len(r.calls) != 2 {
		t.Errorf("expected 2 commands attempted, got %d", len(r.calls))
	}
}

func TestRunnerFunc(t *testing.T) {
	var got []string
	r := RunnerFunc(func(ctx context.Context, args []string) error {
		got = args
		return nil
	})
	if err := Execute(context.Background(), r, []Command{{"select-layout", "even-horizontal"}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"select-layout", "even-horizontal"}) {
		t.Errorf("unexpected args %q", got)
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{"new-window", "-n", "editor"}, "new-window -n editor"},
		{Command{"split-window", "-h", "npm run dev"}, "split-window -h 'npm run dev'"},
		{Command{"new-window", "echo it's"}, `new-window 'echo it'"'"'s'`},
		{Command{"new-window", ""}, "new-window ''"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}
