package ccli

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ParseAndRun parses tokens against the command tree and runs the command the parse ended on. A
// convenience function that combines [Parse] and [Run] into a single call. tokens is typically
// os.Args, program name included. See [Parse] and [Run] for more details.
func ParseAndRun(
	ctx context.Context,
	root *Command,
	tokens []string,
	options *RunOptions,
) error {
	var parseOptions *ParseOptions
	if options != nil {
		parseOptions = &options.ParseOptions
	}
	if err := Parse(root, tokens, parseOptions); err != nil {
		return err
	}
	return Run(ctx, root, options)
}

// RunOptions specifies options for parsing and running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// ParseOptions is used by [ParseAndRun] and ignored by [Run].
	ParseOptions
}

// Run executes the command selected by the last [Parse] of root. A command without an Exec
// function is not an error: Run returns nil without doing anything. The error returned by Exec is
// returned unchanged.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Run(ctx context.Context, root *Command, options *RunOptions) error {
	if root == nil {
		return fmt.Errorf("failed to run: %w", ErrNilRoot)
	}
	selected := root.selected
	if selected == nil {
		return fmt.Errorf("failed to run %q: %w", root.Name, ErrNotParsed)
	}
	if selected.Exec == nil {
		return nil
	}
	options = checkAndSetRunOptions(options)
	state := &State{
		Command: selected,
		Args:    selected.Args(),
		Stdin:   options.Stdin,
		Stdout:  options.Stdout,
		Stderr:  options.Stderr,
	}
	return selected.Exec(ctx, state)
}

func checkAndSetRunOptions(options *RunOptions) *RunOptions {
	opt := &RunOptions{}
	if options != nil {
		*opt = *options
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
