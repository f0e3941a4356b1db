package ccli

import (
	"context"
	"fmt"

	"github.com/google/shlex"
)

// SplitLine splits a shell-style command line into tokens and puts program in front, producing
// the token list [Parse] expects. Quoting and escaping follow POSIX shell rules, so
//
//	SplitLine("todo", `add --tag "work stuff" 'buy milk'`)
//
// yields ["todo", "add", "--tag", "work stuff", "buy milk"]. No expansion of any kind is done.
func SplitLine(program, line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split command line: %w", err)
	}
	return append([]string{program}, words...), nil
}

// ParseAndRunLine is [ParseAndRun] for a command line held in a single string, such as one read
// from a script or an interactive prompt. See [SplitLine].
func ParseAndRunLine(
	ctx context.Context,
	root *Command,
	program string,
	line string,
	options *RunOptions,
) error {
	tokens, err := SplitLine(program, line)
	if err != nil {
		return err
	}
	return ParseAndRun(ctx, root, tokens, options)
}
