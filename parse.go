package ccli

import (
	"fmt"
	"io"
	"log/slog"
)

// ParseOptions configures [Parse]. The zero value keeps the permissive behavior: nothing about
// the tokens is ever reported as an error.
type ParseOptions struct {
	// Strict rejects trees with duplicate sibling command names or duplicate option names on one
	// command, and reports a value-taking option that appears as the last token. In the
	// permissive default, duplicates resolve to the first registered entry and a trailing option
	// is left unset.
	Strict bool

	// Logger receives a debug record for every decision the scanner makes. Nil discards them.
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Parse scans tokens left to right against the tree rooted at root, setting option values and
// collecting positional arguments on the commands it visits. tokens[0] is the program name and is
// skipped. The options parameter may be nil.
//
// Each token is handled by the first rule that applies:
//
//  1. If the previous token was an int or string option, the token is that option's value.
//  2. If it names one of the current command's own options, that option is set (bool) or waits
//     for its value (int, string).
//  3. If subcommands may still be entered and it names a subcommand of the current command, the
//     scan moves into that subcommand.
//  4. Otherwise it is appended to the current command's positional arguments, and from then on
//     no subcommand is entered again.
//
// Option names are never inherited: only the current command's options are matched. When the
// scan finishes, the command it ended on is available from root.Selected() and is what [Run]
// dispatches. A strict Parse that fails leaves no command selected, so a following [Run] reports
// [ErrNotParsed] instead of running the result of an earlier parse.
func Parse(root *Command, tokens []string, options *ParseOptions) error {
	if root == nil {
		return fmt.Errorf("failed to parse: %w", ErrNilRoot)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("failed to parse: %w", ErrNoProgramName)
	}
	if options == nil {
		options = &ParseOptions{}
	}
	logger := options.Logger
	if logger == nil {
		logger = discardLogger
	}
	root.selected = nil
	if options.Strict {
		if err := validateNames(root); err != nil {
			return fmt.Errorf("failed to parse: %w", err)
		}
	}

	s := &scanner{
		current: root,
		descend: true,
		logger:  logger,
	}
	for _, token := range tokens[1:] {
		s.scan(token)
	}

	if s.pending != nil {
		logger.Debug("dangling option", "command", s.current.Path(), "option", s.pending.name)
		if options.Strict {
			return NewError(ErrDanglingOption, fmt.Errorf("command %q: option %q expects a value",
				s.current.Path(), s.pending.name))
		}
	}
	root.selected = s.current
	return nil
}

// scanner is the state of a single left-to-right pass over the tokens.
type scanner struct {
	current *Command
	// pending is an int or string option waiting for its value token.
	pending *Option
	// descend is cleared by the first positional argument and never set again.
	descend bool
	logger  *slog.Logger
}

func (s *scanner) scan(token string) {
	if s.pending != nil {
		s.pending.assign(token)
		s.logger.Debug("option value", "command", s.current.Path(), "option", s.pending.name, "value", token)
		s.pending = nil
		return
	}

	if o, ok := s.current.GetOption(token); ok {
		if o.takesValue() {
			s.pending = o
		} else {
			o.markSet()
		}
		s.logger.Debug("option", "command", s.current.Path(), "option", o.name, "kind", o.kind.String())
		return
	}

	if s.descend {
		if sub := s.current.findSubCommand(token); sub != nil {
			s.current = sub
			s.logger.Debug("descend", "command", sub.Path())
			return
		}
	}

	if s.descend {
		s.logger.Debug("commit", "command", s.current.Path(), "token", token)
		s.descend = false
	}
	s.current.AddArg(token)
}
