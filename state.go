package ccli

import (
	"fmt"
	"io"
)

// State is what a command's [ExecFunc] receives: the command the parse ended on, its positional
// arguments and the I/O streams to use.
type State struct {
	// Command is the command being run.
	Command *Command

	// Args contains the positional arguments collected for Command.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// OptionType constrains the Go types an option value can be read as.
type OptionType interface {
	bool | int | string
}

// GetOption retrieves an option value by name, with type inference. The name is looked up on the
// running command first and then on each of its parents, so a handler can read options that were
// set before the scan descended. Example usage:
//
//	verbose := GetOption[bool](s, "--verbose")
//	count := GetOption[int](s, "-n")
//	path := GetOption[string](s, "--output")
//
// An unset option returns its zero value. If no command on the path registers the name, or it is
// registered with a different kind, GetOption panics: both are programming errors in the
// handler, not user errors.
func GetOption[T OptionType](s *State, name string) T {
	o := lookupOption(s, name)
	if v, ok := any(optionGoValue(o)).(T); ok {
		return v
	}
	panic(fmt.Sprintf("internal error: type mismatch for option %q in command %q: registered %s, requested %T",
		name, s.Command.Path(), o.kind, *new(T)))
}

// IsSet reports whether the named option was set, using the same lookup as [GetOption].
func IsSet(s *State, name string) bool {
	return lookupOption(s, name).IsSet()
}

func lookupOption(s *State, name string) *Option {
	for c := s.Command; c != nil; c = c.parent {
		if o, ok := c.GetOption(name); ok {
			return o
		}
	}
	panic(fmt.Sprintf("internal error: option %q not found in command %q or its parents", name, s.Command.Path()))
}

func optionGoValue(o *Option) any {
	switch v := o.value.(type) {
	case BoolValue:
		return bool(v)
	case IntValue:
		return int(v)
	case StringValue:
		return string(v)
	}
	return nil
}
