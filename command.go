package ccli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cmdtree/ccli/pkg/suggest"
)

// ExecFunc is a command's handler. It receives the [State] of the command the parse ended on.
// Caller data the handler needs is captured by the closure or carried by ctx.
type ExecFunc func(ctx context.Context, s *State) error

// Command is a node in the command tree. It owns its subcommands, its options and the positional
// arguments collected for it during a parse.
//
// A Command tree is not safe for concurrent use. Parses of the same tree must be serialized by the
// caller.
type Command struct {
	// Name is the token that selects this command from its parent. The root's name is only used
	// for display.
	Name string

	// Description is informational only.
	Description string

	// Exec runs when a parse ends on this command. A nil Exec makes dispatch a no-op.
	Exec ExecFunc

	parent   *Command
	commands []*Command
	options  []*Option
	args     []string

	// selected is the command the last parse ended on; only set on the root.
	selected *Command
}

// NewCommand returns an empty command. exec may be nil.
func NewCommand(name string, exec ExecFunc) *Command {
	return &Command{
		Name: name,
		Exec: exec,
	}
}

// AddSubCommand appends sub to c's subcommands. Subcommands are matched in the order they were
// added, so when two siblings share a name the first one wins.
//
// sub must be a detached command: it may not be nil, c itself, an ancestor of c, or already
// attached to a parent. Such calls return an [ErrPrecondition] error and change nothing.
func (c *Command) AddSubCommand(sub *Command) error {
	if sub == nil {
		return NewError(ErrPrecondition, fmt.Errorf("command %q: subcommand is nil", c.Path()))
	}
	for p := c; p != nil; p = p.parent {
		if p == sub {
			return NewError(ErrPrecondition, fmt.Errorf("command %q: adding %q would create a cycle",
				c.Path(), sub.Name))
		}
	}
	if sub.parent != nil {
		return NewError(ErrPrecondition, fmt.Errorf("command %q: subcommand %q already belongs to %q",
			c.Path(), sub.Name, sub.parent.Path()))
	}
	sub.parent = c
	c.commands = append(c.commands, sub)
	return nil
}

// AddOption creates an option of the given kind and appends it to c's options. Options are
// matched in the order they were added, so when two share a name the first one wins.
func (c *Command) AddOption(kind Kind, name string) (*Option, error) {
	o, err := NewOption(kind, name)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", c.Path(), err)
	}
	c.options = append(c.options, o)
	return o, nil
}

// AddBoolOption appends a [KindBool] option and returns it.
func (c *Command) AddBoolOption(name string) *Option {
	return c.addOption(newOption(KindBool, name))
}

// AddIntOption appends a [KindInt] option and returns it.
func (c *Command) AddIntOption(name string) *Option {
	return c.addOption(newOption(KindInt, name))
}

// AddStringOption appends a [KindString] option and returns it.
func (c *Command) AddStringOption(name string) *Option {
	return c.addOption(newOption(KindString, name))
}

func (c *Command) addOption(o *Option) *Option {
	c.options = append(c.options, o)
	return o
}

// GetOption returns the first of c's own options named name. Options of parents and
// subcommands are not consulted.
func (c *Command) GetOption(name string) (*Option, bool) {
	for _, o := range c.options {
		if o.name == name {
			return o, true
		}
	}
	return nil, false
}

// AddArg appends a positional argument to c.
func (c *Command) AddArg(token string) {
	c.args = append(c.args, token)
}

// SubCommands returns c's subcommands in registration order.
func (c *Command) SubCommands() []*Command {
	return slices.Clone(c.commands)
}

// Options returns c's options in registration order.
func (c *Command) Options() []*Option {
	return slices.Clone(c.options)
}

// Args returns the positional arguments collected for c, in the order they were seen.
func (c *Command) Args() []string {
	return slices.Clone(c.args)
}

// Parent returns the command c was added to, or nil for a root.
func (c *Command) Parent() *Command {
	return c.parent
}

// Selected returns the command the last [Parse] of this root ended on. It is nil before the first
// parse and after a strict parse that returned an error.
func (c *Command) Selected() *Command {
	return c.selected
}

// Path returns the names from the root down to c, separated by spaces.
func (c *Command) Path() string {
	var names []string
	for p := c; p != nil; p = p.parent {
		names = append(names, p.Name)
	}
	slices.Reverse(names)
	return strings.Join(names, " ")
}

// findSubCommand returns the first subcommand named name, or nil.
func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.commands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// Walk calls fn for c and every command below it, depth first, parents before children and
// siblings in registration order. A non-nil error from fn stops the walk and is returned.
func (c *Command) Walk(fn func(*Command) error) error {
	if err := fn(c); err != nil {
		return err
	}
	for _, sub := range c.commands {
		if err := sub.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the positional arguments and option values of c and every command below it. A
// parse never resets anything on its own: values from earlier parses remain until they are
// overwritten or Reset is called.
func (c *Command) Reset() {
	_ = c.Walk(func(cmd *Command) error {
		cmd.args = nil
		cmd.selected = nil
		for _, o := range cmd.options {
			o.reset()
		}
		return nil
	})
}

// Suggest returns up to three of c's subcommand names that resemble token. Positional arguments
// are never rejected by the parser; handlers can use Suggest to report likely typos.
func (c *Command) Suggest(token string) []string {
	known := make([]string, 0, len(c.commands))
	for _, sub := range c.commands {
		known = append(known, sub.Name)
	}
	return suggest.FindSimilar(token, known, 3)
}

// validateNames reports the first duplicate sibling command name or option name in the tree.
func validateNames(root *Command) error {
	return root.Walk(func(c *Command) error {
		seen := make(map[string]struct{}, len(c.commands))
		for _, sub := range c.commands {
			if _, ok := seen[sub.Name]; ok {
				return NewError(ErrDuplicateName, fmt.Errorf("command %q: subcommand %q registered more than once",
					c.Path(), sub.Name))
			}
			seen[sub.Name] = struct{}{}
		}
		clear(seen)
		for _, o := range c.options {
			if _, ok := seen[o.name]; ok {
				return NewError(ErrDuplicateName, fmt.Errorf("command %q: option %q registered more than once",
					c.Path(), o.name))
			}
			seen[o.name] = struct{}{}
		}
		return nil
	})
}
