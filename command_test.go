package ccli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	t.Parallel()

	t.Run("registration order survives growth", func(t *testing.T) {
		t.Parallel()
		const n = 100
		root := NewCommand("root", nil)

		var (
			wantCommands []*Command
			wantOptions  []*Option
			wantArgs     []string
		)
		for i := 0; i < n; i++ {
			sub := NewCommand(fmt.Sprintf("cmd%d", i), nil)
			require.NoError(t, root.AddSubCommand(sub))
			wantCommands = append(wantCommands, sub)
			wantOptions = append(wantOptions, root.AddIntOption(fmt.Sprintf("--opt%d", i)))
			arg := fmt.Sprintf("arg%d", i)
			root.AddArg(arg)
			wantArgs = append(wantArgs, arg)
		}
		assert.Equal(t, wantCommands, root.SubCommands())
		assert.Equal(t, wantOptions, root.Options())
		assert.Equal(t, wantArgs, root.Args())
	})
	t.Run("option identity is stable", func(t *testing.T) {
		t.Parallel()
		cmd := NewCommand("cmd", nil)
		first := cmd.AddStringOption("--first")
		for i := 0; i < 64; i++ {
			cmd.AddBoolOption(fmt.Sprintf("--b%d", i))
		}

		got, ok := cmd.GetOption("--first")
		require.True(t, ok)
		assert.Same(t, first, got)

		require.NoError(t, Parse(cmd, []string{"cmd", "--first", "v"}, nil))
		assert.Equal(t, StringValue("v"), first.Value())
	})
	t.Run("get option", func(t *testing.T) {
		t.Parallel()
		s := newTestState(t)

		o, ok := s.add.GetOption("--tag")
		require.True(t, ok)
		assert.Same(t, s.tag, o)

		_, ok = s.add.GetOption("--verbose")
		assert.False(t, ok, "parent options are not visible")
		_, ok = s.nested.GetOption("--echo")
		assert.False(t, ok, "subcommand options are not visible")
		_, ok = s.add.GetOption("--missing")
		assert.False(t, ok)
	})
	t.Run("add option rejects invalid kind", func(t *testing.T) {
		t.Parallel()
		cmd := NewCommand("cmd", nil)

		o, err := cmd.AddOption(Kind(42), "--bad")
		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, IsCode(err, ErrPrecondition))
		assert.ErrorContains(t, err, `command "cmd": precondition violated: option "--bad": invalid kind kind(42)`)
		assert.Empty(t, cmd.Options())

		o, err = cmd.AddOption(KindInt, "-n")
		require.NoError(t, err)
		assert.Equal(t, KindInt, o.Kind())
		assert.Equal(t, []*Option{o}, cmd.Options())
	})
	t.Run("add subcommand preconditions", func(t *testing.T) {
		t.Parallel()
		s := newTestState(t)

		err := s.root.AddSubCommand(nil)
		require.Error(t, err)
		assert.True(t, IsCode(err, ErrPrecondition))

		err = s.sub.AddSubCommand(s.sub)
		require.Error(t, err)
		assert.ErrorContains(t, err, "would create a cycle")

		err = s.sub.AddSubCommand(s.root)
		require.Error(t, err)
		assert.ErrorContains(t, err, `command "todo nested sub": adding "todo" would create a cycle`)

		err = s.add.AddSubCommand(s.hello)
		require.Error(t, err)
		assert.ErrorContains(t, err, `subcommand "hello" already belongs to "todo nested"`)

		assert.Empty(t, s.add.SubCommands())
		assert.Empty(t, s.sub.SubCommands())
		assert.Equal(t, []*Command{s.add, s.nested}, s.root.SubCommands())
		assert.Equal(t, s.nested, s.hello.Parent())
		assert.Nil(t, s.root.Parent())
	})
	t.Run("accessors return copies", func(t *testing.T) {
		t.Parallel()
		s := newTestState(t)
		s.add.AddArg("a")

		args := s.add.Args()
		args[0] = "changed"
		subs := s.root.SubCommands()
		subs[0] = nil
		opts := s.add.Options()
		opts[0] = nil

		assert.Equal(t, []string{"a"}, s.add.Args())
		assert.Equal(t, s.add, s.root.SubCommands()[0])
		assert.Equal(t, s.dryRun, s.add.Options()[0])
	})
	t.Run("path", func(t *testing.T) {
		t.Parallel()
		s := newTestState(t)

		assert.Equal(t, "todo", s.root.Path())
		assert.Equal(t, "todo add", s.add.Path())
		assert.Equal(t, "todo nested sub", s.sub.Path())
	})
	t.Run("walk", func(t *testing.T) {
		t.Parallel()
		s := newTestState(t)

		var names []string
		err := s.root.Walk(func(c *Command) error {
			names = append(names, c.Name)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"todo", "add", "nested", "sub", "hello"}, names)

		stop := errors.New("stop")
		names = nil
		err = s.root.Walk(func(c *Command) error {
			names = append(names, c.Name)
			if c == s.nested {
				return stop
			}
			return nil
		})
		require.ErrorIs(t, err, stop)
		assert.Equal(t, []string{"todo", "add", "nested"}, names)
	})
	t.Run("suggest", func(t *testing.T) {
		t.Parallel()
		s := newTestState(t)

		assert.Equal(t, []string{"add"}, s.root.Suggest("ad"))
		assert.Equal(t, []string{"nested"}, s.root.Suggest("nestde"))
		assert.Empty(t, s.root.Suggest("zzz"))
		assert.Empty(t, s.hello.Suggest("anything"))
	})
}
