// Package ccli parses command-line tokens against a tree of commands and runs the handler of the
// command the tokens lead to.
//
// Each [Command] owns typed options (bool, int or string), subcommands and the positional
// arguments collected for it. [ParseAndRun] scans the tokens once, left to right: option names
// set options of the current command, subcommand names move the scan down the tree, and anything
// else is kept as a positional argument. The first positional argument ends the descent for good,
// so later tokens that happen to name a subcommand are kept as arguments too.
//
// The package never rejects unknown input; validating positional arguments is left to handlers.
//
//	root := ccli.NewCommand("todo", nil)
//	add := ccli.NewCommand("add", func(ctx context.Context, s *ccli.State) error {
//		fmt.Fprintln(s.Stdout, "adding", s.Args, ccli.GetOption[string](s, "--tag"))
//		return nil
//	})
//	add.AddStringOption("--tag")
//	_ = root.AddSubCommand(add)
//
//	err := ccli.ParseAndRun(ctx, root, os.Args, nil)
package ccli
