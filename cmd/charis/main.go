// Command charis is the command-line front end for the Charis bytecode
// interpreter: a REPL, a one-shot file runner, and a standalone
// disassembler, dispatched via github.com/google/subcommands.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&disassembleCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
