package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"charis/compiler"
	"charis/debug"
)

type disassembleCmd struct{}

func (*disassembleCmd) Name() string     { return "disassemble" }
func (*disassembleCmd) Synopsis() string { return "compile a source file and print its bytecode" }
func (*disassembleCmd) Usage() string {
	return `disassemble <path>:
  Compile the given source file without running it and print its chunk.
`
}

func (*disassembleCmd) SetFlags(*flag.FlagSet) {}

func (*disassembleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 no source file given")
		return subcommands.ExitUsageError
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read %s: %v\n", args[0], err)
		return exitIOErr
	}

	chunk, ok := compiler.Compile(string(source), os.Stderr)
	if !ok {
		return exitDataErr
	}

	debug.DisassembleChunk(os.Stdout, chunk, args[0])
	return exitSuccess
}
