package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"charis/vm"
)

type replCmd struct {
	trace     bool
	printCode bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive Charis session" }
func (*replCmd) Usage() string {
	return `repl [-trace] [-print-code]:
  Read one line at a time, compile it, and run it. "exit" or ctrl-D quits.
`
}

func (r *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.trace, "trace", false, "trace each instruction and the stack as it executes")
	f.BoolVar(&r.printCode, "print-code", false, "disassemble each compiled chunk before running it")
}

func (r *replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to start line editor: %v\n", err)
		return exitIOErr
	}
	defer rl.Close()

	machine := vm.New(os.Stdout, os.Stderr)
	machine.DebugTraceExecution = r.trace
	machine.DebugPrintCode = r.printCode

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl-C clears the current line rather than quitting the
			// session; readline has already discarded it for us.
			continue
		}
		if err == io.EOF {
			return exitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return exitIOErr
		}
		if line == "exit" {
			return exitSuccess
		}
		if line == "" {
			continue
		}

		machine.Interpret(line)
	}
}
