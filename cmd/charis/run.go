package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"charis/vm"
)

// Exit codes follow the reference interpreter's sysexits-style contract:
// 0 success, 65 compile error, 70 runtime error, 74 file-I/O failure.
const (
	exitSuccess  subcommands.ExitStatus = 0
	exitDataErr  subcommands.ExitStatus = 65
	exitSoftware subcommands.ExitStatus = 70
	exitIOErr    subcommands.ExitStatus = 74
)

type runCmd struct {
	trace     bool
	printCode bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "interpret a Charis source file" }
func (*runCmd) Usage() string {
	return `run [-trace] [-print-code] <path>:
  Compile and interpret the given source file.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.trace, "trace", false, "trace each instruction and the stack as it executes")
	f.BoolVar(&r.printCode, "print-code", false, "disassemble the compiled chunk before running it")
}

func (r *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	machine := vm.New(os.Stdout, os.Stderr)
	machine.DebugTraceExecution = r.trace
	machine.DebugPrintCode = r.printCode

	switch machine.Interpret(string(source)) {
	case vm.InterpretCompileError:
		return exitDataErr
	case vm.InterpretRuntimeError:
		return exitSoftware
	default:
		return exitSuccess
	}
}
