// Package debug implements Charis's disassembler: a human-readable dump
// of a chunk.Chunk's bytecode, used by DEBUG_PRINT_CODE, by
// DEBUG_TRACE_EXECUTION's per-instruction trace, and by the standalone
// `charis disassemble` subcommand.
package debug

import (
	"fmt"
	"io"

	"charis/chunk"
)

// DisassembleChunk writes a banner followed by every instruction in c to
// out, in source order.
func DisassembleChunk(out io.Writer, c *chunk.Chunk, name string) {
	fmt.Fprintf(out, "== %s ==\n", name)
	for offset := 0; offset < c.Len(); {
		offset = DisassembleInstruction(out, c, offset)
	}
}

// DisassembleInstruction writes a single instruction at offset to out and
// returns the offset of the next instruction. The offset column is a
// 4-digit zero-padded number; the line column repeats as "   |" when it
// matches the previous instruction's line instead of the line number.
func DisassembleInstruction(out io.Writer, c *chunk.Chunk, offset int) int {
	fmt.Fprintf(out, "%04d ", offset)

	line := c.GetLine(offset)
	if offset > 0 && c.GetLine(offset-1) == line {
		fmt.Fprint(out, "   | ")
	} else {
		fmt.Fprintf(out, "%4d ", line)
	}

	op := chunk.Opcode(c.Code()[offset])
	switch op {
	case chunk.OpConstant:
		return constantInstruction(out, op, c, offset)
	default:
		return simpleInstruction(out, op, offset)
	}
}

func simpleInstruction(out io.Writer, op chunk.Opcode, offset int) int {
	fmt.Fprintf(out, "%s\n", op)
	return offset + 1
}

func constantInstruction(out io.Writer, op chunk.Opcode, c *chunk.Chunk, offset int) int {
	index := c.Code()[offset+1]
	fmt.Fprintf(out, "%-16s %4d '%s'\n", op, index, c.Constant(int(index)))
	return offset + 2
}
