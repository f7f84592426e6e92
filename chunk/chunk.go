// Package chunk implements Charis's compiled bytecode unit: a dense code
// buffer, a constant pool, and a run-length-encoded line map. The code
// buffer and constant pool are backed by internal/memory's
// geometric-growth buffer; the line map is a plain slice.
package chunk

import (
	"charis/internal/memory"
	"charis/value"
)

// Opcode identifies a single bytecode instruction. OpConstant is the only
// opcode with an inline operand (a one-byte index into the constant
// pool); every other opcode is exactly one byte wide.
type Opcode byte

const (
	OpConstant Opcode = iota
	OpNull
	OpTrue
	OpFalse
	OpNot
	OpNegate
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpGreater
	OpLess
	OpReturn
)

var opcodeNames = map[Opcode]string{
	OpConstant: "OP_CONSTANT",
	OpNull:     "OP_NULL",
	OpTrue:     "OP_TRUE",
	OpFalse:    "OP_FALSE",
	OpNot:      "OP_NOT",
	OpNegate:   "OP_NEGATE",
	OpAdd:      "OP_ADD",
	OpSub:      "OP_SUB",
	OpMul:      "OP_MUL",
	OpDiv:      "OP_DIV",
	OpEqual:    "OP_EQUAL",
	OpGreater:  "OP_GREATER",
	OpLess:     "OP_LESS",
	OpReturn:   "OP_RETURN",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "OP_UNKNOWN"
}

// lineRun pairs a source line with the number of consecutive code bytes
// attributed to it.
type lineRun struct {
	line      int
	runLength int
}

// Chunk is an append-only bytecode buffer plus its constant pool and line
// map. The zero Chunk is ready to use.
type Chunk struct {
	code      memory.Buffer[byte]
	constants memory.Buffer[value.Value]
	lines     []lineRun
}

// Code returns the chunk's code bytes. Callers must not retain the slice
// across a subsequent Write, since Write may reallocate.
func (c *Chunk) Code() []byte {
	return c.code.Values()
}

// Len returns the number of code bytes written so far.
func (c *Chunk) Len() int {
	return c.code.Len()
}

// Write appends a single code byte, attributing it to line in the
// run-length-encoded line map. Consecutive writes for the same line are
// coalesced into the last run instead of allocating a new pair.
func (c *Chunk) Write(b byte, line int) {
	c.code.Push(b)
	if n := len(c.lines); n > 0 && c.lines[n-1].line == line {
		c.lines[n-1].runLength++
		return
	}
	c.lines = append(c.lines, lineRun{line: line, runLength: 1})
}

// AddConstant appends v to the constant pool and returns its index.
// Compile-time enforcement that the index stays within a single byte
// (0..=255) is the compiler's responsibility, not Chunk's.
func (c *Chunk) AddConstant(v value.Value) int {
	c.constants.Push(v)
	return c.constants.Len() - 1
}

// Constant returns the constant at index i.
func (c *Chunk) Constant(i int) value.Value {
	return c.constants.At(i)
}

// ConstantCount returns the number of constants currently pooled.
func (c *Chunk) ConstantCount() int {
	return c.constants.Len()
}

// GetLine returns the source line attributed to the code byte at offset,
// by a linear scan of the run-length-encoded line map. This runs only on
// the diagnostic path, so O(#distinct-line-runs) is acceptable.
func (c *Chunk) GetLine(offset int) int {
	covered := 0
	for _, run := range c.lines {
		covered += run.runLength
		if offset < covered {
			return run.line
		}
	}
	return -1
}
