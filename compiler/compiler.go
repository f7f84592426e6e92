// Package compiler implements Charis's single-pass Pratt compiler: it
// consumes a token stream directly from the scanner and emits bytecode
// into a chunk.Chunk, with no intermediate syntax tree.
package compiler

import (
	"fmt"
	"io"
	"strconv"

	"charis/chunk"
	"charis/scanner"
	"charis/token"
	"charis/value"
)

// Precedence levels, low to high. expression() parses at PrecAssignment.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecTernary
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

type parseFn func(*Compiler)

type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence Precedence
}

var rules map[token.Kind]parseRule

func init() {
	rules = map[token.Kind]parseRule{
		token.LeftParen:    {prefix: (*Compiler).grouping, precedence: PrecNone},
		token.Minus:        {prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: PrecTerm},
		token.Plus:         {prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: PrecTerm},
		token.Slash:        {infix: (*Compiler).binary, precedence: PrecFactor},
		token.Star:         {infix: (*Compiler).binary, precedence: PrecFactor},
		token.Bang:         {prefix: (*Compiler).unary, precedence: PrecNone},
		token.BangEqual:    {infix: (*Compiler).binary, precedence: PrecEquality},
		token.EqualEqual:   {infix: (*Compiler).binary, precedence: PrecEquality},
		token.Less:         {infix: (*Compiler).binary, precedence: PrecComparison},
		token.LessEqual:    {infix: (*Compiler).binary, precedence: PrecComparison},
		token.Greater:      {infix: (*Compiler).binary, precedence: PrecComparison},
		token.GreaterEqual: {infix: (*Compiler).binary, precedence: PrecComparison},
		token.Question:     {infix: (*Compiler).ternary, precedence: PrecTernary},
		token.Number:       {prefix: (*Compiler).number, precedence: PrecNone},
		token.False:        {prefix: (*Compiler).literal, precedence: PrecNone},
		token.Null:         {prefix: (*Compiler).literal, precedence: PrecNone},
		token.True:         {prefix: (*Compiler).literal, precedence: PrecNone},
	}
}

func getRule(kind token.Kind) parseRule {
	return rules[kind]
}

// Compiler holds the parser state (previous/current token, error flags)
// threaded explicitly through compilation, per the "process-wide
// singletons become explicit state" rework: no package-level scanner or
// parser globals.
type Compiler struct {
	scanner   *scanner.Scanner
	chunk     *chunk.Chunk
	out       io.Writer
	previous  token.Token
	current   token.Token
	hadError  bool
	panicMode bool
}

// Compile compiles source into a fresh chunk.Chunk, parsing a single
// expression and emitting a trailing Return. It reports compile errors to
// out and returns (chunk, true) on success or (chunk, false) if any error
// was reported. The compiler always drains to Eof even after an error, but
// panic mode is never cleared, so only the first lex/parse error in the
// source is reported.
func Compile(source string, out io.Writer) (*chunk.Chunk, bool) {
	c := &Compiler{
		scanner: scanner.New(source),
		chunk:   &chunk.Chunk{},
		out:     out,
	}
	c.advance()
	c.expression()
	c.consume(token.Eof, "Expect end of expression.")
	for c.current.Kind != token.Eof {
		c.advance()
	}
	c.emitReturn()
	return c.chunk, !c.hadError
}

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.ScanToken()
		if c.current.Kind != token.Error {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) consume(kind token.Kind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *Compiler) error(message string) {
	c.errorAt(c.previous, message)
}

func (c *Compiler) errorAt(tok token.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	fmt.Fprintf(c.out, "[line %d] Error", tok.Line)
	switch tok.Kind {
	case token.Eof:
		fmt.Fprint(c.out, " at end")
	case token.Error:
		// the lexeme already is the message; nothing to locate
	default:
		fmt.Fprintf(c.out, " at '%s'", tok.Lexeme)
	}
	fmt.Fprintf(c.out, ": %s\n", message)
}

func (c *Compiler) emitByte(b byte) {
	c.chunk.Write(b, c.previous.Line)
}

func (c *Compiler) emitOp(op chunk.Opcode) {
	c.emitByte(byte(op))
}

func (c *Compiler) emitReturn() {
	c.emitOp(chunk.OpReturn)
}

func (c *Compiler) emitConstant(v value.Value) {
	idx := c.chunk.AddConstant(v)
	if idx > 255 {
		c.error("Too many constants in one chunk")
		idx = 0
	}
	c.emitOp(chunk.OpConstant)
	c.emitByte(byte(idx))
}

func (c *Compiler) expression() {
	c.parsePrecedence(PrecAssignment)
}

func (c *Compiler) parsePrecedence(precedence Precedence) {
	c.advance()
	prefix := getRule(c.previous.Kind).prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}
	prefix(c)

	for precedence <= getRule(c.current.Kind).precedence {
		c.advance()
		infix := getRule(c.previous.Kind).infix
		infix(c)
	}
}

func (c *Compiler) grouping() {
	c.expression()
	c.consume(token.RightParen, "Expect ')' after expression.")
}

func (c *Compiler) unary() {
	operator := c.previous.Kind
	c.parsePrecedence(PrecUnary)
	switch operator {
	case token.Minus:
		c.emitOp(chunk.OpNegate)
	case token.Bang:
		c.emitOp(chunk.OpNot)
	case token.Plus:
		// unary plus is a no-op
	}
}

func (c *Compiler) binary() {
	operator := c.previous.Kind
	rule := getRule(operator)
	c.parsePrecedence(rule.precedence + 1) // left-associative

	switch operator {
	case token.Plus:
		c.emitOp(chunk.OpAdd)
	case token.Minus:
		c.emitOp(chunk.OpSub)
	case token.Star:
		c.emitOp(chunk.OpMul)
	case token.Slash:
		c.emitOp(chunk.OpDiv)
	case token.EqualEqual:
		c.emitOp(chunk.OpEqual)
	case token.BangEqual:
		c.emitOp(chunk.OpEqual)
		c.emitOp(chunk.OpNot)
	case token.Greater:
		c.emitOp(chunk.OpGreater)
	case token.GreaterEqual:
		c.emitOp(chunk.OpLess)
		c.emitOp(chunk.OpNot)
	case token.Less:
		c.emitOp(chunk.OpLess)
	case token.LessEqual:
		c.emitOp(chunk.OpGreater)
		c.emitOp(chunk.OpNot)
	}
}

// ternary parses the "? :" operator. It parses both branches so the
// grammar accepts the construct, but per the documented deficiency it
// inherits from its C ancestor, it emits no conditional jump: both
// branches' bytecode runs unconditionally and the else branch's value is
// the one left on the stack. Emitting real short-circuiting jumps would
// require JumpIfFalse/Jump opcodes this bytecode format does not have.
func (c *Compiler) ternary() {
	c.parsePrecedence(PrecTernary + 1)
	c.consume(token.Colon, "Expect ':' after then branch of ternary expression.")
	c.parsePrecedence(PrecTernary)
}

func (c *Compiler) number() {
	n, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(n))
}

func (c *Compiler) literal() {
	switch c.previous.Kind {
	case token.False:
		c.emitOp(chunk.OpFalse)
	case token.Null:
		c.emitOp(chunk.OpNull)
	case token.True:
		c.emitOp(chunk.OpTrue)
	}
}
