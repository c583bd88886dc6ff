// Package parser implements a hand-written, single-pass precedence-climbing
// parser. There is no exported token stream: scanning and grammar are
// merged into one recursive-descent pass, the same way the grammar is
// specified -- character classification and position tracking below are
// grounded on the teacher lexer's readChar/peekChar/peekCharN style, just
// folded directly into the parse functions instead of feeding a separate
// Token type.
package parser

import (
	"flint/errs"
	"flint/ir"
	"fmt"
)

// Node is the parser's result type; every production returns an ir.Node.
type Node = ir.Node

// Parser scans src directly. position/line/column mirror the teacher
// lexer's fields; there is just no NextToken boundary between scanning
// and grammar here.
type Parser struct {
	src    []byte
	pos    int
	line   int
	column int
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{src: []byte(src), line: 1, column: 1}
}

// Parse parses a complete expression and reports an error if any
// non-whitespace input remains afterward.
func Parse(src string) (Node, *errs.Error) {
	return New(src).Parse()
}

// Parse runs the full grammar over p's source.
func (p *Parser) Parse() (Node, *errs.Error) {
	node, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected trailing input")
	}
	return node, nil
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) peekAt(offset int) byte {
	i := p.pos + offset
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

// advance consumes and returns the current byte, updating line/column the
// same way the teacher lexer's readChar does.
func (p *Parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	return c
}

// consumeThrough advances one byte at a time up to and including index
// target, keeping line/column accurate even when the skipped span
// contains whitespace (used by the spread-marker lookahead in chain.go,
// which peeks ahead by raw index rather than mutating state speculatively).
func (p *Parser) consumeThrough(target int) {
	for p.pos <= target && p.pos < len(p.src) {
		p.advance()
	}
}

// skipWhitespace skips the grammar's insignificant whitespace: space, tab,
// newline. Unlike the teacher lexer this does not also treat '\r' as
// whitespace and there is no comment syntax to skip.
func (p *Parser) skipWhitespace() {
	for {
		c := p.peek()
		if c == ' ' || c == '\t' || c == '\n' {
			p.advance()
			continue
		}
		break
	}
}

func (p *Parser) hasPrefix(s string) bool {
	if p.pos+len(s) > len(p.src) {
		return false
	}
	return string(p.src[p.pos:p.pos+len(s)]) == s
}

func (p *Parser) consumeN(n int) {
	for i := 0; i < n; i++ {
		p.advance()
	}
}

// matchOp skips whitespace, then consumes op if it appears next.
func (p *Parser) matchOp(op string) bool {
	p.skipWhitespace()
	if !p.hasPrefix(op) {
		return false
	}
	p.consumeN(len(op))
	return true
}

// matchKeyword skips whitespace, then consumes kw if it appears next and
// is not itself the prefix of a longer identifier (so "not" does not match
// inside "nothing").
func (p *Parser) matchKeyword(kw string) bool {
	p.skipWhitespace()
	if !p.hasPrefix(kw) {
		return false
	}
	if isIdentCont(p.peekAt(len(kw))) {
		return false
	}
	p.consumeN(len(kw))
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// tryIdent consumes an identifier at the current position, if any.
func (p *Parser) tryIdent() (string, bool) {
	p.skipWhitespace()
	if !isIdentStart(p.peek()) {
		return "", false
	}
	start := p.pos
	for isIdentCont(p.peek()) {
		p.advance()
	}
	return string(p.src[start:p.pos]), true
}

func (p *Parser) errorf(format string, args ...any) *errs.Error {
	msg := fmt.Sprintf(format, args...)
	if s := p.snippet(); s != "" {
		msg = fmt.Sprintf("%s (near %q)", msg, s)
	}
	return errs.NewParser(p.line, p.column, msg)
}

func (p *Parser) posErrorf(line, column int, format string, args ...any) *errs.Error {
	return errs.NewParser(line, column, fmt.Sprintf(format, args...))
}

func (p *Parser) snippet() string {
	end := p.pos + 12
	if end > len(p.src) {
		end = len(p.src)
	}
	return string(p.src[p.pos:end])
}
