package parser

import (
	"strconv"
	"strings"

	"flint/errs"
	"flint/ir"
	"flint/types"
)

// parsePrimary parses a literal, a parenthesized expression, or an
// identifier-rooted variable chain.
func (p *Parser) parsePrimary() (ir.Node, *errs.Error) {
	p.skipWhitespace()
	c := p.peek()
	switch {
	case c == 0:
		return nil, p.errorf("unexpected end of input")
	case c == '(':
		p.advance()
		inner, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		if !p.matchOp(")") {
			return nil, p.errorf("expected ')'")
		}
		return inner, nil
	case c == '"' || c == '\'':
		return p.parseStringLiteral()
	case isDigit(c):
		return p.parseNumberLiteral()
	case c == '.' && isDigit(p.peekAt(1)):
		return p.parseNumberLiteral()
	case isIdentStart(c):
		return p.parseIdentOrKeyword()
	default:
		return nil, p.errorf("unexpected character %q", string(c))
	}
}

func (p *Parser) parseIdentOrKeyword() (ir.Node, *errs.Error) {
	if p.matchKeyword("true") {
		return &ir.Literal{Value: types.NewBool(true)}, nil
	}
	if p.matchKeyword("false") {
		return &ir.Literal{Value: types.NewBool(false)}, nil
	}
	if p.matchKeyword("null") {
		return &ir.Literal{Value: types.Null}, nil
	}
	name, ok := p.tryIdent()
	if !ok {
		return nil, p.errorf("expected identifier")
	}
	return p.parseChain(&ir.GetVar{Name: name})
}

// parseNumberLiteral parses an Int ([0-9]+) or Float ([0-9]+'.'[0-9]* or
// '.'[0-9]+) literal. A bare trailing dot ("123.") defaults its fractional
// part to 0; a leading dot ("."[0-9]+) defaults its integer part to 0.
func (p *Parser) parseNumberLiteral() (ir.Node, *errs.Error) {
	startLine, startCol := p.line, p.column
	start := p.pos

	hasIntDigits := false
	for isDigit(p.peek()) {
		p.advance()
		hasIntDigits = true
	}

	isFloat := false
	if p.peek() == '.' {
		isFloat = true
		p.advance()
		for isDigit(p.peek()) {
			p.advance()
		}
	}

	text := string(p.src[start:p.pos])
	if !hasIntDigits && !isFloat {
		return nil, p.posErrorf(startLine, startCol, "invalid number literal")
	}

	if isFloat {
		normalized := text
		if strings.HasPrefix(normalized, ".") {
			normalized = "0" + normalized
		}
		if strings.HasSuffix(normalized, ".") {
			normalized += "0"
		}
		val, convErr := strconv.ParseFloat(normalized, 64)
		if convErr != nil {
			return nil, p.posErrorf(startLine, startCol, "invalid float literal %q", text)
		}
		return &ir.Literal{Value: types.NewFloat(val)}, nil
	}

	val, convErr := strconv.ParseInt(text, 10, 64)
	if convErr != nil {
		return nil, p.posErrorf(startLine, startCol, "invalid int literal %q: %s", text, convErr)
	}
	return &ir.Literal{Value: types.NewInt(val)}, nil
}

// parseStringLiteral parses a single- or double-quoted string, recognizing
// the escapes \\ \n \t \r \" \'.
func (p *Parser) parseStringLiteral() (ir.Node, *errs.Error) {
	startLine, startCol := p.line, p.column
	quote := p.advance()
	var sb strings.Builder
	for {
		if p.pos >= len(p.src) {
			return nil, p.posErrorf(startLine, startCol, "unterminated string literal")
		}
		c := p.advance()
		if c == quote {
			return &ir.Literal{Value: types.NewString(sb.String())}, nil
		}
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if p.pos >= len(p.src) {
			return nil, p.posErrorf(startLine, startCol, "unterminated string literal")
		}
		esc := p.advance()
		switch esc {
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\'':
			sb.WriteByte('\'')
		default:
			return nil, p.errorf("invalid escape sequence '\\%c'", esc)
		}
	}
}
