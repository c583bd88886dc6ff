package parser

import (
	"flint/errs"
	"flint/ir"
	"flint/types"
)

// parseChain parses the accessor/spread chain that follows an identifier:
//
//	.name       dot access, or -- while a spread is active -- a tail step
//	.(expr)     computed spread body; only legal once a [*] has opened a
//	            spread (directly after it, or after tail steps)
//	[*]         opens a spread (or, if one is already open, sets flatten
//	            on the spread already in progress)
//	[expr]      bracket access, or a tail step while a spread is active
//	(args)      function call; only legal as the very first step, i.e.
//	            base must still be the bare identifier the chain started
//	            from ("foo(1,2)" is legal, "a.b(1,2)" is not -- the
//	            callee in that position is not a variable).
//
// Once a [*] opens a spread, subsequent .name/[expr] steps accumulate into
// a SpreadTail instead of building nested Access nodes, until a .( )
// (which closes the spread and wraps it in a ComputedSpread) or the end of
// the chain. A second [*] only sets Flatten; steps after it keep
// accumulating into the same tail.
func (p *Parser) parseChain(base ir.Node) (ir.Node, *errs.Error) {
	target := base
	steps := 0

	spreadActive := false
	var spreadBase ir.Node
	var tail []ir.PathStep
	flatten := false

	for {
		p.skipWhitespace()
		c := p.peek()

		switch {
		case c == '.' && p.peekAt(1) == '(':
			if !spreadActive {
				return nil, p.errorf("computed spread '.(' is only valid after '[*]'")
			}
			p.consumeN(2)
			body, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			if !p.matchOp(")") {
				return nil, p.errorf("expected ')' to close computed spread body")
			}
			node := &ir.ComputedSpread{
				Target: &ir.Spread{Target: spreadBase, Tail: tail, Flatten: flatten},
				Body:   body,
			}
			p.skipWhitespace()
			if p.hasPrefix("[*]") {
				p.consumeN(3)
				node.Flatten = true
			}
			return node, nil

		case c == '.':
			p.advance()
			name, ok := p.tryIdent()
			if !ok {
				return nil, p.errorf("expected identifier after '.'")
			}
			if spreadActive {
				tail = append(tail, ir.PathStep{Kind: ir.StepKey, Key: name})
			} else {
				target = &ir.Access{Target: target, Key: &ir.Literal{Value: types.NewString(name)}, DotKey: true}
			}
			steps++

		case c == '[':
			if p.isSpreadMarkerAhead() {
				p.consumeSpreadMarker()
				if !spreadActive {
					spreadActive = true
					spreadBase = target
					tail = nil
					flatten = false
				} else {
					flatten = true
				}
				steps++
				continue
			}
			p.advance()
			idx, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			if !p.matchOp("]") {
				return nil, p.errorf("expected ']'")
			}
			if spreadActive {
				tail = append(tail, ir.PathStep{Kind: ir.StepIndex, Index: idx})
			} else {
				target = &ir.Access{Target: target, Key: idx, DotKey: false}
			}
			steps++

		case c == '(' && steps == 0:
			gv, ok := target.(*ir.GetVar)
			if !ok {
				return target, nil
			}
			p.advance()
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			if !p.matchOp(")") {
				return nil, p.errorf("expected ')' to close call to %q", gv.Name)
			}
			target = &ir.Call{Name: gv.Name, Args: args}
			steps++

		default:
			if spreadActive {
				target = &ir.Spread{Target: spreadBase, Tail: tail, Flatten: flatten}
			}
			return target, nil
		}
	}
}

// isSpreadMarkerAhead looks ahead, without consuming, for a '[' '*' ']'
// sequence (whitespace allowed between the brackets and the star).
func (p *Parser) isSpreadMarkerAhead() bool {
	i := p.pos + 1
	for i < len(p.src) && isSpace(p.src[i]) {
		i++
	}
	if i >= len(p.src) || p.src[i] != '*' {
		return false
	}
	i++
	for i < len(p.src) && isSpace(p.src[i]) {
		i++
	}
	return i < len(p.src) && p.src[i] == ']'
}

// consumeSpreadMarker consumes the '[' '*' ']' sequence isSpreadMarkerAhead
// just confirmed is present, advancing byte-by-byte so line/column stay
// accurate across any whitespace inside it.
func (p *Parser) consumeSpreadMarker() {
	i := p.pos + 1
	for i < len(p.src) && isSpace(p.src[i]) {
		i++
	}
	i++ // the '*'
	for i < len(p.src) && isSpace(p.src[i]) {
		i++
	}
	p.consumeThrough(i)
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }

// parseArgList parses a comma-separated, possibly empty, argument list up
// to (but not including) the closing ')'.
func (p *Parser) parseArgList() ([]ir.Node, *errs.Error) {
	var args []ir.Node
	p.skipWhitespace()
	if p.hasPrefix(")") {
		return args, nil
	}
	for {
		arg, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.matchOp(",") {
			continue
		}
		return args, nil
	}
}
