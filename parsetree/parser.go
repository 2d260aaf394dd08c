// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parsetree

import (
	"fmt"
	"strings"

	"github.com/vexprlang/vexpr/lex"
	"github.com/vexprlang/vexpr/token"
)

// ParseError is returned by Parse when the input does not match the
// grammar. An error found by the parser carries the position of the
// offending token, enough for a caller to render a caret diagnostic,
// matching the C++ source's `e.what() / in.line_at(p) / caret` reporting
// at the CLI boundary. An error raised by the scanner (an invalid
// character or a malformed number) states its position only inside
// Message; its Offset, Line and Column are zero.
type ParseError struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

func newParseError(pos token.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Offset:  pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// reserved names, per spec.md §6.
var (
	vectorVarNames  = map[string]bool{"x": true, "y": true}
	constantNames   = map[string]bool{"pi": true, "e": true}
	nullaryA2SNames = map[string]bool{"rand": true}
	unaryS2SNames   = map[string]bool{"exp": true, "sqrt": true, "abs": true}
	unaryV2SNames   = map[string]bool{"norm2": true, "sum": true}
	unaryV2VNames   = map[string]bool{"abs": true}
	binaryV2SNames  = map[string]bool{"dot": true}
)

func isReserved(name string) bool {
	return vectorVarNames[name] || constantNames[name] || nullaryA2SNames[name] ||
		unaryS2SNames[name] || unaryV2SNames[name] || binaryV2SNames[name]
}

// Parse tokenizes text and parses a top-level scalar expression, returning
// the rearranged, function-collapsed parse tree. This is the library's
// entry point, combining §4.1/§4.2's grammar and parser with the §4.3/§4.4
// rearrange and collapse passes.
func Parse(text string) (*Node, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseScalarExpression()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != token.EOF {
		return nil, newParseError(p.peek().Pos, "unexpected %s after expression", p.peek())
	}
	n = Rearrange(n)
	n = CollapseFunctionName(n)
	return n, nil
}

func tokenize(text string) ([]token.Token, error) {
	s := lex.New(strings.NewReader(text))
	var toks []token.Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}
		toks = append(toks, *tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// parser is a recursive-descent, backtracking parser over a pre-lexed
// token slice. A grammar with alternatives that must be retried from
// scratch on failure (sor) needs more than a one-token lookahead buffer,
// so the whole token stream is materialized up front and a plain integer
// cursor stands in for a single-token Peek/Next pair.
type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) next() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) mark() int {
	return p.pos
}

func (p *parser) reset(m int) {
	p.pos = m
}

func (p *parser) parseScalarExpression() (*Node, error) {
	var children []*Node
	if t := p.peek(); t.Type == token.Plus || t.Type == token.Minus {
		p.next()
		sym := PrefixPlus
		if t.Type == token.Minus {
			sym = PrefixMinus
		}
		children = append(children, op(sym, t))
	}
	first, err := p.parseScalarTerm()
	if err != nil {
		return nil, err
	}
	children = append(children, first)
	for {
		t := p.peek()
		if t.Type != token.Plus && t.Type != token.Minus {
			break
		}
		p.next()
		sym := Plus
		if t.Type == token.Minus {
			sym = Minus
		}
		next, err := p.parseScalarTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, op(sym, t), next)
	}
	return &Node{Symbol: scalarExpression, Children: children}, nil
}

func (p *parser) parseVectorExpression() (*Node, error) {
	var children []*Node
	if t := p.peek(); t.Type == token.Plus || t.Type == token.Minus {
		p.next()
		sym := PrefixPlus
		if t.Type == token.Minus {
			sym = PrefixMinus
		}
		children = append(children, op(sym, t))
	}
	first, err := p.parseVectorTerm()
	if err != nil {
		return nil, err
	}
	children = append(children, first)
	for {
		t := p.peek()
		if t.Type != token.Plus && t.Type != token.Minus {
			break
		}
		p.next()
		sym := Plus
		if t.Type == token.Minus {
			sym = Minus
		}
		next, err := p.parseVectorTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, op(sym, t), next)
	}
	return &Node{Symbol: vectorExpression, Children: children}, nil
}

func (p *parser) parseScalarTerm() (*Node, error) {
	var children []*Node
	first, err := p.parseScalarFactor()
	if err != nil {
		return nil, err
	}
	children = append(children, first)
	for {
		t := p.peek()
		if t.Type != token.Star && t.Type != token.Slash {
			break
		}
		p.next()
		sym := Multiply
		if t.Type == token.Slash {
			sym = Divide
		}
		next, err := p.parseScalarFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, op(sym, t), next)
	}
	return &Node{Symbol: scalarTerm, Children: children}, nil
}

// parseVectorTerm implements spec.md §4.1's
//
//	vector_term := star(seq(scalar_factor, multiply)) vector_factor
//	               star(seq(sor(multiply, divide), scalar_factor))
//
// building one flat alternating [factor op factor op factor ...] list, the
// same shape scalarTerm builds, so Rearrange can treat both uniformly.
func (p *parser) parseVectorTerm() (*Node, error) {
	var children []*Node
	for {
		m := p.mark()
		sf, err := p.parseScalarFactor()
		if err != nil {
			p.reset(m)
			break
		}
		if p.peek().Type != token.Star {
			p.reset(m)
			break
		}
		t := p.next()
		children = append(children, sf, op(Multiply, t))
	}
	vf, err := p.parseVectorFactor()
	if err != nil {
		return nil, err
	}
	children = append(children, vf)
	for {
		t := p.peek()
		if t.Type != token.Star && t.Type != token.Slash {
			break
		}
		p.next()
		sym := Multiply
		if t.Type == token.Slash {
			sym = Divide
		}
		sf, err := p.parseScalarFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, op(sym, t), sf)
	}
	return &Node{Symbol: vectorTerm, Children: children}, nil
}

func (p *parser) parseScalarFactor() (*Node, error) {
	t := p.peek()
	switch t.Type {
	case token.LParen:
		return p.parseBracketed(p.parseScalarExpression)
	case token.Number:
		p.next()
		return leaf(Number, t), nil
	case token.Ident:
		return p.parseScalarIdentFactor()
	default:
		return nil, newParseError(t.Pos, "expected a scalar factor, found %s", t)
	}
}

func (p *parser) parseVectorFactor() (*Node, error) {
	t := p.peek()
	switch t.Type {
	case token.LParen:
		return p.parseBracketed(p.parseVectorExpression)
	case token.Ident:
		if unaryV2VNames[t.Value] {
			return p.parseFunctionCall(UnaryV2VFunctionName, 1)
		}
		if vectorVarNames[t.Value] {
			p.next()
			return leaf(VectorVariable, t), nil
		}
		return nil, newParseError(t.Pos, "expected a vector factor, found identifier %q", t.Value)
	default:
		return nil, newParseError(t.Pos, "expected a vector factor, found %s", t)
	}
}

func (p *parser) parseBracketed(inner func() (*Node, error)) (*Node, error) {
	p.next() // consume '('
	n, err := inner()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != token.RParen {
		return nil, newParseError(p.peek().Pos, "expected ')', found %s", p.peek())
	}
	p.next()
	return n, nil
}

// parseScalarIdentFactor resolves an identifier appearing where a
// scalar_factor is expected: a nullary/unary-s2s/unary-v2s/binary-v2s
// function call, an indexed vector component, a scalar constant, or a
// free scalar variable. A bare vector variable ("x", "y") is a parse
// error here: the grammar's scalar_factor production has no alternative
// that accepts one directly.
func (p *parser) parseScalarIdentFactor() (*Node, error) {
	t := p.peek()
	switch {
	case nullaryA2SNames[t.Value]:
		return p.parseFunctionCall(NullaryA2SFunctionName, 0)
	case unaryS2SNames[t.Value]:
		return p.parseFunctionCall(UnaryS2SFunctionName, 1)
	case unaryV2SNames[t.Value]:
		return p.parseFunctionCall(UnaryV2SFunctionName, 1)
	case binaryV2SNames[t.Value]:
		return p.parseFunctionCall(BinaryV2SFunctionName, 2)
	case vectorVarNames[t.Value]:
		return p.parseIndexedVectorVariable()
	case constantNames[t.Value]:
		p.next()
		return leaf(ScalarConstant, t), nil
	default:
		p.next()
		return leaf(ScalarVariable, t), nil
	}
}

func (p *parser) parseIndexedVectorVariable() (*Node, error) {
	vt := p.next()
	vnode := leaf(VectorVariable, vt)
	if p.peek().Type != token.Underscore {
		return nil, newParseError(p.peek().Pos, "%q is a vector variable; expected '_' and an index", vt.Value)
	}
	p.next()
	it := p.peek()
	if it.Type != token.Number || !isAllDigits(it.Value) {
		return nil, newParseError(it.Pos, "expected a digit index after '%s_', found %s", vt.Value, it)
	}
	p.next()
	inode := leaf(Index, it)
	return &Node{
		Symbol:   IndexedVectorVariable,
		Content:  vt.Value + "_" + it.Value,
		Children: []*Node{vnode, inode},
		Begin:    vt.Pos,
		End:      it.Pos,
	}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// functionArgKind describes what each function class's arguments parse as.
type functionArgKind int

const (
	argScalar functionArgKind = iota
	argVector
)

var functionNameArgKind = map[Symbol]functionArgKind{
	UnaryS2SFunctionName:   argScalar,
	UnaryV2SFunctionName:   argVector,
	UnaryV2VFunctionName:   argVector,
	BinaryV2SFunctionName:  argVector,
	NullaryA2SFunctionName: argScalar, // unused: arity 0
}

// parseFunctionCall parses "name(arg,...)" for the given name symbol and
// arity, returning a functionCall wrapper node (name followed by its
// argument subtrees) for CollapseFunctionName to hoist.
func (p *parser) parseFunctionCall(sym Symbol, arity int) (*Node, error) {
	nameTok := p.next()
	name := leaf(sym, nameTok)
	if p.peek().Type != token.LParen {
		return nil, newParseError(p.peek().Pos, "expected '(' after %q, found %s", nameTok.Value, p.peek())
	}
	p.next()

	children := []*Node{name}
	kind := functionNameArgKind[sym]
	for i := 0; i < arity; i++ {
		var (
			arg *Node
			err error
		)
		if kind == argVector {
			arg, err = p.parseVectorExpression()
		} else {
			arg, err = p.parseScalarExpression()
		}
		if err != nil {
			return nil, err
		}
		children = append(children, arg)
		if i < arity-1 {
			if p.peek().Type != token.Comma {
				return nil, newParseError(p.peek().Pos, "expected ',' in %q argument list, found %s", nameTok.Value, p.peek())
			}
			p.next()
		}
	}
	if p.peek().Type != token.RParen {
		return nil, newParseError(p.peek().Pos, "expected ')' closing %q, found %s", nameTok.Value, p.peek())
	}
	p.next()
	return &Node{Symbol: functionCall, Children: children, Begin: nameTok.Pos}, nil
}
