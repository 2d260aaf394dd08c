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

// Package lex scans vexpr source text into a stream of [token.Token]s.
//
// The scanner is a direct, single-threaded adaptation of the rune-buffer
// bookkeeping in github.com/ianlewis/lexparse's Lexer: a cursor tracks the
// start of the token currently being built while the reader tracks the
// current read position, and Ignore/Emit reset the cursor to the reader's
// position. Unlike that Lexer, NextToken is called directly by the parser
// instead of being driven by a goroutine feeding a channel: the grammar in
// parsetree needs unbounded backtracking over a single short expression, not
// producer/consumer decoupling over a long stream.
package lex

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ianlewis/runeio"

	"github.com/vexprlang/vexpr/token"
)

// eof is a sentinel rune returned by Scanner.next at end of input.
const eof = -1

// ErrInvalidChar is wrapped into the error returned by NextToken when the
// scanner encounters a byte it cannot start a token with.
var ErrInvalidChar = errors.New("invalid character")

// Scanner tokenizes a rune stream into vexpr tokens.
type Scanner struct {
	r *runeio.Reader

	b strings.Builder

	pos, line, column                int
	startPos, startLine, startColumn int

	err error
}

// New creates a Scanner that reads from r.
func New(r io.Reader) *Scanner {
	return &Scanner{
		r:      runeio.NewReader(r),
		line:   0,
		column: 0,
	}
}

func (s *Scanner) position() token.Position {
	return token.Position{Offset: s.startPos, Line: s.startLine + 1, Column: s.startColumn + 1}
}

// next reads and returns the next rune, advancing the reader and buffering
// it into the current token's text.
func (s *Scanner) next() rune {
	if s.err != nil {
		return eof
	}
	rn, _, err := s.r.ReadRune()
	if err != nil {
		s.setErr(err)
		return eof
	}
	s.pos++
	s.column++
	if rn == '\n' {
		s.line++
		s.column = 0
	}
	s.b.WriteRune(rn)
	return rn
}

// peek returns the next rune without advancing the reader.
func (s *Scanner) peek() rune {
	rn, err := s.r.Peek(1)
	if err != nil || len(rn) < 1 {
		return eof
	}
	return rn[0]
}

func (s *Scanner) setErr(err error) {
	if s.err == nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
}

// ignore discards the buffered token text and resets the token cursor to the
// reader's current position.
func (s *Scanner) ignore() {
	s.startPos, s.startLine, s.startColumn = s.pos, s.line, s.column
	s.b.Reset()
}

// emit builds a Token of the given type from the buffered text and resets
// the cursor for the next token.
func (s *Scanner) emit(typ token.Type) *token.Token {
	t := &token.Token{Type: typ, Value: s.b.String(), Pos: s.position()}
	s.ignore()
	return t
}

// NextToken scans and returns the next token. At end of input it returns a
// token.EOF token and a nil error.
func (s *Scanner) NextToken() (*token.Token, error) {
	for {
		s.ignore()
		rn := s.peek()
		switch {
		case rn == eof:
			if s.err != nil {
				return nil, fmt.Errorf("lex: %w", s.err)
			}
			return &token.Token{Type: token.EOF, Pos: s.position()}, nil
		case rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r':
			s.next()
			continue
		case unicode.IsDigit(rn):
			return s.scanNumber()
		case unicode.IsLetter(rn):
			return s.scanIdent()
		default:
			return s.scanPunct()
		}
	}
}

func (s *Scanner) scanNumber() (*token.Token, error) {
	for unicode.IsDigit(s.peek()) {
		s.next()
	}
	if s.peek() == '.' {
		s.next()
		if !unicode.IsDigit(s.peek()) {
			return nil, fmt.Errorf("lex: %w: malformed number %q at %s", ErrInvalidChar, s.b.String(), s.position())
		}
		for unicode.IsDigit(s.peek()) {
			s.next()
		}
	}
	if rn := s.peek(); rn == 'e' || rn == 'E' {
		s.next()
		if rn := s.peek(); rn == '+' || rn == '-' {
			s.next()
		}
		if !unicode.IsDigit(s.peek()) {
			return nil, fmt.Errorf("lex: %w: malformed number exponent %q at %s", ErrInvalidChar, s.b.String(), s.position())
		}
		for unicode.IsDigit(s.peek()) {
			s.next()
		}
	}
	return s.emit(token.Number), nil
}

func (s *Scanner) scanIdent() (*token.Token, error) {
	for {
		rn := s.peek()
		if !unicode.IsLetter(rn) && !unicode.IsDigit(rn) {
			break
		}
		s.next()
	}
	return s.emit(token.Ident), nil
}

func (s *Scanner) scanPunct() (*token.Token, error) {
	rn := s.next()
	switch rn {
	case '+':
		return s.emit(token.Plus), nil
	case '-':
		return s.emit(token.Minus), nil
	case '*':
		return s.emit(token.Star), nil
	case '/':
		return s.emit(token.Slash), nil
	case '_':
		return s.emit(token.Underscore), nil
	case '(':
		return s.emit(token.LParen), nil
	case ')':
		return s.emit(token.RParen), nil
	case ',':
		return s.emit(token.Comma), nil
	default:
		return nil, fmt.Errorf("lex: %w: %q at %s", ErrInvalidChar, string(rn), s.position())
	}
}
