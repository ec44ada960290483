// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scanner implements the lexer for script source text.
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/acorn-io/jjay/pkg/token"
)

// An ErrorHandler may be provided to Scanner.Init. If a syntax error is
// encountered and a handler was installed, the handler is called with a
// position and an error message.
type ErrorHandler func(pos token.Pos, msg string)

const eof = -1

// A Scanner holds the scanner's internal state while processing a given
// text. It must be initialized via Init before use.
type Scanner struct {
	src []byte
	err ErrorHandler

	ch         rune // current character
	offset     int  // character offset
	rdOffset   int  // reading offset (position after current character)
	line       int
	lineOffset int // offset of the current line

	ErrorCount int
}

func (s *Scanner) Init(src []byte, err ErrorHandler) {
	s.src = src
	s.err = err
	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.line = 1
	s.lineOffset = 0
	s.ErrorCount = 0

	s.next()
	if s.ch == 0xFEFF {
		s.next() // ignore BOM at file beginning
	}
}

// next reads the next Unicode char into s.ch; s.ch < 0 means end-of-file.
func (s *Scanner) next() {
	if s.rdOffset >= len(s.src) {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.line++
			s.lineOffset = s.offset
		}
		s.ch = eof
		return
	}

	s.offset = s.rdOffset
	if s.ch == '\n' {
		s.line++
		s.lineOffset = s.offset
	}

	r, w := rune(s.src[s.rdOffset]), 1
	switch {
	case r == 0:
		s.error(s.offset, "illegal character NUL")
	case r >= utf8.RuneSelf:
		r, w = utf8.DecodeRune(s.src[s.rdOffset:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.offset, "illegal UTF-8 encoding")
		}
	}
	s.rdOffset += w
	s.ch = r
}

func (s *Scanner) peek() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

func (s *Scanner) pos(offset int) token.Pos {
	return token.Pos{
		Offset: offset,
		Line:   s.line,
		Column: offset - s.lineOffset + 1,
	}
}

func (s *Scanner) error(offset int, msg string) {
	if s.err != nil {
		s.err(s.pos(offset), msg)
	}
	s.ErrorCount++
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r':
			s.next()
		case s.ch == '/' && s.peek() == '/':
			for s.ch != '\n' && s.ch != eof {
				s.next()
			}
		default:
			return
		}
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.next()
	}
}

// scanNumber accepts the shape of a JSON number. Whether the literal is well
// formed (no leading zeros and so on) is decided when it is decoded.
func (s *Scanner) scanNumber() string {
	offs := s.offset
	s.scanDigits()
	if s.ch == '.' && isDigit(rune(s.peek())) {
		s.next()
		s.scanDigits()
	}
	if s.ch == 'e' || s.ch == 'E' {
		p := s.peek()
		if isDigit(rune(p)) || ((p == '+' || p == '-') && s.rdOffset+1 < len(s.src) && isDigit(rune(s.src[s.rdOffset+1]))) {
			s.next()
			if s.ch == '+' || s.ch == '-' {
				s.next()
			}
			s.scanDigits()
		}
	}
	return string(s.src[offs:s.offset])
}

// scanString scans the body of a string literal; the opening quote has
// already been consumed. The returned literal excludes both quotes.
func (s *Scanner) scanString(start int) string {
	offs := s.offset
	for {
		ch := s.ch
		if ch == '\n' || ch == eof {
			s.error(start, "string literal not terminated")
			return string(s.src[offs:s.offset])
		}
		s.next()
		if ch == '"' {
			break
		}
		if ch == '\\' {
			if s.ch == '\n' || s.ch == eof {
				continue
			}
			s.next()
		}
	}
	return string(s.src[offs : s.offset-1])
}

// Scan returns the next token. The literal is set for IDENT, NUMBER and
// STRING tokens and for ILLEGAL tokens, where it holds the offending text.
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
	s.skipWhitespaceAndComments()

	pos = s.pos(s.offset)
	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		tok = token.Lookup(lit)
		if tok != token.IDENT {
			lit = ""
		}
	case isDigit(ch):
		tok = token.NUMBER
		lit = s.scanNumber()
	default:
		s.next()
		switch ch {
		case eof:
			tok = token.EOF
		case '"':
			tok = token.STRING
			lit = s.scanString(pos.Offset)
		case '|':
			tok = token.PIPE
		case '=':
			tok = s.switch2(token.ASSIGN, token.EQL)
		case '!':
			if s.ch == '=' {
				s.next()
				tok = token.NEQ
			} else {
				tok = token.ILLEGAL
				lit = "!"
				s.error(pos.Offset, "unexpected character '!'")
			}
		case '>':
			tok = s.switch2(token.GTR, token.GEQ)
		case '<':
			tok = s.switch2(token.LSS, token.LEQ)
		case '+':
			tok = token.ADD
		case '-':
			if s.ch == '>' {
				s.next()
				tok = token.ARROW
			} else {
				tok = token.SUB
			}
		case '*':
			tok = token.MUL
		case '/':
			tok = token.QUO
		case '?':
			tok = token.QUESTION
		case '.':
			tok = token.PERIOD
		case ',':
			tok = token.COMMA
		case ':':
			tok = token.COLON
		case ';':
			tok = token.SEMICOLON
		case '\\':
			tok = token.BACKSLASH
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		default:
			tok = token.ILLEGAL
			lit = string(ch)
			if unicode.IsPrint(ch) {
				s.error(pos.Offset, fmt.Sprintf("unexpected character %q", ch))
			} else {
				s.error(pos.Offset, fmt.Sprintf("unexpected character %#U", ch))
			}
		}
	}
	return
}

func (s *Scanner) switch2(tok0, tok1 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	return tok0
}
