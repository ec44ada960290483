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

// Package parser implements a recursive descent parser for scripts.
package parser

import (
	"fmt"
	"io"

	"github.com/acorn-io/jjay/pkg/ast"
	"github.com/acorn-io/jjay/pkg/scanner"
	"github.com/acorn-io/jjay/pkg/token"
)

// Error is a syntax error. AtEOF is set when the parser ran out of input,
// which interactive callers treat as a request for more input.
type Error struct {
	Filename string
	Pos      token.Pos
	Msg      string
	AtEOF    bool
}

func (e *Error) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.Filename, e.Pos, e.Msg)
}

// IsIncomplete reports whether err is a syntax error caused by input ending
// early.
func IsIncomplete(err error) bool {
	e, ok := err.(*Error)
	return ok && e.AtEOF
}

type item struct {
	pos token.Pos
	tok token.Token
	lit string
}

// bailout is used to unwind the parser on the first error.
type bailout struct{}

// The parser structure holds the parser's internal state.
type parser struct {
	filename string
	items    []item
	index    int
	err      *Error

	// Next token
	pos token.Pos   // token position
	tok token.Token // one token look-ahead
	lit string      // token literal
}

func (p *parser) init(filename string, src []byte) {
	p.filename = filename

	var s scanner.Scanner
	s.Init(src, func(pos token.Pos, msg string) {
		if p.err == nil {
			p.err = &Error{
				Filename: filename,
				Pos:      pos,
				Msg:      msg,
			}
		}
	})

	for {
		pos, tok, lit := s.Scan()
		p.items = append(p.items, item{pos: pos, tok: tok, lit: lit})
		if tok == token.EOF {
			break
		}
	}

	p.index = -1
	p.next()
}

// Advance to the next token.
func (p *parser) next() {
	if p.index < len(p.items)-1 {
		p.index++
	}
	it := p.items[p.index]
	p.pos, p.tok, p.lit = it.pos, it.tok, it.lit
}

func (p *parser) peek() token.Token {
	if p.index < len(p.items)-1 {
		return p.items[p.index+1].tok
	}
	return token.EOF
}

func (p *parser) errf(pos token.Pos, msg string, args ...interface{}) {
	p.err = &Error{
		Filename: p.filename,
		Pos:      pos,
		Msg:      fmt.Sprintf(msg, args...),
		AtEOF:    p.tok == token.EOF,
	}
	panic(bailout{})
}

func (p *parser) errorExpected(obj string) {
	switch {
	case p.tok == token.EOF:
		p.errf(p.pos, "expected %s, found EOF", obj)
	case p.tok.IsLiteral():
		p.errf(p.pos, "expected %s, found '%s' %s", obj, p.tok, p.lit)
	default:
		p.errf(p.pos, "expected %s, found '%s'", obj, p.tok)
	}
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected("'" + tok.String() + "'")
	}
	p.next() // make progress
	return pos
}

// ----------------------------------------------------------------------------
// Identifiers

func (p *parser) parseIdent() *ast.Ident {
	pos := p.pos
	name := p.lit
	p.expect(token.IDENT)
	return &ast.Ident{NamePos: pos, Name: name}
}

// ----------------------------------------------------------------------------
// Statements

func (p *parser) parseStmts() (list []ast.Stmt) {
	for p.tok == token.LET {
		list = append(list, p.parseLet())
		p.expect(token.SEMICOLON)
	}
	return
}

func (p *parser) parseLet() *ast.Let {
	pos := p.expect(token.LET)
	let := &ast.Let{
		LetPos: pos,
		Name:   p.parseIdent(),
	}

	for p.tok == token.LPAREN {
		p.next()
		var param ast.Param
		if p.tok != token.RPAREN {
			param.Name = p.parseIdent()
		}
		p.expect(token.RPAREN)
		let.Params = append(let.Params, param)
	}

	p.expect(token.ASSIGN)
	let.Value = p.parseExpr()
	return let
}

// ----------------------------------------------------------------------------
// Expressions

func (p *parser) parseOperand() ast.Expr {
	switch p.tok {
	case token.IDENT:
		return p.parseIdent()

	case token.NUMBER:
		x := &ast.Number{ValuePos: p.pos, Value: p.lit}
		p.next()
		return x

	case token.SUB:
		if p.peek() == token.NUMBER {
			pos := p.pos
			p.next()
			x := &ast.Number{ValuePos: pos, Value: "-" + p.lit}
			p.next()
			return x
		}

	case token.STRING:
		x := &ast.String{ValuePos: p.pos, Value: p.lit}
		p.next()
		return x

	case token.LBRACE:
		return p.parseObject()

	case token.LBRACK:
		return p.parseArray()

	case token.BACKSLASH:
		return p.parseLambda()

	case token.LPAREN:
		return p.parseBlock()
	}

	p.errorExpected("expression")
	return nil
}

func (p *parser) parseBlock() *ast.Block {
	block := &ast.Block{
		Lparen: p.expect(token.LPAREN),
	}
	block.Stmts = p.parseStmts()
	block.Expr = p.parseExpr()
	p.expect(token.RPAREN)
	return block
}

func (p *parser) parseObject() *ast.Object {
	obj := &ast.Object{
		Lbrace: p.expect(token.LBRACE),
	}

	for p.tok != token.RBRACE {
		var entry ast.ObjectEntry
		switch p.tok {
		case token.STRING:
			entry.KeyString = &ast.String{ValuePos: p.pos, Value: p.lit}
			p.next()
		case token.IDENT:
			entry.KeyIdent = p.parseIdent()
		default:
			p.errorExpected("object key")
		}
		p.expect(token.COLON)
		entry.Value = p.parseExpr()
		obj.Entries = append(obj.Entries, entry)

		if p.tok != token.COMMA {
			break
		}
		p.next()
	}

	p.expect(token.RBRACE)
	return obj
}

func (p *parser) parseArray() *ast.Array {
	arr := &ast.Array{
		Lbrack: p.expect(token.LBRACK),
	}

	for p.tok != token.RBRACK {
		arr.Items = append(arr.Items, p.parseExpr())
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}

	p.expect(token.RBRACK)
	return arr
}

func (p *parser) parseLambda() *ast.Lambda {
	lambda := &ast.Lambda{
		Backslash: p.expect(token.BACKSLASH),
	}

	lambda.Params = append(lambda.Params, p.parseIdent())
	for p.tok == token.COMMA {
		p.next()
		lambda.Params = append(lambda.Params, p.parseIdent())
	}

	p.expect(token.ARROW)
	lambda.Body = p.parseExpr()
	return lambda
}

// parseNullPropagation consumes an optional "?" directly after a path
// segment.
func (p *parser) parseNullPropagation() bool {
	if p.tok == token.QUESTION {
		p.next()
		return true
	}
	return false
}

func (p *parser) parsePrimaryExpr() ast.Expr {
	x := p.parseOperand()
	for {
		switch p.tok {
		case token.QUESTION:
			x = &ast.NullPropagate{X: x, Question: p.pos}
			p.next()
		case token.PERIOD:
			p.next()
			sel := p.parseIdent()
			x = &ast.PathAccess{
				Base:            x,
				Segment:         ast.PathSegment{Ident: sel},
				NullPropagation: p.parseNullPropagation(),
			}
		case token.LBRACK:
			p.next()
			index := p.parseExpr()
			p.expect(token.RBRACK)
			x = &ast.PathAccess{
				Base:            x,
				Segment:         ast.PathSegment{Expr: index},
				NullPropagation: p.parseNullPropagation(),
			}
		case token.LPAREN:
			call := &ast.Call{
				Func:   x,
				Lparen: p.pos,
			}
			p.next()
			if p.tok != token.RPAREN {
				call.Arg = p.parseExpr()
			}
			p.expect(token.RPAREN)
			x = call
		default:
			return x
		}
	}
}

func (p *parser) parseBinaryExpr(prec1 int) ast.Expr {
	x := p.parsePrimaryExpr()
	for {
		prec := p.tok.Precedence()
		if prec < prec1 || prec == token.LowestPrec {
			return x
		}
		op, _ := ast.OpForToken(p.tok)
		pos := p.pos
		p.next()
		x = &ast.BinOp{
			Left:  x,
			OpPos: pos,
			Op:    op,
			Right: p.parseBinaryExpr(prec + 1),
		}
	}
}

func (p *parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(token.LowestPrec + 1)
}

// ----------------------------------------------------------------------------
// Source files

func (p *parser) parseScript() *ast.Script {
	script := &ast.Script{}
	script.Stmts = p.parseStmts()
	script.Expr = p.parseExpr()
	if p.tok != token.EOF {
		p.errorExpected("';' or end of script")
	}
	return script
}

// ParseFile parses the source read from src. filename is only used in error
// messages.
func ParseFile(filename string, src io.Reader) (*ast.Script, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Parse(filename, data)
}

func ParseString(src string) (*ast.Script, error) {
	return Parse("", []byte(src))
}

func Parse(filename string, src []byte) (script *ast.Script, err error) {
	var p parser

	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
		}
		if p.err != nil {
			script, err = nil, p.err
		}
	}()

	p.init(filename, src)
	if p.err != nil {
		return nil, p.err
	}
	return p.parseScript(), nil
}
