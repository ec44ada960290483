// Package ast declares the syntax tree produced by the parser and consumed by
// the evaluator. Nodes are never modified after parsing.
package ast

import "github.com/acorn-io/jjay/pkg/token"

type Node interface {
	Pos() token.Pos
}

type Expr interface {
	Node
	exprNode()
}

type Stmt interface {
	Node
	stmtNode()
}

// Script is a sequence of statements followed by the expression whose value
// is the result of the script.
type Script struct {
	Stmts []Stmt
	Expr  Expr
}

func (s *Script) Pos() token.Pos {
	if len(s.Stmts) > 0 {
		return s.Stmts[0].Pos()
	}
	return s.Expr.Pos()
}

// Block has the same shape as Script but appears as an expression, written
// as parentheses.
type Block struct {
	Lparen token.Pos
	Stmts  []Stmt
	Expr   Expr
}

// Let binds Name. Each entry of Params is one parenthesised parameter group,
// so "let f(x)(y) = e" has two and "let f() = e" has one group without a name.
type Let struct {
	LetPos token.Pos
	Name   *Ident
	Params []Param
	Value  Expr
}

type Param struct {
	// Name is nil for an empty group.
	Name *Ident
}

type Ident struct {
	NamePos token.Pos
	Name    string
}

// BinOp is a binary operation; it evaluates by calling the function bound to
// Op.FuncName() with Left and then Right.
type BinOp struct {
	Left  Expr
	OpPos token.Pos
	Op    Op
	Right Expr
}

// Call applies Func to Arg. Arg is nil for an empty argument list.
type Call struct {
	Func   Expr
	Lparen token.Pos
	Arg    Expr
}

// PathAccess reads a property or index from Base. NullPropagation is set when
// the segment is followed by "?".
type PathAccess struct {
	Base            Expr
	Segment         PathSegment
	NullPropagation bool
}

// PathSegment is either a literal property name (".name") or a bracketed
// expression ("[expr]"); exactly one field is set.
type PathSegment struct {
	Ident *Ident
	Expr  Expr
}

// NullPropagate is a postfix "?" on an expression.
type NullPropagate struct {
	X        Expr
	Question token.Pos
}

type Object struct {
	Lbrace  token.Pos
	Entries []ObjectEntry
}

// ObjectEntry has exactly one of the key fields set.
type ObjectEntry struct {
	KeyString *String
	KeyIdent  *Ident
	Value     Expr
}

type Array struct {
	Lbrack token.Pos
	Items  []Expr
}

// Lambda is an anonymous curried function with at least one parameter.
type Lambda struct {
	Backslash token.Pos
	Params    []*Ident
	Body      Expr
}

// String holds the raw text between the quotes of a string literal.
type String struct {
	ValuePos token.Pos
	Value    string
}

// Number holds the raw text of a numeric literal.
type Number struct {
	ValuePos token.Pos
	Value    string
}

func (x *Block) Pos() token.Pos         { return x.Lparen }
func (x *Let) Pos() token.Pos           { return x.LetPos }
func (x *Ident) Pos() token.Pos         { return x.NamePos }
func (x *BinOp) Pos() token.Pos         { return x.Left.Pos() }
func (x *Call) Pos() token.Pos          { return x.Func.Pos() }
func (x *PathAccess) Pos() token.Pos    { return x.Base.Pos() }
func (x *NullPropagate) Pos() token.Pos { return x.X.Pos() }
func (x *Object) Pos() token.Pos        { return x.Lbrace }
func (x *Array) Pos() token.Pos         { return x.Lbrack }
func (x *Lambda) Pos() token.Pos        { return x.Backslash }
func (x *String) Pos() token.Pos        { return x.ValuePos }
func (x *Number) Pos() token.Pos        { return x.ValuePos }

func (*Block) exprNode()         {}
func (*Ident) exprNode()         {}
func (*BinOp) exprNode()         {}
func (*Call) exprNode()          {}
func (*PathAccess) exprNode()    {}
func (*NullPropagate) exprNode() {}
func (*Object) exprNode()        {}
func (*Array) exprNode()         {}
func (*Lambda) exprNode()        {}
func (*String) exprNode()        {}
func (*Number) exprNode()        {}

func (*Let) stmtNode() {}
