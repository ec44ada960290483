package ast

import "github.com/acorn-io/jjay/pkg/token"

type Op int

const (
	OpPipe Op = iota
	OpEq
	OpNe
	OpGe
	OpLe
	OpGt
	OpLt
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var ops = [...]struct {
	tok      token.Token
	funcName string
}{
	OpPipe: {token.PIPE, "/pipe"},
	OpEq:   {token.EQL, "/eq"},
	OpNe:   {token.NEQ, "/ne"},
	OpGe:   {token.GEQ, "/ge"},
	OpLe:   {token.LEQ, "/le"},
	OpGt:   {token.GTR, "/gt"},
	OpLt:   {token.LSS, "/lt"},
	OpAdd:  {token.ADD, "/add"},
	OpSub:  {token.SUB, "/sub"},
	OpMul:  {token.MUL, "/mul"},
	OpDiv:  {token.QUO, "/div"},
}

// FuncName is the name of the scope binding that implements the operator.
func (o Op) FuncName() string {
	return ops[o].funcName
}

func (o Op) String() string {
	return ops[o].tok.String()
}

// OpForToken returns the binary operator for tok.
func OpForToken(tok token.Token) (Op, bool) {
	for i, op := range ops {
		if op.tok == tok {
			return Op(i), true
		}
	}
	return 0, false
}
