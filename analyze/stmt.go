package analyze

import (
	"fmt"

	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/types"
)

// compSt analyzes "{ DefList StmtList }" in a fresh scope nested under
// whatever scope is current — a function body's own CompSt nests under
// the function-header scope its parameters were declared in; a nested
// block statement nests under its enclosing block.
func (a *Analyzer) compSt(cs *node.CompSt) {
	a.logf(cs, "CompSt")
	a.withScope(func() {
		for _, d := range cs.Defs {
			a.def(d)
		}
		for _, s := range cs.Stmts {
			a.stmt(s)
		}
	})
	a.setType(cs, types.Unit())
}

func (a *Analyzer) stmt(n node.Node) {
	a.logf(n, "Stmt")
	switch t := n.(type) {
	case *node.CompSt:
		a.compSt(t)
	case *node.ExprStmt:
		a.exp(t.Expr)
		a.setType(t, types.Unit())
	case *node.ReturnStmt:
		a.returnStmt(t)
	case *node.IfStmt:
		a.ifStmt(t)
	case *node.WhileStmt:
		a.whileStmt(t)
	default:
		panic(fmt.Sprintf("analyze: unexpected statement node %T", n))
	}
}

// returnStmt analyzes "RETURN Exp ;" — the grammar has no valueless
// return, so Expr is always present.
func (a *Analyzer) returnStmt(rs *node.ReturnStmt) {
	if a.returnType == nil {
		panic("analyze: return statement analyzed outside a function body")
	}
	t := a.exp(rs.Expr)
	if !types.Equal(a.returnType, t, false) {
		a.report(rs, 8, "%w: expected %s, got %s", ErrReturnTypeMismatch, a.returnType, t)
	}
	a.setType(rs, types.Unit())
}

func (a *Analyzer) ifStmt(is *node.IfStmt) {
	ct := a.exp(is.Cond)
	if !types.CanLogic(ct) {
		a.report(is.Cond, 7, "%w: if condition, got %s", ErrCondNotInt, ct)
	}
	a.stmt(is.True)
	if is.Else != nil {
		a.stmt(is.Else)
	}
	a.setType(is, types.Unit())
}

func (a *Analyzer) whileStmt(ws *node.WhileStmt) {
	ct := a.exp(ws.Cond)
	if !types.CanLogic(ct) {
		a.report(ws.Cond, 7, "%w: while condition, got %s", ErrCondNotInt, ct)
	}
	a.stmt(ws.Body)
	a.setType(ws, types.Unit())
}
