package analyze

import (
	"fmt"

	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/symbol"
	"github.com/minicc/minicc/types"
)

// exp dispatches one expression node to its typing rule and tags it with
// the resulting type, which it also returns so callers don't have to call
// getType immediately afterward.
func (a *Analyzer) exp(n node.Node) *types.Type {
	a.logf(n, "Exp")
	switch t := n.(type) {
	case *node.IntLit:
		return a.setType(t, types.MetaInt())
	case *node.FloatLit:
		return a.setType(t, types.MetaFloat())
	case *node.IdentExpr:
		return a.identExpr(t)
	case *node.Paren:
		return a.setType(t, a.exp(t.Inner))
	case *node.UnaryExpr:
		return a.unaryExpr(t)
	case *node.LogicExpr:
		return a.logicExpr(t)
	case *node.RelExpr:
		return a.relExpr(t)
	case *node.ArithExpr:
		return a.arithExpr(t)
	case *node.AssignExpr:
		return a.assignExpr(t)
	case *node.CallExpr:
		return a.callExpr(t)
	case *node.IndexExpr:
		return a.indexExpr(t)
	case *node.MemberExpr:
		return a.memberExpr(t)
	default:
		panic(fmt.Sprintf("analyze: unexpected expression node %T", n))
	}
}

func (a *Analyzer) identExpr(n *node.IdentExpr) *types.Type {
	sym := a.scope.Find(n.Name)
	if sym == nil {
		a.report(n, 1, "%w: %q", ErrVarNotDeclared, n.Name)
		return a.setType(n, types.Never())
	}
	return a.setType(n, sym.Type)
}

// unaryExpr covers both "- Exp" (arithmetic negation, requires
// CanArith) and "! Exp" (logical negation, requires CanLogic). On
// failure the result falls back to Meta(Int) rather than the operand's
// own (invalid) type, matching every other arithmetic/logic rule's
// error-silencing convention.
func (a *Analyzer) unaryExpr(n *node.UnaryExpr) *types.Type {
	ot := a.exp(n.Operand)
	switch n.Op {
	case node.UnNot:
		if !types.CanLogic(ot) {
			a.report(n, 7, "%w: operand of !, got %s", ErrLogicOperandType, ot)
			return a.setType(n, types.MetaInt())
		}
		return a.setType(n, ot)
	default: // UnNeg
		if !types.CanArith(ot) {
			a.report(n, 7, "%w: operand of unary -, got %s", ErrArithOperandType, ot)
			return a.setType(n, types.MetaInt())
		}
		return a.setType(n, ot)
	}
}

// logicExpr covers "&&" and "||": the result is always Meta(Int),
// regardless of whether either operand is invalid, and each operand that
// fails CanLogic is reported independently.
func (a *Analyzer) logicExpr(n *node.LogicExpr) *types.Type {
	lt := a.exp(n.Left)
	rt := a.exp(n.Right)
	if !types.CanLogic(lt) {
		a.report(n.Left, 7, "%w: operand of %s, got %s", ErrLogicOperandType, n.Op, lt)
	}
	if !types.CanLogic(rt) {
		a.report(n.Right, 7, "%w: operand of %s, got %s", ErrLogicOperandType, n.Op, rt)
	}
	return a.setType(n, types.MetaInt())
}

// relExpr covers <, >, <=, >=, ==, != : the result is always Meta(Int);
// a single error 7 is reported if the operands aren't a comparable
// arithmetic pair, rather than per-operand.
func (a *Analyzer) relExpr(n *node.RelExpr) *types.Type {
	lt := a.exp(n.Left)
	rt := a.exp(n.Right)
	if !types.CanArithPair(lt, rt) {
		a.report(n, 7, "%w: %s and %s", ErrCompareTypes, lt, rt)
	}
	return a.setType(n, types.MetaInt())
}

// arithExpr covers +, -, *, / : the result is the left operand's type
// when both operands check out, else Meta(Int). Each operand that fails
// CanArith is reported independently; if both check out individually but
// differ in Meta kind, that mismatch is reported once at the expression.
func (a *Analyzer) arithExpr(n *node.ArithExpr) *types.Type {
	lt := a.exp(n.Left)
	rt := a.exp(n.Right)
	ok := true
	if !types.CanArith(lt) {
		a.report(n.Left, 7, "%w: operand of %s, got %s", ErrArithOperandType, n.Op, lt)
		ok = false
	}
	if !types.CanArith(rt) {
		a.report(n.Right, 7, "%w: operand of %s, got %s", ErrArithOperandType, n.Op, rt)
		ok = false
	}
	if ok && !types.CanArithPair(lt, rt) {
		a.report(n, 7, "%w: %s: %s vs %s", ErrArithTypeMismatch, n.Op, lt, rt)
		ok = false
	}
	if !ok {
		return a.setType(n, types.MetaInt())
	}
	return a.setType(n, lt)
}

// assignExpr checks the left side is an lvalue (error 6) and that both
// sides have the same type (error 5), independently — a left side that
// is neither an lvalue nor type-compatible reports both.
func (a *Analyzer) assignExpr(n *node.AssignExpr) *types.Type {
	lt := a.exp(n.Left)
	rt := a.exp(n.Right)
	ok := true
	if !isLvalue(n.Left) {
		a.report(n, 6, "%w", ErrAssignNotLValue)
		ok = false
	}
	if !types.Equal(lt, rt, false) {
		a.report(n, 5, "%w: %s to %s", ErrAssignTypeMismatch, rt, lt)
		ok = false
	}
	if !ok {
		return a.setType(n, types.Never())
	}
	return a.setType(n, lt)
}

// callExpr resolves the callee by name in the current scope, then checks
// arity and per-argument types. A name that resolves to a forward
// declaration without a body is still error 2 ("undeclared/undefined"),
// the same as a name that isn't declared at all — a declaration alone
// isn't enough to call a function.
func (a *Analyzer) callExpr(n *node.CallExpr) *types.Type {
	sym := a.scope.Find(n.Name)
	argTypes := make([]*types.Type, len(n.Args))
	for i, arg := range n.Args {
		argTypes[i] = a.exp(arg)
	}
	if sym == nil {
		a.report(n, 2, "%w: %q", ErrFuncallNotFound, n.Name)
		return a.setType(n, types.Never())
	}
	if !types.CanCall(sym.Type) {
		a.report(n, 11, "%w: %q", ErrFuncallNotCallable, n.Name)
		return a.setType(n, types.Never())
	}
	if sym.State != symbol.Defined {
		a.report(n, 2, "%w: %q", ErrFuncallNotDefined, n.Name)
		return a.setType(n, types.Never())
	}
	params := sym.Type.Params()
	if len(params) != len(argTypes) {
		a.report(n, 9, "%w: %q expects %d argument(s), got %d", ErrFuncallArgsAmount, n.Name, len(params), len(argTypes))
	} else {
		for i := range params {
			if !types.Equal(params[i], argTypes[i], false) {
				a.report(n.Args[i], 9, "%w: argument %d to %q: expected %s, got %s", ErrFuncallArgType, i+1, n.Name, params[i], argTypes[i])
			}
		}
	}
	return a.setType(n, sym.Type.Ret())
}

func (a *Analyzer) indexExpr(n *node.IndexExpr) *types.Type {
	lt := a.exp(n.Left)
	it := a.exp(n.Index)
	if !types.CanIndex(lt) {
		a.report(n.Left, 10, "%w: got %s", ErrArraySubNotArray, lt)
		return a.setType(n, types.Any())
	}
	if !types.CanLogic(it) {
		a.report(n.Index, 12, "%w: got %s", ErrArraySubNotInt, it)
	}
	return a.setType(n, types.DescendArray(lt))
}

func (a *Analyzer) memberExpr(n *node.MemberExpr) *types.Type {
	lt := a.exp(n.Left)
	if !types.CanMember(lt) {
		a.report(n.Left, 13, "%w: got %s", ErrStructNotAccessingStruct, lt)
		return a.setType(n, types.Never())
	}
	field, ok := types.FindMember(lt, n.Name)
	if !ok {
		a.report(n, 14, "%w: %s has no member %q", ErrStructFieldNotFound, lt, n.Name)
		return a.setType(n, types.Never())
	}
	return a.setType(n, field.Type)
}
