package analyze

import (
	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/symbol"
	"github.com/minicc/minicc/types"
)

// varDec builds the Symbol named by a (possibly array-wrapped) declarator,
// using a.declareType as the base. VarDec wraps its base from the inside
// out — "a[2][3]" parses as VarDec{Dim:3, Inner: VarDec{Dim:2, Inner: leaf
// "a"}} — so recursing into Inner before folding in this node's own Dim
// appends dimensions in the same left-to-right order they were written.
func (a *Analyzer) varDec(vd *node.VarDec) *symbol.Symbol {
	if vd.Inner == nil {
		return &symbol.Symbol{Name: vd.Ident, Type: a.declareType, DeclaredAt: vd.Tok().Lineno()}
	}
	sym := a.varDec(vd.Inner)
	var base *types.Type
	var dims []int
	if sym.Type.Kind() == types.KArray {
		base = sym.Type.Base()
		dims = append(append([]int{}, sym.Type.Dims()...), vd.Dim)
	} else {
		base = sym.Type
		dims = []int{vd.Dim}
	}
	sym.Type = types.NewArray(base, dims)
	return sym
}

// paramDec analyzes one VarList entry: its own declarator type, installed
// into the function-header scope that must already be current. A name
// repeated across the parameter list is error 3, the same code ordinary
// variable redefinition uses — a parameter list is just a scope like any
// other.
func (a *Analyzer) paramDec(pd *node.ParamDec) *symbol.Symbol {
	prevDeclare := a.declareType
	a.declareType = a.specifierType(pd.Spec)
	sym := a.varDec(pd.Dec)
	a.declareType = prevDeclare

	if existing := a.scope.FindHere(sym.Name); existing != nil {
		a.report(pd, 3, "%w: %q", ErrParamRedefined, sym.Name)
	} else {
		sym.State = symbol.Defined
		a.scope.PushFront(sym)
	}
	a.setType(pd, sym.Type)
	return sym
}

// funDec builds a function's signature from its header, opening a fresh
// scope for the parameter list. The caller reuses that scope as the
// parent of the function body's own CompSt scope, so parameters are
// visible inside the body without being re-declared there.
func (a *Analyzer) funDec(fd *node.FunDec, retType *types.Type) (*symbol.Symbol, *symbol.Scope) {
	a.logf(fd, "FunDec (%s)", fd.Name)
	fnScope := symbol.New(a.scope)
	prevScope := a.scope
	a.scope = fnScope
	params := make([]*types.Type, 0, len(fd.Params))
	for _, pd := range fd.Params {
		psym := a.paramDec(pd)
		params = append(params, psym.Type)
	}
	a.scope = prevScope

	sym := &symbol.Symbol{Name: fd.Name, Type: types.NewFunc(params, retType), DeclaredAt: fd.Tok().Lineno()}
	a.setType(fd, sym.Type)
	return sym, fnScope
}

// dec analyzes "VarDec" or "VarDec = Exp". An initializer's type is always
// checked against the declarator, even inside a struct body (member
// defaults aren't allowed, but their type still gets checked) — installing
// the result into a.scope is Def's job, since whether a same-name
// collision is error 3 or error 15 depends on context only Def tracks.
func (a *Analyzer) dec(d *node.Dec) *symbol.Symbol {
	sym := a.varDec(d.VarDec)
	if d.Init != nil {
		initType := a.exp(d.Init)
		if !types.Equal(sym.Type, initType, false) {
			a.report(d, 5, "%w: %q of type %s with %s", ErrInitTypeMismatch, sym.Name, sym.Type, initType)
		}
	}
	a.setType(d, types.Unit())
	return sym
}

// def analyzes "Specifier DecList ;", used both for ordinary local
// declarations and, with a.inStruct set by the caller, for a struct's
// member list. Every declarator's type and initializer is resolved first;
// only then does each get checked against the enclosing scope and
// installed — a name collision takes priority over the separate "struct
// member has a default value" complaint, so the two never double-report
// the same declarator.
func (a *Analyzer) def(d *node.Def) {
	a.logf(d, "Def")
	prevDeclare := a.declareType
	a.declareType = a.specifierType(d.Spec)

	decls := make([]*symbol.Symbol, len(d.Decs))
	for i, decNode := range d.Decs {
		decls[i] = a.dec(decNode)
	}
	for i, sym := range decls {
		decNode := d.Decs[i]
		switch existing := a.scope.FindHere(sym.Name); {
		case existing != nil && a.inStruct:
			a.report(decNode, 15, "%w: %q", ErrStructMemberRedefined, sym.Name)
		case existing != nil:
			a.report(decNode, 3, "%w: %q", ErrVarRedefined, sym.Name)
		case a.inStruct && decNode.Init != nil:
			a.report(decNode, 15, "%w: %q", ErrStructMemberDefault, sym.Name)
		default:
			sym.State = symbol.Defined
			a.scope.PushFront(sym)
		}
	}

	a.declareType = prevDeclare
	a.setType(d, types.Unit())
}
