package analyze

import (
	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/symbol"
	"github.com/minicc/minicc/types"
)

// extDef dispatches one top-level declaration: a variable declaration
// list, a function definition, or a function declaration.
func (a *Analyzer) extDef(n node.Node) {
	a.logf(n, "ExtDef")
	switch t := n.(type) {
	case *node.ExtVarDef:
		a.extVarDef(t)
	case *node.FunDef:
		a.funDef(t)
	case *node.FunDecl:
		a.funDecl(t)
	default:
		panic("analyze: unexpected top-level node")
	}
}

func (a *Analyzer) extVarDef(n *node.ExtVarDef) {
	declType := a.extDefSpecifierType(n, n.Spec, len(n.Decs) > 0)
	if len(n.Decs) == 0 {
		a.setType(n, types.Unit())
		return
	}
	a.declareType = declType
	for _, vd := range n.Decs {
		sym := a.varDec(vd)
		if existing := a.scope.FindHere(sym.Name); existing != nil {
			a.report(vd, 3, "%w: %q", ErrVarRedefined, sym.Name)
		} else {
			sym.State = symbol.Defined
			a.scope.PushFront(sym)
		}
	}
	a.declareType = nil
	a.setType(n, types.Unit())
}

func (a *Analyzer) funDef(n *node.FunDef) {
	declType := a.extDefSpecifierType(n, n.Spec, true)
	sym, fnScope := a.funDec(n.FunDec, declType)

	prevScope := a.scope
	prevRet := a.returnType
	a.scope = fnScope
	a.returnType = declType
	a.compSt(n.Body)
	a.returnType = prevRet
	a.scope = prevScope

	a.installFunction(n.FunDec, sym, true)
	a.setType(n, types.Unit())
}

func (a *Analyzer) funDecl(n *node.FunDecl) {
	declType := a.extDefSpecifierType(n, n.Spec, true)
	sym, _ := a.funDec(n.FunDec, declType)
	a.installFunction(n.FunDec, sym, false)
	a.setType(n, types.Unit())
}

// extDefSpecifierType computes the declare_type for an ExtDef-level
// specifier, first installing or promoting any struct tag it names.
// needDeclType is false only for a bare "Specifier ;" with no
// declarators at all: "struct S;" alone only ever forward-declares, and
// never resolves (so never reports error 17) since nothing is actually
// typed against it.
func (a *Analyzer) extDefSpecifierType(n node.Node, spec *node.Specifier, needDeclType bool) *types.Type {
	if !spec.IsStruct {
		return a.primType(spec.Prim)
	}
	ss := spec.StructSpec
	built := a.installOrPromoteStructTag(n, ss)
	if !needDeclType {
		return nil
	}
	if ss.IsDef {
		return built
	}
	return a.resolveStructReference(n, ss.Tag)
}

// installFunction reconciles a signature against whatever this name
// already names at the top level: a non-function collision, or a
// redefinition of an already-defined function, is error 4; a declaration
// that disagrees with an earlier one's signature is error 19; otherwise a
// definition promotes a matching forward declaration to Defined.
func (a *Analyzer) installFunction(n node.Node, sym *symbol.Symbol, isDefinition bool) {
	if isDefinition {
		sym.State = symbol.Defined
	}
	existing := a.scope.FindHere(sym.Name)
	if existing == nil {
		a.scope.PushFront(sym)
		return
	}
	switch {
	case existing.Type.Kind() != types.KFunc:
		a.report(n, 4, "%w: %q", ErrRedefinedNotFunction, sym.Name)
	case existing.State == symbol.Defined:
		a.report(n, 4, "%w: %q", ErrFuncRedefined, sym.Name)
	case !types.Equal(existing.Type, sym.Type, false):
		a.report(n, 19, "%w: %q", ErrFuncSignatureConflict, sym.Name)
	case isDefinition:
		existing.State = symbol.Defined
	}
}

// sweep runs once after every ExtDef has been analyzed: any function
// still only Declared was forward-declared but never given a body.
func (a *Analyzer) sweep() {
	for _, sym := range a.scope.Iter() {
		if sym.Type.Kind() == types.KFunc && sym.State == symbol.Declared {
			a.reportAt(sym.DeclaredAt, 18, "%w: %q", ErrFuncNeverDefined, sym.Name)
		}
	}
}
