// Package analyze implements the semantic analyzer: it walks the AST
// delivered by parse, maintains a scoped symbol table, and emits numbered
// diagnostics for every violation of MiniC's type discipline.
package analyze

import (
	"fmt"
	"io"

	"github.com/minicc/minicc/diag"
	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/symbol"
	"github.com/minicc/minicc/types"
)

// Analyzer threads the Analysis Context (scope, declareType, returnType,
// inStruct) through a single-pass, syntax-directed traversal. Array
// declarators need no extra flag: varDec builds their type on the way
// back out of its recursion.
type Analyzer struct {
	fn   string
	diag *diag.Config
	errs []error

	scope       *symbol.Scope
	declareType *types.Type
	returnType  *types.Type
	inStruct    bool
	anonStructs int

	nodeTypes map[node.NodeId]*types.Type
}

// New returns an Analyzer for a named source file; fn is only used to
// tag diagnostics that need it (currently none do — line numbers are
// self-sufficient).
func New(fn string) *Analyzer {
	a := &Analyzer{fn: fn, diag: diag.New()}
	a.resetState()
	return a
}

func (a *Analyzer) resetState() {
	a.scope = symbol.New(nil)
	a.declareType = nil
	a.returnType = nil
	a.inStruct = false
	a.anonStructs = 0
	a.nodeTypes = map[node.NodeId]*types.Type{}
	a.errs = nil
}

// SetLog toggles traversal logging.
func (a *Analyzer) SetLog(on bool) { a.diag.SetLog(on) }

// SetError toggles error output. Diagnostics still clear HasPassed even
// when this is false.
func (a *Analyzer) SetError(on bool) { a.diag.SetError(on) }

// SetErrorWriter and SetLogWriter redirect the underlying diag.Config's
// output streams; mainly for tests.
func (a *Analyzer) SetErrorWriter(w io.Writer) { a.diag.SetErrorWriter(w) }
func (a *Analyzer) SetLogWriter(w io.Writer)   { a.diag.SetLogWriter(w) }

// Prepare resets the sticky passed flag to true.
func (a *Analyzer) Prepare() { a.diag.Prepare() }

// HasPassed reports whether no diagnostic has been emitted since the last
// Prepare.
func (a *Analyzer) HasPassed() bool { return a.diag.HasPassed() }

// Errors returns every diagnostic accumulated during the most recent Work
// call, in emission order.
func (a *Analyzer) Errors() []error { return a.errs }

// Work runs one complete analysis pass over extdefs (a Program's
// ExtDefList) and returns the passed flag. It always starts from a fresh
// scope and node-type table; Prepare governs the passed flag separately.
func (a *Analyzer) Work(extdefs []node.Node) bool {
	a.resetState()
	for _, n := range extdefs {
		a.extDef(n)
	}
	a.sweep()
	return a.diag.HasPassed()
}

// report emits diagnostic code at n's line, both recording it in errs (for
// callers that want structured access, e.g. tests) and forwarding it to
// the diag sink.
func (a *Analyzer) report(n node.Node, code int, format string, args ...interface{}) {
	line := n.Tok().Lineno()
	wrapped := fmt.Errorf(format, args...)
	se := &diag.SemanticError{Node: n, Code: code, Line: line, Wrapped: wrapped}
	a.errs = append(a.errs, se)
	a.diag.Error(code, line, wrapped.Error())
}

func (a *Analyzer) logf(n node.Node, format string, args ...interface{}) {
	a.diag.Log(n.Tok().Lineno(), fmt.Sprintf(format, args...))
}

// reportAt emits diagnostic code at an explicit line, for the rare report
// that has no single AST node to anchor to (the program-level sweep for
// undefined forward declarations only has a Symbol's DeclaredAt line).
func (a *Analyzer) reportAt(line, code int, format string, args ...interface{}) {
	wrapped := fmt.Errorf(format, args...)
	se := &diag.SemanticError{Code: code, Line: line, Wrapped: wrapped}
	a.errs = append(a.errs, se)
	a.diag.Error(code, line, wrapped.Error())
}

// setType attaches n's typed tag exactly once; a second call is an
// internal invariant violation (assertion, not a diagnostic).
func (a *Analyzer) setType(n node.Node, t *types.Type) *types.Type {
	if _, ok := a.nodeTypes[n.Id()]; ok {
		panic(fmt.Sprintf("analyze: node %s tagged twice", n))
	}
	a.nodeTypes[n.Id()] = t
	return t
}

func (a *Analyzer) getType(n node.Node) *types.Type {
	t, ok := a.nodeTypes[n.Id()]
	if !ok {
		panic(fmt.Sprintf("analyze: node %s was never tagged", n))
	}
	return t
}

func (a *Analyzer) withScope(fn func()) {
	outer := a.scope
	a.scope = symbol.New(outer)
	fn()
	a.scope = outer
}

// isLvalue reports whether n is assignable: a bare identifier, an index
// expression, or a member-access expression.
func isLvalue(n node.Node) bool {
	switch n.(type) {
	case *node.IdentExpr, *node.IndexExpr, *node.MemberExpr:
		return true
	default:
		return false
	}
}
