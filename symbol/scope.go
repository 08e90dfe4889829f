// Package symbol implements the analyzer's lexically-scoped symbol table:
// insertion-ordered scopes chained to an optional parent, each holding
// Symbols that track their own declaration state.
package symbol

import "github.com/minicc/minicc/types"

// State tracks a Symbol's lifecycle: a name starts Declared and may
// transition to Defined exactly once (a function declaration gains a body,
// or a struct declaration gains a body).
type State int

const (
	Declared State = iota
	Defined
)

func (s State) String() string {
	if s == Defined {
		return "defined"
	}
	return "declared"
}

// Symbol is one named entry in a Scope.
type Symbol struct {
	Name       string
	Type       *types.Type
	State      State
	DeclaredAt int
}

// Scope is an insertion-ordered name-to-Symbol map with an optional
// parent. PushFront never rejects a name already visible through the
// parent chain: shadowing is permitted, so only a caller checking
// FindHere (the local scope alone) can detect a genuine redefinition.
type Scope struct {
	parent *Scope
	order  []string
	table  map[string]*Symbol
}

// New creates a scope chained to parent, which may be nil for the
// top-level (Program) scope.
func New(parent *Scope) *Scope {
	return &Scope{parent: parent, table: map[string]*Symbol{}}
}

func (s *Scope) Parent() *Scope { return s.parent }

// PushFront installs sym in this scope only. It does not check for a
// collision; callers (the analyzer's declaration procedures) decide
// whether a local collision is permitted and which diagnostic to emit.
func (s *Scope) PushFront(sym *Symbol) {
	if _, ok := s.table[sym.Name]; !ok {
		s.order = append(s.order, sym.Name)
	}
	s.table[sym.Name] = sym
}

// Find climbs the parent chain, returning the nearest enclosing
// declaration of name, or nil.
func (s *Scope) Find(name string) *Symbol {
	for cur := s; cur != nil; cur = cur.parent {
		if sym, ok := cur.table[name]; ok {
			return sym
		}
	}
	return nil
}

// FindHere looks up name in this scope alone, ignoring ancestors.
func (s *Scope) FindHere(name string) *Symbol {
	return s.table[name]
}

// Iter returns every Symbol in this scope in insertion order.
func (s *Scope) Iter() []*Symbol {
	syms := make([]*Symbol, 0, len(s.order))
	for _, name := range s.order {
		syms = append(syms, s.table[name])
	}
	return syms
}

func (s *Scope) Len() int { return len(s.order) }

// SnapshotAsMembers renders this scope's symbols, in insertion order, as
// the member list for a types.Struct closing over this scope's body.
func (s *Scope) SnapshotAsMembers() []types.Field {
	fields := make([]types.Field, 0, len(s.order))
	for _, sym := range s.Iter() {
		fields = append(fields, types.Field{Name: sym.Name, Type: sym.Type})
	}
	return fields
}
