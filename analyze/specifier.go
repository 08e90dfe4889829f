package analyze

import (
	"fmt"

	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/symbol"
	"github.com/minicc/minicc/types"
)

// specifierType computes the type of a Specifier appearing inside a Def
// or a ParamDec: a primitive keyword, a full struct body, or a reference
// to an already-defined struct. Unlike an ExtDef-level specifier, this
// never installs or promotes a struct tag in scope — only a top-level
// ExtDef does that, via installOrPromoteStructTag.
func (a *Analyzer) specifierType(spec *node.Specifier) *types.Type {
	if !spec.IsStruct {
		return a.primType(spec.Prim)
	}
	ss := spec.StructSpec
	if ss.IsDef {
		return a.buildStructType(ss)
	}
	return a.resolveStructReference(spec, ss.Tag)
}

func (a *Analyzer) primType(k node.MetaKind) *types.Type {
	if k == node.TFloat {
		return types.MetaFloat()
	}
	return types.MetaInt()
}

// buildStructType analyzes a struct body in a nested scope with inStruct
// set, then seals the scope's members into a Struct type. Used for both
// ExtDef-level struct definitions and inline struct specifiers nested
// inside a Def or ParamDec.
func (a *Analyzer) buildStructType(ss *node.StructSpecifier) *types.Type {
	prevInStruct := a.inStruct
	var full *types.Type
	a.withScope(func() {
		a.inStruct = true
		for _, member := range ss.Members {
			a.def(member)
		}
		full = types.NewStruct(a.scope.SnapshotAsMembers())
	})
	a.inStruct = prevInStruct
	return full
}

// resolveStructReference looks up a bare "struct Tag": the tag must
// already name a fully-defined struct, not merely a forward declaration,
// or this is error 17 and the reference's type collapses to Never so it
// stops provoking further diagnostics downstream.
func (a *Analyzer) resolveStructReference(n node.Node, tag string) *types.Type {
	sym := a.scope.Find(tag)
	if sym == nil || sym.Type.Kind() != types.KStruct || sym.State != symbol.Defined {
		a.report(n, 17, "%w: %q", ErrStructNotDefined, tag)
		return types.Never()
	}
	return sym.Type
}

// installOrPromoteStructTag runs once per ExtDef whose specifier names a
// struct, whether or not that ExtDef goes on to declare any variables —
// "struct S;" alone still needs this to register the forward declaration.
// An empty tag means an anonymous inline definition, synthesized a name
// no source identifier can collide with.
//
//   - no existing symbol, reference form: install a Declared placeholder
//     with no members — a plain forward declaration.
//   - no existing symbol, full form: install a Defined symbol carrying
//     the built struct type.
//   - existing non-struct symbol: error 16, for either form.
//   - existing struct, reference form: no-op, a repeated forward decl.
//   - existing struct already Defined, full form: error 16 (redefinition)
//     — the newly built type is still returned for this ExtDef's own use.
//   - existing struct still Declared, full form: promote. The forward
//     declaration only holds a member-less placeholder type (references
//     to it are rejected with error 17 until now), so promotion updates
//     both the state to Defined and the symbol's Type to the newly built
//     struct, not just the state — a struct whose body arrives later
//     becomes fully usable once it does.
func (a *Analyzer) installOrPromoteStructTag(n node.Node, ss *node.StructSpecifier) *types.Type {
	tag := ss.Tag
	if tag == "" {
		a.anonStructs++
		tag = fmt.Sprintf("@STRUCT%d", a.anonStructs)
	}

	var full *types.Type
	if ss.IsDef {
		full = a.buildStructType(ss)
	}

	existing := a.scope.FindHere(tag)
	switch {
	case existing == nil && !ss.IsDef:
		a.scope.PushFront(&symbol.Symbol{Name: tag, Type: types.NewStruct(nil), State: symbol.Declared, DeclaredAt: n.Tok().Lineno()})
		return nil
	case existing == nil:
		a.scope.PushFront(&symbol.Symbol{Name: tag, Type: full, State: symbol.Defined, DeclaredAt: n.Tok().Lineno()})
		return full
	case existing.Type.Kind() != types.KStruct:
		a.report(n, 16, "%w: %q", ErrStructRedefinedAsKind, tag)
		return full
	case !ss.IsDef:
		return nil
	case existing.State == symbol.Defined:
		a.report(n, 16, "%w: %q", ErrStructRedefined, tag)
		return full
	default:
		existing.Type = full
		existing.State = symbol.Defined
		return full
	}
}
