// Package types captures MiniC's type algebra: tagged type terms, structural
// equality with sentinel absorption, capability predicates, and the
// rank-reducing array projection used to type indexing expressions.
package types

import (
	"fmt"
	"strings"
)

// Kind tags the shape of a Type term.
type Kind int

const (
	KMeta Kind = iota
	KArray
	KFunc
	KStruct
	KUnit
	KAny
	KNever
)

func (k Kind) String() string {
	switch k {
	case KMeta:
		return "meta"
	case KArray:
		return "array"
	case KFunc:
		return "func"
	case KStruct:
		return "struct"
	case KUnit:
		return "unit"
	case KAny:
		return "any"
	case KNever:
		return "never"
	default:
		return "?"
	}
}

// MetaKind is the primitive numeric kind carried by a Meta type.
type MetaKind int

const (
	Int MetaKind = iota
	Float
)

func (m MetaKind) String() string {
	if m == Float {
		return "float"
	}
	return "int"
}

// Field is a named member of a Struct type. Names are ignored by Equal;
// they exist for diagnostics (error 14, "missing struct member") and for
// FindMember.
type Field struct {
	Name string
	Type *Type
}

// Type is a tagged variant. The three zero-arity sentinels (Unit, Any,
// Never) plus the two Meta kinds are canonical singletons: they are only
// ever constructed once, by this package's init, and every other
// constructor returns a pointer into that pool when it would otherwise
// build one of these shapes.
type Type struct {
	kind Kind

	meta MetaKind // valid when kind == KMeta

	base *Type // valid when kind == KArray
	dims []int // valid when kind == KArray, len(dims) == rank >= 1

	params []*Type // valid when kind == KFunc
	ret    *Type   // valid when kind == KFunc

	members []Field // valid when kind == KStruct
}

var (
	unitSingleton  = &Type{kind: KUnit}
	anySingleton   = &Type{kind: KAny}
	neverSingleton = &Type{kind: KNever}
	intSingleton   = &Type{kind: KMeta, meta: Int}
	floatSingleton = &Type{kind: KMeta, meta: Float}
)

// Unit is the type of statements and declarations that produce no value.
func Unit() *Type { return unitSingleton }

// Any is the wildcard sentinel: equal to every type. Used for failed
// indexing, where some element type is needed but none is meaningful.
func Any() *Type { return anySingleton }

// Never is the bottom sentinel: compatible with every type, propagates
// quietly. Used after any unrecoverable error.
func Never() *Type { return neverSingleton }

// MetaInt and MetaFloat are the canonical numeric singletons.
func MetaInt() *Type   { return intSingleton }
func MetaFloat() *Type { return floatSingleton }

// Meta returns the canonical singleton for the given numeric kind.
func Meta(k MetaKind) *Type {
	if k == Float {
		return floatSingleton
	}
	return intSingleton
}

// NewArray builds Array(base, dims). dims must be non-empty and every
// entry positive; callers (VarDec) are responsible for that invariant.
func NewArray(base *Type, dims []int) *Type {
	if len(dims) == 0 {
		panic("types: NewArray with empty dims")
	}
	cp := make([]int, len(dims))
	copy(cp, dims)
	return &Type{kind: KArray, base: base, dims: cp}
}

// NewFunc builds Func(params, ret).
func NewFunc(params []*Type, ret *Type) *Type {
	cp := make([]*Type, len(params))
	copy(cp, params)
	return &Type{kind: KFunc, params: cp, ret: ret}
}

// NewStruct builds Struct(members) from an ordered, already-deduplicated
// member list (the Scope itself does not reject duplicate names; the
// analyzer's Def handling refuses to install a repeated member name in the
// struct body's scope before that scope is sealed into this list).
func NewStruct(members []Field) *Type {
	cp := make([]Field, len(members))
	copy(cp, members)
	return &Type{kind: KStruct, members: cp}
}

func (t *Type) Kind() Kind { return t.kind }

// Rank returns the array rank, or 0 for a non-array type.
func (t *Type) Rank() int {
	if t.kind != KArray {
		return 0
	}
	return len(t.dims)
}

// Dims returns the array's dimension list, left-to-right. Nil for a
// non-array type.
func (t *Type) Dims() []int {
	if t.kind != KArray {
		return nil
	}
	return t.dims
}

func (t *Type) Base() *Type {
	if t.kind != KArray {
		return nil
	}
	return t.base
}

func (t *Type) Params() []*Type {
	if t.kind != KFunc {
		return nil
	}
	return t.params
}

func (t *Type) Ret() *Type {
	if t.kind != KFunc {
		return nil
	}
	return t.ret
}

func (t *Type) Members() []Field {
	if t.kind != KStruct {
		return nil
	}
	return t.members
}

func (t *Type) MetaKind() MetaKind { return t.meta }

// Equal is the structural equality used for assignment, parameter
// passing, and return-type checking. Its short-circuit order matters: the
// sentinel absorption check must come before the per-kind comparison, or
// error cascades reappear.
func Equal(a, b *Type, strictArrays bool) bool {
	if a == b {
		return true
	}
	if a.kind == KAny || b.kind == KAny || a.kind == KNever || b.kind == KNever {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KMeta:
		return a.meta == b.meta
	case KUnit:
		return true
	case KArray:
		if len(a.dims) != len(b.dims) {
			return false
		}
		if strictArrays {
			for i := range a.dims {
				if a.dims[i] != b.dims[i] {
					return false
				}
			}
		}
		return Equal(a.base, b.base, false)
	case KFunc:
		if len(a.params) != len(b.params) {
			return false
		}
		for i := range a.params {
			if !Equal(a.params[i], b.params[i], false) {
				return false
			}
		}
		return Equal(a.ret, b.ret, false)
	case KStruct:
		if len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			// Member names are intentionally ignored here: struct
			// equality is purely structural on the member type list.
			if !Equal(a.members[i].Type, b.members[i].Type, true) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CanCall reports whether t can appear in call position.
func CanCall(t *Type) bool { return t.kind == KFunc }

// CanIndex reports whether t can appear as the left operand of Exp[Exp].
func CanIndex(t *Type) bool { return t.kind == KArray }

// CanMember reports whether t can appear as the left operand of Exp.ID.
func CanMember(t *Type) bool { return t.kind == KStruct }

// FindMember linearly scans t's members for name.
func FindMember(t *Type, name string) (*Field, bool) {
	if t.kind != KStruct {
		return nil, false
	}
	for i := range t.members {
		if t.members[i].Name == name {
			return &t.members[i], true
		}
	}
	return nil, false
}

// CanLogic reports whether t may be used as a condition or boolean operand;
// MiniC has no dedicated bool type, so integers serve as the logic type.
func CanLogic(t *Type) bool { return t.kind == KMeta && t.meta == Int }

// CanArith reports whether t may be an arithmetic operand.
func CanArith(t *Type) bool { return t.kind == KMeta }

// CanArithPair reports whether a and b may be combined by a binary
// arithmetic operator: both must be arithmetic-capable and of the same
// Meta kind (no implicit int/float conversion, per the Non-goals).
func CanArithPair(a, b *Type) bool {
	return CanArith(a) && CanArith(b) && a.meta == b.meta
}

// DescendArray types the result of Exp[Exp]: requires CanIndex(t); if
// rank > 1 it returns Array(t.base, tail(t.dims)), otherwise it returns
// t.base.
func DescendArray(t *Type) *Type {
	if !CanIndex(t) {
		panic("types: DescendArray of non-array")
	}
	if len(t.dims) > 1 {
		return NewArray(t.base, t.dims[1:])
	}
	return t.base
}

func (t *Type) String() string {
	switch t.kind {
	case KMeta:
		return t.meta.String()
	case KUnit:
		return "unit"
	case KAny:
		return "any"
	case KNever:
		return "never"
	case KArray:
		b := &strings.Builder{}
		b.WriteString(t.base.String())
		for _, d := range t.dims {
			fmt.Fprintf(b, "[%d]", d)
		}
		return b.String()
	case KFunc:
		ps := make([]string, len(t.params))
		for i, p := range t.params {
			ps[i] = p.String()
		}
		return fmt.Sprintf("func(%s) %s", strings.Join(ps, ", "), t.ret.String())
	case KStruct:
		fs := make([]string, len(t.members))
		for i, f := range t.members {
			fs[i] = fmt.Sprintf("%s: %s", f.Name, f.Type.String())
		}
		return fmt.Sprintf("struct{%s}", strings.Join(fs, "; "))
	default:
		return "?"
	}
}
