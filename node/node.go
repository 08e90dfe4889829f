// Package node defines MiniC's abstract syntax tree: one Go type per
// grammar non-terminal the parser produces and the analyzer consumes.
package node

import (
	"fmt"
	"strings"

	"github.com/minicc/minicc/token"
)

// Common is embedded by every node and supplies the NodeId every node
// carries once Store has tagged it.
type Common struct {
	id NodeId
}

// Node is implemented by every syntax tree node: it can produce its
// NodeId, the Token it originated from, and an s-expression rendering of
// itself for debugging.
type Node interface {
	String() string
	Id() NodeId
	Tok() *token.Token
}

func (c *Common) Id() NodeId      { return c.id }
func (c *Common) Tok() *token.Token { return Tok(c.id) }

// MetaKind mirrors the two primitive TYPE keywords MiniC's grammar
// recognizes. Only Specifier leaves carry this; the analyzer's own
// types.MetaKind is the type-algebra-side mirror.
type MetaKind int

const (
	TInt MetaKind = iota
	TFloat
)

func (m MetaKind) String() string {
	if m == TFloat {
		return "float"
	}
	return "int"
}

// ExtVarDef is "Specifier ExtDecList ;" or "Specifier ;" (Decs empty).
type ExtVarDef struct {
	*Common
	Spec *Specifier
	Decs []*VarDec
}

// FunDef is "Specifier FunDec CompSt" — a function definition.
type FunDef struct {
	*Common
	Spec    *Specifier
	FunDec  *FunDec
	Body    *CompSt
}

// FunDecl is "Specifier FunDec ;" — a function declaration without a body.
type FunDecl struct {
	*Common
	Spec   *Specifier
	FunDec *FunDec
}

// Specifier is "TYPE" or "StructSpecifier".
type Specifier struct {
	*Common
	IsStruct   bool
	Prim       MetaKind       // valid when !IsStruct
	StructSpec *StructSpecifier // valid when IsStruct
}

// StructSpecifier is "STRUCT Tag" (reference, IsDef == false) or
// "STRUCT OptTag { DefList }" (definition, IsDef == true).
type StructSpecifier struct {
	*Common
	Tag      string // "" if OptTag was empty; the parser leaves synthesis of
	// the anonymous @STRUCTn name to the analyzer, matching the original
	// implementation's OptTag handling.
	IsDef   bool
	Members []*Def // valid when IsDef
}

// VarDec is the recursive array declarator:
//   VarDec : ID | VarDec [ INT ]
// Exactly one of (Ident set) or (Inner set) holds per node.
type VarDec struct {
	*Common
	Ident string  // set at the ID leaf
	Inner *VarDec // set at the "VarDec [ INT ]" form; nil at the leaf
	Dim   int     // the INT literal; valid only when Inner != nil
}

// Name returns the identifier at the base of a (possibly array-wrapped)
// VarDec chain.
func (v *VarDec) Name() string {
	if v.Inner != nil {
		return v.Inner.Name()
	}
	return v.Ident
}

// FunDec is "ID ( VarList? )".
type FunDec struct {
	*Common
	Name   string
	Params []*ParamDec
}

// ParamDec is "Specifier VarDec" inside a VarList.
type ParamDec struct {
	*Common
	Spec *Specifier
	Dec  *VarDec
}

// CompSt is "{ DefList StmtList }".
type CompSt struct {
	*Common
	Defs  []*Def
	Stmts []Node
}

// Def is "Specifier DecList ;".
type Def struct {
	*Common
	Spec *Specifier
	Decs []*Dec
}

// Dec is "VarDec" or "VarDec = Exp".
type Dec struct {
	*Common
	VarDec *VarDec
	Init   Node // nil if there is no initializer
}

// ExprStmt is "Exp ;".
type ExprStmt struct {
	*Common
	Expr Node
}

// ReturnStmt is "RETURN Exp ;".
type ReturnStmt struct {
	*Common
	Expr Node
}

// IfStmt is "IF ( Exp ) Stmt" or "IF ( Exp ) Stmt ELSE Stmt" (Else nil).
type IfStmt struct {
	*Common
	Cond       Node
	True, Else Node
}

// WhileStmt is "WHILE ( Exp ) Stmt".
type WhileStmt struct {
	*Common
	Cond Node
	Body Node
}

// --- Expressions ---

type IntLit struct {
	*Common
	Value int32
}

type FloatLit struct {
	*Common
	Value float64
}

type IdentExpr struct {
	*Common
	Name string
}

// Paren is "( Exp )"; kept as an explicit node so a diagnostic's line
// number can still point at the parenthesized form if ever needed, even
// though its type is simply the inner expression's type.
type Paren struct {
	*Common
	Inner Node
}

type UnOp int

const (
	UnNeg UnOp = iota
	UnNot
)

func (o UnOp) String() string {
	if o == UnNot {
		return "!"
	}
	return "-"
}

type UnaryExpr struct {
	*Common
	Op      UnOp
	Operand Node
}

type LogOp int

const (
	LogAnd LogOp = iota
	LogOr
)

func (o LogOp) String() string {
	if o == LogOr {
		return "||"
	}
	return "&&"
}

type LogicExpr struct {
	*Common
	Op          LogOp
	Left, Right Node
}

type RelOp int

const (
	RelLt RelOp = iota
	RelGt
	RelLe
	RelGe
	RelEq
	RelNe
)

var relnames = [...]string{"<", ">", "<=", ">=", "==", "!="}

func (o RelOp) String() string { return relnames[o] }

type RelExpr struct {
	*Common
	Op          RelOp
	Left, Right Node
}

type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
)

var arithnames = [...]string{"+", "-", "*", "/"}

func (o ArithOp) String() string { return arithnames[o] }

type ArithExpr struct {
	*Common
	Op          ArithOp
	Left, Right Node
}

type AssignExpr struct {
	*Common
	Left, Right Node
}

type CallExpr struct {
	*Common
	Name string
	Args []Node
}

type IndexExpr struct {
	*Common
	Left, Index Node
}

type MemberExpr struct {
	*Common
	Left Node
	Name string
}

// --- String() renderings ---

func (n *ExtVarDef) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "(extvardef %s", n.Spec)
	for _, d := range n.Decs {
		fmt.Fprintf(b, " %s", d)
	}
	b.WriteString(")")
	return b.String()
}

func (n *FunDef) String() string {
	return fmt.Sprintf("(fundef %s %s %s)", n.Spec, n.FunDec, n.Body)
}

func (n *FunDecl) String() string {
	return fmt.Sprintf("(fundecl %s %s)", n.Spec, n.FunDec)
}

func (n *Specifier) String() string {
	if n.IsStruct {
		return fmt.Sprintf("(spec %s)", n.StructSpec)
	}
	return fmt.Sprintf("(spec %s)", n.Prim)
}

func (n *StructSpecifier) String() string {
	if !n.IsDef {
		return fmt.Sprintf("(struct-ref %q)", n.Tag)
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "(struct-def %q", n.Tag)
	for _, m := range n.Members {
		fmt.Fprintf(b, " %s", m)
	}
	b.WriteString(")")
	return b.String()
}

func (n *VarDec) String() string {
	if n.Inner == nil {
		return fmt.Sprintf("(vardec %q)", n.Ident)
	}
	return fmt.Sprintf("(vardec-array %s [%d])", n.Inner, n.Dim)
}

func (n *FunDec) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "(fundec %q (", n.Name)
	for i, p := range n.Params {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("))")
	return b.String()
}

func (n *ParamDec) String() string {
	return fmt.Sprintf("(param %s %s)", n.Spec, n.Dec)
}

func (n *CompSt) String() string {
	b := &strings.Builder{}
	b.WriteString("(compst")
	for _, d := range n.Defs {
		fmt.Fprintf(b, " %s", d)
	}
	for _, s := range n.Stmts {
		fmt.Fprintf(b, " %s", s)
	}
	b.WriteString(")")
	return b.String()
}

func (n *Def) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "(def %s", n.Spec)
	for _, d := range n.Decs {
		fmt.Fprintf(b, " %s", d)
	}
	b.WriteString(")")
	return b.String()
}

func (n *Dec) String() string {
	if n.Init == nil {
		return fmt.Sprintf("(dec %s)", n.VarDec)
	}
	return fmt.Sprintf("(dec %s %s)", n.VarDec, n.Init)
}

func (n *ExprStmt) String() string { return fmt.Sprintf("(exprstmt %s)", n.Expr) }

func (n *ReturnStmt) String() string {
	if n.Expr == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", n.Expr)
}

func (n *IfStmt) String() string {
	if n.Else == nil {
		return fmt.Sprintf("(if %s %s 'noelse)", n.Cond, n.True)
	}
	return fmt.Sprintf("(if %s %s %s)", n.Cond, n.True, n.Else)
}

func (n *WhileStmt) String() string {
	return fmt.Sprintf("(while %s %s)", n.Cond, n.Body)
}

func (n *IntLit) String() string   { return fmt.Sprintf("%d", n.Value) }
func (n *FloatLit) String() string { return fmt.Sprintf("%g", n.Value) }
func (n *IdentExpr) String() string { return n.Name }
func (n *Paren) String() string    { return fmt.Sprintf("(paren %s)", n.Inner) }

func (n *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", n.Op, n.Operand)
}

func (n *LogicExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Op, n.Left, n.Right)
}

func (n *RelExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Op, n.Left, n.Right)
}

func (n *ArithExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Op, n.Left, n.Right)
}

func (n *AssignExpr) String() string {
	return fmt.Sprintf("(assign %s %s)", n.Left, n.Right)
}

func (n *CallExpr) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "(call %q", n.Name)
	for _, a := range n.Args {
		fmt.Fprintf(b, " %s", a)
	}
	b.WriteString(")")
	return b.String()
}

func (n *IndexExpr) String() string {
	return fmt.Sprintf("(index %s %s)", n.Left, n.Index)
}

func (n *MemberExpr) String() string {
	return fmt.Sprintf("(member %s %q)", n.Left, n.Name)
}

// NodeCallback is invoked by Walk for every node; the integer is the
// current recursion depth. Returning false skips that node's children.
type NodeCallback func(Node, int) bool

func walk(n Node, cb NodeCallback, depth int) {
	if !cb(n, depth) {
		return
	}
	var sub []Node
	a := func(x Node) {
		if x != nil {
			sub = append(sub, x)
		}
	}
	switch t := n.(type) {
	case *ExtVarDef:
		for _, d := range t.Decs {
			a(d)
		}
	case *FunDef:
		a(t.FunDec)
		a(t.Body)
	case *FunDecl:
		a(t.FunDec)
	case *StructSpecifier:
		for _, m := range t.Members {
			a(m)
		}
	case *FunDec:
		for _, p := range t.Params {
			a(p)
		}
	case *ParamDec:
		a(t.Dec)
	case *CompSt:
		for _, d := range t.Defs {
			a(d)
		}
		for _, s := range t.Stmts {
			a(s)
		}
	case *Def:
		for _, d := range t.Decs {
			a(d)
		}
	case *Dec:
		a(t.VarDec)
		a(t.Init)
	case *ExprStmt:
		a(t.Expr)
	case *ReturnStmt:
		a(t.Expr)
	case *IfStmt:
		a(t.Cond)
		a(t.True)
		a(t.Else)
	case *WhileStmt:
		a(t.Cond)
		a(t.Body)
	case *Paren:
		a(t.Inner)
	case *UnaryExpr:
		a(t.Operand)
	case *LogicExpr:
		a(t.Left)
		a(t.Right)
	case *RelExpr:
		a(t.Left)
		a(t.Right)
	case *ArithExpr:
		a(t.Left)
		a(t.Right)
	case *AssignExpr:
		a(t.Left)
		a(t.Right)
	case *CallExpr:
		for _, arg := range t.Args {
			a(arg)
		}
	case *IndexExpr:
		a(t.Left)
		a(t.Index)
	case *MemberExpr:
		a(t.Left)
	default:
	}
	for _, s := range sub {
		walk(s, cb, depth+1)
	}
}

// Walk performs a pre-order traversal of a syntax tree rooted at n.
func Walk(n Node, cb NodeCallback) {
	walk(n, cb, 0)
}
