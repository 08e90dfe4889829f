package parse_test

import (
	"testing"

	"github.com/minicc/minicc/lex"
	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/parse"

	"github.com/minicc/minicc/testers/assert"
	"github.com/minicc/minicc/testers/require"
)

func parseOk(t *testing.T, code string) []node.Node {
	toks, lexerrs := lex.Lex([]rune(code))
	require.Equal(t, 0, len(lexerrs))

	p := parse.New()
	err := p.Parse(toks)
	if err != nil {
		t.Log("parse errors:", p.Errors())
	}
	require.Nil(t, err)
	return p.Nodes()
}

func TestFunctionDefinition(t *testing.T) {
	n := parseOk(t, "int main() { return 0; }")
	require.Equal(t, 1, len(n))
	fd, ok := n[0].(*node.FunDef)
	require.True(t, ok)
	assert.Equal(t, "main", fd.FunDec.Name)
	assert.Equal(t, 0, len(fd.FunDec.Params))
	assert.Equal(t, 1, len(fd.Body.Stmts))
}

func TestFunctionDeclarationThenDefinition(t *testing.T) {
	n := parseOk(t, "int f(int a, float b);\nint f(int a, float b) { return 0; }\n")
	require.Equal(t, 2, len(n))
	decl, ok := n[0].(*node.FunDecl)
	require.True(t, ok)
	assert.Equal(t, 2, len(decl.FunDec.Params))
	def, ok := n[1].(*node.FunDef)
	require.True(t, ok)
	assert.Equal(t, "f", def.FunDec.Name)
}

func TestExternalVariableDeclaration(t *testing.T) {
	n := parseOk(t, "int a, b;")
	require.Equal(t, 1, len(n))
	vd, ok := n[0].(*node.ExtVarDef)
	require.True(t, ok)
	require.Equal(t, 2, len(vd.Decs))
	assert.Equal(t, "a", vd.Decs[0].Name())
	assert.Equal(t, "b", vd.Decs[1].Name())
}

func TestArrayDeclaratorDimensionOrder(t *testing.T) {
	n := parseOk(t, "int a[2][3];")
	require.Equal(t, 1, len(n))
	vd := n[0].(*node.ExtVarDef)
	require.Equal(t, 1, len(vd.Decs))
	outer := vd.Decs[0]
	assert.Equal(t, "a", outer.Name())
	require.NotNil(t, outer.Inner)
	assert.Equal(t, 3, outer.Dim)
	assert.Equal(t, 2, outer.Inner.Dim)
	require.NotNil(t, outer.Inner.Inner)
	assert.Equal(t, "a", outer.Inner.Inner.Ident)
}

func TestStructDefinitionAndReference(t *testing.T) {
	n := parseOk(t, "struct S { int x; float y; };\nstruct S v;\n")
	require.Equal(t, 2, len(n))

	def := n[0].(*node.ExtVarDef)
	require.True(t, def.Spec.IsStruct)
	ss := def.Spec.StructSpec
	assert.Equal(t, "S", ss.Tag)
	assert.True(t, ss.IsDef)
	require.Equal(t, 2, len(ss.Members))

	ref := n[1].(*node.ExtVarDef)
	require.True(t, ref.Spec.IsStruct)
	assert.False(t, ref.Spec.StructSpec.IsDef)
	require.Equal(t, 1, len(ref.Decs))
}

func TestAnonymousStructHasEmptyTag(t *testing.T) {
	n := parseOk(t, "struct { int x; } v;")
	require.Equal(t, 1, len(n))
	vd := n[0].(*node.ExtVarDef)
	assert.Equal(t, "", vd.Spec.StructSpec.Tag)
}

func TestCompoundStatementLocalsPrecedeStatements(t *testing.T) {
	n := parseOk(t, "int main() { int a; int b; a = 1; b = a; return b; }")
	fd := n[0].(*node.FunDef)
	assert.Equal(t, 2, len(fd.Body.Defs))
	assert.Equal(t, 3, len(fd.Body.Stmts))
}

func TestIfElseAndWhile(t *testing.T) {
	n := parseOk(t, `
int main() {
	int a;
	if (a) { a = 1; } else { a = 2; }
	while (a) { a = a - 1; }
	return a;
}
`)
	fd := n[0].(*node.FunDef)
	require.Equal(t, 3, len(fd.Body.Stmts))
	ifs, ok := fd.Body.Stmts[0].(*node.IfStmt)
	require.True(t, ok)
	require.NotNil(t, ifs.Else)
	_, ok = fd.Body.Stmts[1].(*node.WhileStmt)
	assert.True(t, ok)
}

func TestExpressionPrecedence(t *testing.T) {
	// a + b * c should parse so the multiplication binds tighter, i.e.
	// the top-level ArithExpr is the addition.
	n := parseOk(t, "int main() { return a + b * c; }")
	fd := n[0].(*node.FunDef)
	ret := fd.Body.Stmts[0].(*node.ReturnStmt)
	top, ok := ret.Expr.(*node.ArithExpr)
	require.True(t, ok)
	assert.Equal(t, node.ArithAdd, top.Op)
	_, ok = top.Left.(*node.IdentExpr)
	assert.True(t, ok)
	mul, ok := top.Right.(*node.ArithExpr)
	require.True(t, ok)
	assert.Equal(t, node.ArithMul, mul.Op)
}

func TestCallAndMemberAndIndexExpressions(t *testing.T) {
	n := parseOk(t, "int main() { return f(a, b[0]).x; }")
	fd := n[0].(*node.FunDef)
	ret := fd.Body.Stmts[0].(*node.ReturnStmt)
	member, ok := ret.Expr.(*node.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "x", member.Name)
	call, ok := member.Left.(*node.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
	require.Equal(t, 2, len(call.Args))
	_, ok = call.Args[1].(*node.IndexExpr)
	assert.True(t, ok)
}

func TestMalformedProgramRecovers(t *testing.T) {
	toks, lexerrs := lex.Lex([]rune("int a = ;\nint main() { return 0; }\n"))
	require.Equal(t, 0, len(lexerrs))

	p := parse.New()
	err := p.Parse(toks)
	assert.NotNil(t, err)
	assert.True(t, len(p.Errors()) > 0)
	// Recovery skips to the next ';' or '}', so the well-formed second
	// ExtDef still gets parsed.
	found := false
	for _, n := range p.Nodes() {
		if fd, ok := n.(*node.FunDef); ok && fd.FunDec.Name == "main" {
			found = true
		}
	}
	assert.True(t, found)
}
