package lex_test

import (
	"testing"

	"github.com/minicc/minicc/lex"
	pr "github.com/minicc/minicc/primitives"
	"github.com/minicc/minicc/testers/assert"
	"github.com/minicc/minicc/testers/require"
	"github.com/minicc/minicc/token"
)

func TestIdentifier(t *testing.T) {
	one := "this_is_identifier1"
	two := " and more"

	res := lex.Identifier.Do(pr.NewState([]rune(one + two)))
	require.NotNil(t, res)
	require.Nil(t, res.Error())
	assert.Equal(t, one, res.State().String())
	assert.Equal(t, []rune(two), res.State().Left())
}

func TestNumeric(t *testing.T) {
	type entry struct {
		give, left, want string
	}

	table := []entry{
		{"0", "", "0"},
		{"0  ", "  ", "0"},
		{"123", "", "123"},
		{"123abc", "abc", "123"},
	}

	for _, cur := range table {
		t.Run(cur.give, func(t *testing.T) {
			res := lex.DecNum.Do(pr.NewState([]rune(cur.give)))
			require.NotNil(t, res)
			require.Nil(t, res.Error())
			assert.Equal(t, cur.want, res.State().String())
			assert.Equal(t, []rune(cur.left), res.State().Left())
		})
	}
}

func TestFloat(t *testing.T) {
	res := lex.FloatNum.Do(pr.NewState([]rune("3.14 rest")))
	require.NotNil(t, res)
	require.Nil(t, res.Error())
	assert.Equal(t, "3.14", res.State().String())
	assert.Equal(t, []rune(" rest"), res.State().Left())
}

func TestLexProgram(t *testing.T) {
	src := []rune("int main() { int x; x = x + 1; return x; }")
	toks, errs := lex.Lex(src)
	require.Nil(t, errs)

	var kinds []token.Kind
	for toks.Len() > 0 {
		kinds = append(kinds, toks.Pop().Kind())
	}
	want := []token.Kind{
		token.KwInt, token.Id, token.LParen, token.RParen, token.LCurly,
		token.KwInt, token.Id, token.Semicolon,
		token.Id, token.Assign, token.Id, token.Plus, token.DecNum, token.Semicolon,
		token.KwReturn, token.Id, token.Semicolon,
		token.RCurly,
	}
	assert.Equal(t, want, kinds)
}

func TestLexKeywordsNotIdentifiers(t *testing.T) {
	toks, errs := lex.Lex([]rune("struct if else while return"))
	require.Nil(t, errs)
	want := []token.Kind{
		token.KwStruct, token.KwIf, token.KwElse, token.KwWhile, token.KwReturn,
	}
	var got []token.Kind
	for toks.Len() > 0 {
		got = append(got, toks.Pop().Kind())
	}
	assert.Equal(t, want, got)
}
