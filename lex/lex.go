// Package lex tokenizes MiniC source text using the parser-combinator
// chassis in primitives, in the same style as the original lexer this
// front end was adapted from.
package lex

import (
	"fmt"

	pr "github.com/minicc/minicc/primitives"
	"github.com/minicc/minicc/span"
	"github.com/minicc/minicc/token"
)

// Whitespace-related helpers
var Whitespace = pr.Runes(" \t\r\v")
var WhitespaceN = Whitespace.OneOrMore()
var Linefeed = pr.Rune('\n')

// Comments
var CommentOneline = pr.Discard(pr.String("//")).
	And(pr.ExceptString("\n").ZeroOrMore())
var CommentMultiline = pr.String("/*").Discard().
	And(pr.ExceptString("*/").ZeroOrMore()).
	And(pr.Discard(pr.String("*/").Fatal(`no matching "*/" for comment`)))

// Identifiers
var plow = pr.RuneRange('a', 'z')
var pupp = pr.RuneRange('A', 'Z')
var pdig = pr.RuneRange('0', '9')
var pus = pr.Rune('_')
var Identifier = plow.Or(pupp).Or(pus).
	And(pupp.Or(pus).Or(plow).Or(pdig).ZeroOrMore())

// Separators
var Separators = pr.Runes("()[]{},;")

// Numeric values: an integer literal, or a float literal with a mandatory
// fractional part (MiniC has no exponent notation).
var pdig1 = pr.RuneRange('1', '9')
var DecNum = pr.Rune('0').Or(pdig1.And(pdig.ZeroOrMore()))
var FloatNum = DecNum.And(pr.Rune('.')).And(pdig.OneOrMore())

// Note the greediness issue when parsing, eg. '<' vs '<='.
var OpBinary = pr.Strings("<=", ">=", "==", "!=", "&&", "||").
	Or(pr.Runes(".+-*/<>"))

var OpUnary = pr.Rune('!')
var OpSet = pr.Rune('=')

func Lex(what []rune) (*token.Tokens, []error) {
	toks := &token.Tokens{}
	state := pr.NewState(what)
	var lineno0, col0 int

	nt := func(st *pr.State, kind token.Kind) {
		lineno, col := st.Pos()
		sp := span.Span{
			Lineno0: lineno0,
			Col0:    col0,
			Lineno:  lineno,
			Col:     col,
		}
		toks.Add(token.New(kind, sp, st.String()))
	}
	// Precedence matters: FloatNum before DecNum, keywords before the
	// generic Identifier catch-all.
	all := WhitespaceN.Pipe(func(curstate *pr.State) {
		// Whitespace is ignored.
	}).
		Or(Linefeed.Pipe(func(curstate *pr.State) {
			// Lone linefeeds are also ignored.
		})).
		Or(CommentOneline.Pipe(func(curstate *pr.State) {
			nt(curstate, token.CommentOne)
		})).
		Or(CommentMultiline.Pipe(func(curstate *pr.State) {
			nt(curstate, token.CommentMulti)
		})).
		Or(FloatNum.Pipe(func(curstate *pr.State) {
			nt(curstate, token.FloatNum)
		})).
		Or(DecNum.Pipe(func(curstate *pr.State) {
			nt(curstate, token.DecNum)
		})).
		Or(OpBinary.Pipe(func(curstate *pr.State) {
			got := curstate.String()
			switch got {
			case "<=":
				nt(curstate, token.Le)
			case ">=":
				nt(curstate, token.Ge)
			case "==":
				nt(curstate, token.Eq)
			case "!=":
				nt(curstate, token.Ne)
			case "&&":
				nt(curstate, token.Ampersand2)
			case "||":
				nt(curstate, token.Pipe2)
			case ".":
				nt(curstate, token.Dot)
			case "+":
				nt(curstate, token.Plus)
			case "-":
				nt(curstate, token.Minus)
			case "*":
				nt(curstate, token.Star)
			case "/":
				nt(curstate, token.Slash)
			case "<":
				nt(curstate, token.Lt)
			case ">":
				nt(curstate, token.Gt)
			default:
				panic(fmt.Sprintf("unrecognized binary operator: %q", got))
			}
		})).
		Or(OpSet.Pipe(func(curstate *pr.State) {
			nt(curstate, token.Assign)
		})).
		Or(OpUnary.Pipe(func(curstate *pr.State) {
			nt(curstate, token.Exclam)
		})).
		Or(Separators.Pipe(func(curstate *pr.State) {
			got := curstate.String()
			switch got {
			case "(":
				nt(curstate, token.LParen)
			case ")":
				nt(curstate, token.RParen)
			case "[":
				nt(curstate, token.LBrack)
			case "]":
				nt(curstate, token.RBrack)
			case "{":
				nt(curstate, token.LCurly)
			case "}":
				nt(curstate, token.RCurly)
			case ",":
				nt(curstate, token.Comma)
			case ";":
				nt(curstate, token.Semicolon)
			default:
				panic(fmt.Sprintf("unrecognized separator: %s", got))
			}
		})).
		Or(Identifier.Pipe(func(curstate *pr.State) {
			got := curstate.String()
			if kw, ok := token.Keyword(got); ok {
				nt(curstate, kw)
			} else {
				nt(curstate, token.Id)
			}
		})).Discard()

	prevlen := len(state.Left())
	var errs []error
	for state.LenLeft() > 0 {
		lineno0, col0 = state.Pos()
		res := all.Do(state)
		if err := res.Error(); err != nil {
			errs = append(errs, err)
		}
		state = res.State()
		curlen := len(state.Left())
		// If we managed to lex nothing, we need to bail.
		if prevlen == curlen {
			break
		}
		prevlen = curlen
	}
	return toks, errs
}
