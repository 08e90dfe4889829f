// Package token defines MiniC's lexical tokens: a small fixed vocabulary
// of keywords, operators, punctuation, and literals, plus the FIFO the
// parser consumes them through.
package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minicc/minicc/span"
)

var EOT = errors.New("end of tokens")

// Tokens implements a FIFO for individual tokens.
type Tokens struct {
	toks []Token
}

type Token struct {
	span  span.Span
	kind  Kind
	value string
}

func New(kind Kind, span span.Span, value string) Token {
	if !validkind(kind) {
		panic(fmt.Sprintf("invalid token kind: %v", kind))
	}
	return Token{
		kind:  kind,
		value: value,
		span:  span,
	}
}

type Kind int

const (
	Id Kind = iota
	DecNum
	FloatNum
	KwInt
	KwFloat
	KwStruct
	KwIf
	KwElse
	KwWhile
	KwReturn
	LParen
	RParen
	LBrack
	RBrack
	LCurly
	RCurly
	Comma
	Semicolon
	Dot
	Plus
	Minus
	Star
	Slash
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
	Assign
	Ampersand2 // &&
	Pipe2      // ||
	Exclam
	CommentOne
	CommentMulti
)

var toknames = [...]string{
	"id",
	"decnum",
	"floatnum",
	"int",
	"float",
	"struct",
	"if",
	"else",
	"while",
	"return",
	"(",
	")",
	"[",
	"]",
	"{",
	"}",
	",",
	";",
	".",
	"+",
	"-",
	"*",
	"/",
	"<",
	">",
	"<=",
	">=",
	"==",
	"!=",
	"=",
	"&&",
	"||",
	"!",
	"//comment",
	"/* comment */",
}

var keywords = map[string]Kind{
	"int":    KwInt,
	"float":  KwFloat,
	"struct": KwStruct,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"return": KwReturn,
}

// Keyword reports the Kind for a reserved identifier, or ok == false if
// name is an ordinary identifier.
func Keyword(name string) (Kind, bool) {
	k, ok := keywords[name]
	return k, ok
}

func (k Kind) String() string {
	return toknames[k]
}

func validkind(kind Kind) bool {
	return kind >= 0 && int(kind) <= (len(toknames)-1)
}

func (tok *Token) String() string {
	switch tok.kind {
	case Id, DecNum, FloatNum:
		return tok.value
	case CommentOne:
		return fmt.Sprintf("// %s", tok.value)
	case CommentMulti:
		return fmt.Sprintf("/* %s */", tok.value)
	default:
		return fmt.Sprintf("%q", toknames[tok.kind])
	}
}

func (tok *Token) Value() string { return tok.value }
func (tok *Token) Kind() Kind    { return tok.kind }
func (tok *Token) Lineno() int   { return tok.span.Lineno0 }
func (tok *Token) Col() int      { return tok.span.Col0 }
func (tok *Token) Span() span.Span { return tok.span }

func (toks *Tokens) Add(tok Token) *Tokens {
	toks.toks = append(toks.toks, tok)
	return toks
}

func (toks *Tokens) String() string {
	b := &strings.Builder{}
	for _, tok := range toks.toks {
		fmt.Fprintf(b, "[%d:%d] %s\n", tok.Lineno(), tok.Col(), tok.String())
	}
	return b.String()
}

func (toks *Tokens) Len() int { return len(toks.toks) }

func (toks *Tokens) Pop() *Token {
	if toks.Len() == 0 {
		return nil
	}
	if toks.Len() == 1 {
		tok := &toks.toks[0]
		toks.toks = nil
		return tok
	}
	var tok Token
	tok, toks.toks = toks.toks[0], toks.toks[1:]
	return &tok
}

// Peek returns the current token-to-be-parsed. It never returns comment
// tokens.
func (toks *Tokens) Peek() *Token {
nocoms:
	for {
		if toks.Len() == 0 {
			return nil
		}
		switch toks.toks[0].Kind() {
		case CommentOne, CommentMulti:
			toks.Pop()
			continue nocoms
		default:
			return &toks.toks[0]
		}
	}
}

// PeekAll returns the current token-to-be-parsed. Unlike Peek, it never
// discriminates based on token kind.
func (toks *Tokens) PeekAll() *Token {
	if toks.Len() == 0 {
		return nil
	}
	return &toks.toks[0]
}

func (toks *Tokens) Accept(kind Kind) error {
	cur := toks.Peek()
	if cur == nil {
		return EOT
	}
	got := cur.Kind()
	if got != kind {
		return fmt.Errorf("expecting %q, got %v", toknames[kind], cur)
	}
	toks.Pop()
	return nil
}

func (toks *Tokens) Find(kinds ...Kind) *Token {
	find := map[Kind]struct{}{}
	for _, kind := range kinds {
		find[kind] = struct{}{}
	}
	for {
		cur := toks.Peek()
		if cur == nil {
			return nil
		}
		if _, ok := find[cur.Kind()]; ok {
			return cur
		}
		toks.Pop()
	}
}
