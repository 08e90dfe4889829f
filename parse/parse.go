// Package parse implements a hand-written recursive-descent parser for
// MiniC, producing the node tree the analyze package consumes. Lexing and
// parsing are external collaborators to the semantic analyzer: this
// package only has to honor the AST shapes analyze.Analyzer expects.
package parse

import (
	"errors"
	"fmt"

	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/token"
)

var (
	ErrParse = errors.New("parsing met with error(s)")
	EOT      = errors.New("end of tokens")
)

type Parser struct {
	fn      string
	extdefs []node.Node
	errs    []error
}

func New() *Parser {
	return NewFile("<stdin>")
}

func NewFile(fn string) *Parser {
	return &Parser{fn: fn}
}

func (p *Parser) Fn() string { return p.fn }

func (p *Parser) Errors() []error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs
}

func (p *Parser) Nodes() []node.Node {
	return p.extdefs
}

var eofTok = &token.Token{}

func (p *Parser) errorf(tok *token.Token, format string, a ...interface{}) error {
	if tok == nil {
		tok = eofTok
	}
	err := &ParseError{
		Tok:     tok,
		Fn:      p.fn,
		Wrapped: fmt.Errorf(format, a...),
	}
	p.errs = append(p.errs, err)
	return err
}

func store(tok *token.Token, n node.Node) node.Node {
	return node.Store(tok, n)
}

// Parse consumes every ExtDef it can find in toks, recovering after a
// malformed one by skipping to the next ';' or '}' so a single mistake
// does not prevent the rest of the file from being parsed.
func (p *Parser) Parse(toks *token.Tokens) error {
	p.errs = nil
	p.extdefs = nil
	for toks.Len() > 0 {
		n, err := p.extDef(toks)
		if err != nil {
			toks.Find(token.Semicolon, token.RCurly)
			toks.Pop()
			continue
		}
		p.extdefs = append(p.extdefs, n)
	}
	if len(p.errs) > 0 {
		return ErrParse
	}
	return nil
}
