package parse

import (
	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/token"
)

// Specifier parses "TYPE | StructSpecifier".
func (p *Parser) Specifier(toks *token.Tokens) (*node.Specifier, error) {
	cur := toks.Peek()
	if cur == nil {
		return nil, p.errorf(nil, "expecting a type specifier, got end of input")
	}
	switch cur.Kind() {
	case token.KwInt:
		tok := toks.Pop()
		return store(tok, &node.Specifier{Prim: node.TInt}).(*node.Specifier), nil
	case token.KwFloat:
		tok := toks.Pop()
		return store(tok, &node.Specifier{Prim: node.TFloat}).(*node.Specifier), nil
	case token.KwStruct:
		tok := toks.Pop()
		ss, err := p.structSpecifier(toks, tok)
		if err != nil {
			return nil, err
		}
		return store(tok, &node.Specifier{IsStruct: true, StructSpec: ss}).(*node.Specifier), nil
	default:
		return nil, p.errorf(cur, "expecting a type specifier, got %s", cur)
	}
}

// structSpecifier parses what follows STRUCT: either "Tag" (a reference)
// or "OptTag { DefList }" (a definition). structtok is the already-popped
// STRUCT token, reused so the StructSpecifier node's line matches it.
func (p *Parser) structSpecifier(toks *token.Tokens, structtok *token.Token) (*node.StructSpecifier, error) {
	tag := ""
	if cur := toks.Peek(); cur != nil && cur.Kind() == token.Id {
		tag = toks.Pop().Value()
	}
	if cur := toks.Peek(); cur == nil || cur.Kind() != token.LCurly {
		// "STRUCT Tag" reference form; a tag is mandatory here.
		if tag == "" {
			return nil, p.errorf(toks.PeekAll(), "expecting a struct tag")
		}
		return store(structtok, &node.StructSpecifier{Tag: tag}).(*node.StructSpecifier), nil
	}
	toks.Pop() // '{'
	var members []*node.Def
	for {
		cur := toks.Peek()
		if cur == nil {
			return nil, p.errorf(nil, "unterminated struct body")
		}
		if cur.Kind() == token.RCurly {
			toks.Pop()
			break
		}
		d, err := p.def(toks)
		if err != nil {
			return nil, err
		}
		members = append(members, d)
	}
	return store(structtok, &node.StructSpecifier{
		Tag:     tag,
		IsDef:   true,
		Members: members,
	}).(*node.StructSpecifier), nil
}
