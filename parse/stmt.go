package parse

import (
	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/token"
)

// CompSt parses "{ DefList StmtList }". DefList is a run of Defs that must
// all precede the first Stmt, matching the grammar: once a non-Def
// statement has been seen, no further local declarations are accepted.
func (p *Parser) CompSt(toks *token.Tokens) (*node.CompSt, error) {
	cur := toks.Peek()
	if cur == nil || cur.Kind() != token.LCurly {
		return nil, p.errorf(cur, "expecting '{'")
	}
	tok := toks.Pop()
	var defs []*node.Def
	for {
		c := toks.Peek()
		if c == nil {
			return nil, p.errorf(nil, "unterminated compound statement")
		}
		if c.Kind() == token.RCurly {
			break
		}
		if !startsSpecifier(c.Kind()) {
			break
		}
		d, err := p.def(toks)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	var stmts []node.Node
	for {
		c := toks.Peek()
		if c == nil {
			return nil, p.errorf(nil, "unterminated compound statement")
		}
		if c.Kind() == token.RCurly {
			toks.Pop()
			break
		}
		s, err := p.Stmt(toks)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return store(tok, &node.CompSt{Defs: defs, Stmts: stmts}).(*node.CompSt), nil
}

func startsSpecifier(k token.Kind) bool {
	return k == token.KwInt || k == token.KwFloat || k == token.KwStruct
}

// Stmt parses one of:
//
//	Exp ;
//	CompSt
//	RETURN Exp ;
//	IF ( Exp ) Stmt
//	IF ( Exp ) Stmt ELSE Stmt
//	WHILE ( Exp ) Stmt
func (p *Parser) Stmt(toks *token.Tokens) (node.Node, error) {
	cur := toks.Peek()
	if cur == nil {
		return nil, p.errorf(nil, "expecting a statement, got end of input")
	}
	switch cur.Kind() {
	case token.LCurly:
		return p.CompSt(toks)
	case token.KwReturn:
		tok := toks.Pop()
		e, err := p.Exp(toks)
		if err != nil {
			return nil, err
		}
		if err := toks.Accept(token.Semicolon); err != nil {
			return nil, p.errorf(toks.PeekAll(), "%s", err)
		}
		return store(tok, &node.ReturnStmt{Expr: e}), nil
	case token.KwIf:
		return p.ifStmt(toks)
	case token.KwWhile:
		return p.whileStmt(toks)
	default:
		e, err := p.Exp(toks)
		if err != nil {
			return nil, err
		}
		if err := toks.Accept(token.Semicolon); err != nil {
			return nil, p.errorf(toks.PeekAll(), "%s", err)
		}
		return store(e.Tok(), &node.ExprStmt{Expr: e}), nil
	}
}

func (p *Parser) ifStmt(toks *token.Tokens) (node.Node, error) {
	tok := toks.Pop() // IF
	if err := toks.Accept(token.LParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	cond, err := p.Exp(toks)
	if err != nil {
		return nil, err
	}
	if err := toks.Accept(token.RParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	then, err := p.Stmt(toks)
	if err != nil {
		return nil, err
	}
	if cur := toks.Peek(); cur != nil && cur.Kind() == token.KwElse {
		toks.Pop()
		els, err := p.Stmt(toks)
		if err != nil {
			return nil, err
		}
		return store(tok, &node.IfStmt{Cond: cond, True: then, Else: els}), nil
	}
	return store(tok, &node.IfStmt{Cond: cond, True: then}), nil
}

func (p *Parser) whileStmt(toks *token.Tokens) (node.Node, error) {
	tok := toks.Pop() // WHILE
	if err := toks.Accept(token.LParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	cond, err := p.Exp(toks)
	if err != nil {
		return nil, err
	}
	if err := toks.Accept(token.RParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	body, err := p.Stmt(toks)
	if err != nil {
		return nil, err
	}
	return store(tok, &node.WhileStmt{Cond: cond, Body: body}), nil
}
