package parse

import (
	"strconv"

	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/token"
)

// VarDec parses the recursive array declarator:
//   VarDec : ID | VarDec [ INT ]
// left-recursively, matching the grammar exactly: an identifier wrapped by
// zero or more trailing "[ INT ]" subscripts.
func (p *Parser) VarDec(toks *token.Tokens) (*node.VarDec, error) {
	cur := toks.Peek()
	if cur == nil || cur.Kind() != token.Id {
		return nil, p.errorf(cur, "expecting an identifier")
	}
	tok := toks.Pop()
	vd := store(tok, &node.VarDec{Ident: tok.Value()}).(*node.VarDec)
	for {
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.LBrack {
			return vd, nil
		}
		btok := toks.Pop()
		dimtok := toks.Peek()
		if dimtok == nil || dimtok.Kind() != token.DecNum {
			return nil, p.errorf(dimtok, "expecting an integer array dimension")
		}
		toks.Pop()
		dim, err := strconv.Atoi(dimtok.Value())
		if err != nil {
			return nil, p.errorf(dimtok, "invalid array dimension %q: %s", dimtok.Value(), err)
		}
		if err := toks.Accept(token.RBrack); err != nil {
			return nil, p.errorf(toks.PeekAll(), "%s", err)
		}
		vd = store(btok, &node.VarDec{Inner: vd, Dim: dim}).(*node.VarDec)
	}
}

// ParamDec parses "Specifier VarDec".
func (p *Parser) ParamDec(toks *token.Tokens) (*node.ParamDec, error) {
	spec, err := p.Specifier(toks)
	if err != nil {
		return nil, err
	}
	dec, err := p.VarDec(toks)
	if err != nil {
		return nil, err
	}
	return store(spec.Tok(), &node.ParamDec{Spec: spec, Dec: dec}).(*node.ParamDec), nil
}

// varList parses a comma-separated ParamDec list, empty when toks
// immediately holds ')'.
func (p *Parser) varList(toks *token.Tokens) ([]*node.ParamDec, error) {
	var params []*node.ParamDec
	if cur := toks.Peek(); cur != nil && cur.Kind() == token.RParen {
		return params, nil
	}
	for {
		pd, err := p.ParamDec(toks)
		if err != nil {
			return nil, err
		}
		params = append(params, pd)
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.Comma {
			return params, nil
		}
		toks.Pop()
	}
}

// FunDec parses "ID ( VarList? )".
func (p *Parser) FunDec(toks *token.Tokens) (*node.FunDec, error) {
	cur := toks.Peek()
	if cur == nil || cur.Kind() != token.Id {
		return nil, p.errorf(cur, "expecting a function name")
	}
	tok := toks.Pop()
	if err := toks.Accept(token.LParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	params, err := p.varList(toks)
	if err != nil {
		return nil, err
	}
	if err := toks.Accept(token.RParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	return store(tok, &node.FunDec{Name: tok.Value(), Params: params}).(*node.FunDec), nil
}

// Dec parses "VarDec" or "VarDec = Exp".
func (p *Parser) Dec(toks *token.Tokens) (*node.Dec, error) {
	vd, err := p.VarDec(toks)
	if err != nil {
		return nil, err
	}
	if cur := toks.Peek(); cur != nil && cur.Kind() == token.Assign {
		tok := toks.Pop()
		init, err := p.Exp(toks)
		if err != nil {
			return nil, err
		}
		return store(tok, &node.Dec{VarDec: vd, Init: init}).(*node.Dec), nil
	}
	return store(vd.Tok(), &node.Dec{VarDec: vd}).(*node.Dec), nil
}

// decList parses a comma-separated Dec list.
func (p *Parser) decList(toks *token.Tokens) ([]*node.Dec, error) {
	var decs []*node.Dec
	for {
		d, err := p.Dec(toks)
		if err != nil {
			return nil, err
		}
		decs = append(decs, d)
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.Comma {
			return decs, nil
		}
		toks.Pop()
	}
}

// def parses "Specifier DecList ;" as used inside a struct body and a
// CompSt's local declarations.
func (p *Parser) def(toks *token.Tokens) (*node.Def, error) {
	spec, err := p.Specifier(toks)
	if err != nil {
		return nil, err
	}
	decs, err := p.decList(toks)
	if err != nil {
		return nil, err
	}
	if err := toks.Accept(token.Semicolon); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	return store(spec.Tok(), &node.Def{Spec: spec, Decs: decs}).(*node.Def), nil
}

// extDef parses a top-level external definition: one of
//   Specifier ;
//   Specifier ExtDecList ;
//   Specifier FunDec CompSt
//   Specifier FunDec ;
func (p *Parser) extDef(toks *token.Tokens) (node.Node, error) {
	spec, err := p.Specifier(toks)
	if err != nil {
		return nil, err
	}
	cur := toks.Peek()
	if cur == nil {
		return nil, p.errorf(nil, "unexpected end of input after type specifier")
	}
	if cur.Kind() == token.Semicolon {
		toks.Pop()
		return store(spec.Tok(), &node.ExtVarDef{Spec: spec}).(*node.ExtVarDef), nil
	}
	if cur.Kind() == token.Id {
		// Disambiguate "ID ;" / "ID , ..." (a variable decl list) from
		// "ID ( ..." (a function declarator) by peeking one token ahead is
		// not possible with this FIFO, so FunDec's own error on a missing
		// '(' naturally falls back here: try FunDec first only when a '('
		// actually follows the identifier is unknowable without lookahead,
		// so we special-case by scanning: an ExtDecList identifier is never
		// followed directly by '(' in this grammar position, since MiniC
		// has no function-pointer declarators.
		return p.extDefAfterId(toks, spec)
	}
	return nil, p.errorf(cur, "expecting ';', an identifier, or a function declarator, got %s", cur)
}

func (p *Parser) extDefAfterId(toks *token.Tokens, spec *node.Specifier) (node.Node, error) {
	// A one-token lookahead distinguishes FunDec ("ID (") from VarDec
	// ("ID", "ID [", "ID ,", "ID ;"): peek past the identifier without
	// popping it by taking a snapshot via PeekAll/Pop pairs is unnecessary
	// here because Tokens only exposes front-of-queue peeking; instead we
	// parse greedily as VarDec first only if what follows the identifier
	// cannot start a function declarator, which in this grammar is simply
	// "is the next-next token '('". We obtain that by popping the ID
	// ourselves and checking the following token before committing.
	idtok := toks.Peek()
	name := idtok.Value()
	toks.Pop()
	if n := toks.Peek(); n != nil && n.Kind() == token.LParen {
		fd, err := p.funDecFromName(toks, idtok, name)
		if err != nil {
			return nil, err
		}
		if cur := toks.Peek(); cur != nil && cur.Kind() == token.LCurly {
			body, err := p.CompSt(toks)
			if err != nil {
				return nil, err
			}
			return store(spec.Tok(), &node.FunDef{Spec: spec, FunDec: fd, Body: body}).(*node.FunDef), nil
		}
		if err := toks.Accept(token.Semicolon); err != nil {
			return nil, p.errorf(toks.PeekAll(), "%s", err)
		}
		return store(spec.Tok(), &node.FunDecl{Spec: spec, FunDec: fd}).(*node.FunDecl), nil
	}
	// Not a function: resume VarDec parsing from the identifier we already
	// consumed, building the first declarator's array-bracket suffix (if
	// any) ourselves, then falling into the regular comma-separated list.
	first, err := p.varDecFrom(toks, idtok, name)
	if err != nil {
		return nil, err
	}
	decs := []*node.VarDec{first}
	for {
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.Comma {
			break
		}
		toks.Pop()
		vd, err := p.VarDec(toks)
		if err != nil {
			return nil, err
		}
		decs = append(decs, vd)
	}
	if err := toks.Accept(token.Semicolon); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	return store(spec.Tok(), &node.ExtVarDef{Spec: spec, Decs: decs}).(*node.ExtVarDef), nil
}

// funDecFromName builds a FunDec node whose identifier token has already
// been popped from toks (idtok/name carry it).
func (p *Parser) funDecFromName(toks *token.Tokens, idtok *token.Token, name string) (*node.FunDec, error) {
	if err := toks.Accept(token.LParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	params, err := p.varList(toks)
	if err != nil {
		return nil, err
	}
	if err := toks.Accept(token.RParen); err != nil {
		return nil, p.errorf(toks.PeekAll(), "%s", err)
	}
	return store(idtok, &node.FunDec{Name: name, Params: params}).(*node.FunDec), nil
}

// varDecFrom builds a VarDec node whose leaf identifier token has already
// been popped from toks (idtok/name carry it), continuing to parse any
// trailing "[ INT ]" subscripts.
func (p *Parser) varDecFrom(toks *token.Tokens, idtok *token.Token, name string) (*node.VarDec, error) {
	vd := store(idtok, &node.VarDec{Ident: name}).(*node.VarDec)
	for {
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.LBrack {
			return vd, nil
		}
		btok := toks.Pop()
		dimtok := toks.Peek()
		if dimtok == nil || dimtok.Kind() != token.DecNum {
			return nil, p.errorf(dimtok, "expecting an integer array dimension")
		}
		toks.Pop()
		dim, err := strconv.Atoi(dimtok.Value())
		if err != nil {
			return nil, p.errorf(dimtok, "invalid array dimension %q: %s", dimtok.Value(), err)
		}
		if err := toks.Accept(token.RBrack); err != nil {
			return nil, p.errorf(toks.PeekAll(), "%s", err)
		}
		vd = store(btok, &node.VarDec{Inner: vd, Dim: dim}).(*node.VarDec)
	}
}
