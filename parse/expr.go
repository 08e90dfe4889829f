package parse

import (
	"strconv"

	"github.com/minicc/minicc/node"
	"github.com/minicc/minicc/token"
)

// Exp parses the full expression grammar by precedence climbing:
// assignment (lowest) -> logical or -> logical and -> relational ->
// additive -> multiplicative -> unary -> postfix -> primary (highest).
func (p *Parser) Exp(toks *token.Tokens) (node.Node, error) {
	return p.assign(toks)
}

func (p *Parser) assign(toks *token.Tokens) (node.Node, error) {
	left, err := p.logicOr(toks)
	if err != nil {
		return nil, err
	}
	cur := toks.Peek()
	if cur != nil && cur.Kind() == token.Assign {
		tok := toks.Pop()
		right, err := p.assign(toks)
		if err != nil {
			return nil, err
		}
		return store(tok, &node.AssignExpr{Left: left, Right: right}), nil
	}
	return left, nil
}

func (p *Parser) logicOr(toks *token.Tokens) (node.Node, error) {
	left, err := p.logicAnd(toks)
	if err != nil {
		return nil, err
	}
	for {
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.Pipe2 {
			return left, nil
		}
		tok := toks.Pop()
		right, err := p.logicAnd(toks)
		if err != nil {
			return nil, err
		}
		left = store(tok, &node.LogicExpr{Op: node.LogOr, Left: left, Right: right})
	}
}

func (p *Parser) logicAnd(toks *token.Tokens) (node.Node, error) {
	left, err := p.relational(toks)
	if err != nil {
		return nil, err
	}
	for {
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.Ampersand2 {
			return left, nil
		}
		tok := toks.Pop()
		right, err := p.relational(toks)
		if err != nil {
			return nil, err
		}
		left = store(tok, &node.LogicExpr{Op: node.LogAnd, Left: left, Right: right})
	}
}

var relops = map[token.Kind]node.RelOp{
	token.Lt: node.RelLt,
	token.Gt: node.RelGt,
	token.Le: node.RelLe,
	token.Ge: node.RelGe,
	token.Eq: node.RelEq,
	token.Ne: node.RelNe,
}

func (p *Parser) relational(toks *token.Tokens) (node.Node, error) {
	left, err := p.additive(toks)
	if err != nil {
		return nil, err
	}
	for {
		cur := toks.Peek()
		if cur == nil {
			return left, nil
		}
		op, ok := relops[cur.Kind()]
		if !ok {
			return left, nil
		}
		tok := toks.Pop()
		right, err := p.additive(toks)
		if err != nil {
			return nil, err
		}
		left = store(tok, &node.RelExpr{Op: op, Left: left, Right: right})
	}
}

func (p *Parser) additive(toks *token.Tokens) (node.Node, error) {
	left, err := p.multiplicative(toks)
	if err != nil {
		return nil, err
	}
	for {
		cur := toks.Peek()
		if cur == nil {
			return left, nil
		}
		var op node.ArithOp
		switch cur.Kind() {
		case token.Plus:
			op = node.ArithAdd
		case token.Minus:
			op = node.ArithSub
		default:
			return left, nil
		}
		tok := toks.Pop()
		right, err := p.multiplicative(toks)
		if err != nil {
			return nil, err
		}
		left = store(tok, &node.ArithExpr{Op: op, Left: left, Right: right})
	}
}

func (p *Parser) multiplicative(toks *token.Tokens) (node.Node, error) {
	left, err := p.unary(toks)
	if err != nil {
		return nil, err
	}
	for {
		cur := toks.Peek()
		if cur == nil {
			return left, nil
		}
		var op node.ArithOp
		switch cur.Kind() {
		case token.Star:
			op = node.ArithMul
		case token.Slash:
			op = node.ArithDiv
		default:
			return left, nil
		}
		tok := toks.Pop()
		right, err := p.unary(toks)
		if err != nil {
			return nil, err
		}
		left = store(tok, &node.ArithExpr{Op: op, Left: left, Right: right})
	}
}

func (p *Parser) unary(toks *token.Tokens) (node.Node, error) {
	cur := toks.Peek()
	if cur == nil {
		return nil, p.errorf(nil, "expecting an expression, got end of input")
	}
	switch cur.Kind() {
	case token.Minus:
		tok := toks.Pop()
		operand, err := p.unary(toks)
		if err != nil {
			return nil, err
		}
		return store(tok, &node.UnaryExpr{Op: node.UnNeg, Operand: operand}), nil
	case token.Exclam:
		tok := toks.Pop()
		operand, err := p.unary(toks)
		if err != nil {
			return nil, err
		}
		return store(tok, &node.UnaryExpr{Op: node.UnNot, Operand: operand}), nil
	default:
		return p.postfix(toks)
	}
}

func (p *Parser) postfix(toks *token.Tokens) (node.Node, error) {
	left, err := p.primary(toks)
	if err != nil {
		return nil, err
	}
	for {
		cur := toks.Peek()
		if cur == nil {
			return left, nil
		}
		switch cur.Kind() {
		case token.LBrack:
			tok := toks.Pop()
			idx, err := p.Exp(toks)
			if err != nil {
				return nil, err
			}
			if err := toks.Accept(token.RBrack); err != nil {
				return nil, p.errorf(toks.PeekAll(), "%s", err)
			}
			left = store(tok, &node.IndexExpr{Left: left, Index: idx})
		case token.Dot:
			tok := toks.Pop()
			id := toks.Peek()
			if id == nil || id.Kind() != token.Id {
				return nil, p.errorf(toks.PeekAll(), "expecting a member name")
			}
			toks.Pop()
			left = store(tok, &node.MemberExpr{Left: left, Name: id.Value()})
		default:
			return left, nil
		}
	}
}

func (p *Parser) primary(toks *token.Tokens) (node.Node, error) {
	cur := toks.Peek()
	if cur == nil {
		return nil, p.errorf(nil, "expecting an expression, got end of input")
	}
	switch cur.Kind() {
	case token.DecNum:
		tok := toks.Pop()
		v, err := strconv.ParseInt(tok.Value(), 10, 32)
		if err != nil {
			return nil, p.errorf(tok, "invalid integer literal %q: %s", tok.Value(), err)
		}
		return store(tok, &node.IntLit{Value: int32(v)}), nil
	case token.FloatNum:
		tok := toks.Pop()
		v, err := strconv.ParseFloat(tok.Value(), 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid float literal %q: %s", tok.Value(), err)
		}
		return store(tok, &node.FloatLit{Value: v}), nil
	case token.Id:
		tok := toks.Pop()
		name := tok.Value()
		if next := toks.Peek(); next != nil && next.Kind() == token.LParen {
			toks.Pop()
			args, err := p.args(toks)
			if err != nil {
				return nil, err
			}
			if err := toks.Accept(token.RParen); err != nil {
				return nil, p.errorf(toks.PeekAll(), "%s", err)
			}
			return store(tok, &node.CallExpr{Name: name, Args: args}), nil
		}
		return store(tok, &node.IdentExpr{Name: name}), nil
	case token.LParen:
		tok := toks.Pop()
		inner, err := p.Exp(toks)
		if err != nil {
			return nil, err
		}
		if err := toks.Accept(token.RParen); err != nil {
			return nil, p.errorf(toks.PeekAll(), "%s", err)
		}
		return store(tok, &node.Paren{Inner: inner}), nil
	default:
		return nil, p.errorf(cur, "unexpected token %s in expression", cur)
	}
}

func (p *Parser) args(toks *token.Tokens) ([]node.Node, error) {
	var args []node.Node
	if cur := toks.Peek(); cur != nil && cur.Kind() == token.RParen {
		return args, nil
	}
	for {
		a, err := p.Exp(toks)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		cur := toks.Peek()
		if cur == nil || cur.Kind() != token.Comma {
			return args, nil
		}
		toks.Pop()
	}
}
