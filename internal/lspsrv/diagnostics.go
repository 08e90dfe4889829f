package lspsrv

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/minicc/minicc/analyze"
	"github.com/minicc/minicc/diag"
	"github.com/minicc/minicc/lex"
	"github.com/minicc/minicc/parse"
)

// analyzeToDiagnostics runs lex, parse and analyze over one document's
// text and renders every error onto the LSP wire format. LSP positions
// are 0-based, while the analyzer's line numbers and token columns are
// 1-based (see token.Token.Lineno), so rangeFor subtracts one from each.
func analyzeToDiagnostics(text string) []protocol.Diagnostic {
	var out []protocol.Diagnostic

	toks, lexerrs := lex.Lex([]rune(text))
	for _, e := range lexerrs {
		out = append(out, protocol.Diagnostic{
			Range:    wholeLine(0),
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   strPtr("minicc"),
			Message:  e.Error(),
		})
	}

	p := parse.New()
	if perr := p.Parse(toks); perr != nil {
		for _, e := range p.Errors() {
			out = append(out, protocol.Diagnostic{
				Range:    wholeLine(0),
				Severity: severityPtr(protocol.DiagnosticSeverityError),
				Source:   strPtr("minicc"),
				Message:  e.Error(),
			})
		}
	}

	a := analyze.New(p.Fn())
	a.Work(p.Nodes())
	for _, e := range a.Errors() {
		se, ok := e.(*diag.SemanticError)
		if !ok {
			continue
		}
		out = append(out, protocol.Diagnostic{
			Range:    rangeFor(se),
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   strPtr("minicc"),
			Message:  diagMessage(se),
		})
	}

	return out
}

func rangeFor(se *diag.SemanticError) protocol.Range {
	line := uint32(se.Line)
	if line > 0 {
		line--
	}
	var col uint32
	if se.Node != nil {
		if tok := se.Node.Tok(); tok != nil && tok.Col() > 0 {
			col = uint32(tok.Col() - 1)
		}
	}
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: col},
		End:   protocol.Position{Line: line, Character: col + 1},
	}
}

// diagMessage keeps the numbered-registry code visible in the message
// text itself, mirroring diag.Config's "Error type %d" line format,
// since the wire-level Code field varies across glsp protocol versions.
func diagMessage(se *diag.SemanticError) string {
	return fmt.Sprintf("[%d] %s", se.Code, se.Wrapped.Error())
}

func wholeLine(line uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: 0},
		End:   protocol.Position{Line: line, Character: 1},
	}
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
func strPtr(s string) *string                                               { return &s }
