// Package lspsrv is a minimal Language Server Protocol front end for the
// semantic analyzer: it re-runs the full lex/parse/analyze pipeline on
// every textDocument/didOpen and textDocument/didSave notification and
// republishes the resulting diagnostics.
package lspsrv

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

// Server wraps a glsp handler bound to the analyzer pipeline.
type Server struct {
	name    string
	version string
	log     commonlog.Logger
	handler protocol.Handler
	server  *server.Server
}

// NewServer wires the handler table and the underlying glsp server, ready
// for RunStdio.
func NewServer(name, version string) *Server {
	s := &Server{
		name:    name,
		version: version,
		log:     commonlog.GetLogger(name),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidSave:   s.textDocumentDidSave,
		TextDocumentDidClose:  s.textDocumentDidClose,
	}

	s.server = server.NewServer(&s.handler, name, false)
	return s
}

// RunStdio runs the server over stdin/stdout, the transport every LSP
// client expects from a spawned server process.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.log.Infof("initializing %s %s", s.name, s.version)
	capabilities := s.handler.CreateServerCapabilities()

	sync := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &sync,
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.log.Info("shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func boolPtr(b bool) *bool { return &b }
