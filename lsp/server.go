package lsp

import (
	"fmt"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/pcomb/grammar"
)

const lsName = "pcomb"

var log = commonlog.GetLogger("pcomb.lsp")

type Server struct {
	documents *Documents
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewServer(version string) *Server {
	ls := &Server{
		documents: NewDocuments(),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCompletion: ls.textDocumentCompletion,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s %s initialized", lsName, ls.version)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.update(ctx, params.TextDocument.URI, textChange.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.documents.Remove(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri, text string) {
	doc := ls.documents.Update(uri, text)
	if doc.Err != nil {
		log.Debugf("%s: %s", uri, doc.Err)
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc),
	})
}

func (ls *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := ls.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return completions(doc), nil
}

func diagnostics(doc *Document) []protocol.Diagnostic {
	if doc.Err == nil {
		return []protocol.Diagnostic{}
	}

	offset := doc.Err.At.Offset()
	line, char := position(doc.Text, offset)
	end := offset
	if _, size := doc.Err.At.Next(); size > 0 {
		end += size
	}
	endLine, endChar := position(doc.Text, end)

	message := "syntax error"
	if doc.Err.Leftover {
		message = "unexpected input"
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)},
			End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  fmt.Sprintf("%s: %s", message, doc.Err),
	}}
}

func completions(doc *Document) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, k := range grammar.Keywords() {
		kind := protocol.CompletionItemKindKeyword
		items = append(items, protocol.CompletionItem{Label: k, Kind: &kind})
	}
	for _, name := range doc.Names() {
		kind := protocol.CompletionItemKindVariable
		detail := "variable"
		items = append(items, protocol.CompletionItem{Label: name, Kind: &kind, Detail: &detail})
	}
	return items
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
