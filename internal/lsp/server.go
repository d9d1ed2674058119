// Package lsp implements a language server that names the hex colors found
// in any document and checks palette files.
package lsp

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const serverName = "huematch-lsp"

var log = commonlog.GetLogger("huematch.lsp")

// Settings select the palette and formula used to name colors. Nil fields
// fall back to the palette file's defaults, then to CIE76.
type Settings struct {
	Formula *deltae.Formula
	Weights *deltae.Weights
	// PalettePath is a palette file to use instead of the built-in palette.
	PalettePath string
}

type Server struct {
	handler protocol.Handler
	docs    *DocumentStore
	version string

	mu          sync.RWMutex
	settings    Settings
	search      finder.Options
	paletteFile *palette.File
	paletteURI  protocol.DocumentUri
}

// NewServer creates a server with the given settings. It fails if the
// palette file cannot be loaded.
func NewServer(version string, settings Settings) (*Server, error) {
	s := &Server{
		docs:    NewDocumentStore(),
		version: version,
	}
	if err := s.configure(settings); err != nil {
		return nil, err
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentCompletion:        s.textDocumentCompletion,
		TextDocumentDefinition:        s.textDocumentDefinition,
		TextDocumentColor:             s.textDocumentDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}

	return s, nil
}

func (s *Server) Run() error {
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

// configure applies settings, loading the palette file if one is named.
func (s *Server) configure(settings Settings) error {
	opts := finder.Options{Weights: settings.Weights}
	var file *palette.File
	var uri protocol.DocumentUri

	if settings.PalettePath != "" {
		f, err := palette.Load(settings.PalettePath)
		if err != nil {
			return fmt.Errorf("configuring palette: %w", err)
		}
		file = f
		uri = pathToURI(settings.PalettePath)
		opts.Palette = f.Entries()
		if f.Defaults.Formula != nil {
			opts.Formula = *f.Defaults.Formula
		}
		if opts.Weights == nil {
			opts.Weights = f.Defaults.Weights
		}
	}
	if settings.Formula != nil {
		opts.Formula = *settings.Formula
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.search = opts
	s.paletteFile = file
	s.paletteURI = uri

	name := "built-in"
	if file != nil {
		name = settings.PalettePath
	}
	log.Infof("using %s palette with %s", name, opts.Formula.Name())
	return nil
}

func (s *Server) searchOptions() finder.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func pathToURI(path string) protocol.DocumentUri {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return protocol.DocumentUri("file://" + filepath.ToSlash(path))
}

// parseInitOptions merges client initializationOptions of the form
// {"formula": "2000", "weights": "textiles", "palette": "/path.huepal"}
// over base.
func parseInitOptions(raw any, base Settings) (Settings, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return base, nil
	}

	switch v := m["formula"].(type) {
	case string:
		f, err := deltae.ParseFormula(v)
		if err != nil {
			return base, err
		}
		base.Formula = &f
	case float64:
		f, err := deltae.ParseFormula(strconv.FormatFloat(v, 'f', -1, 64))
		if err != nil {
			return base, err
		}
		base.Formula = &f
	}

	if v, ok := m["weights"].(string); ok {
		w, err := deltae.ParseWeights(v)
		if err != nil {
			return base, err
		}
		base.Weights = &w
	}

	if v, ok := m["palette"].(string); ok {
		base.PalettePath = v
	}

	return base, nil
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.mu.RLock()
	current := s.settings
	s.mu.RUnlock()

	if settings, err := parseInitOptions(params.InitializationOptions, current); err != nil {
		log.Warningf("ignoring initialization options: %s", err)
	} else if err := s.configure(settings); err != nil {
		log.Errorf("ignoring initialization options: %s", err)
	}

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"#"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	log.Debugf("opened %s", uri)
	result := s.docs.Open(uri, params.TextDocument.Text)
	s.publishDiagnostics(ctx, params.TextDocument.URI, result)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			result := s.docs.Update(string(params.TextDocument.URI), c.Text)
			s.publishDiagnostics(ctx, params.TextDocument.URI, result)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	log.Debugf("closed %s", uri)
	s.docs.Close(uri)
	if isPaletteFile(uri) {
		s.publishDiagnostics(ctx, params.TextDocument.URI, &AnalysisResult{Diagnostics: []protocol.Diagnostic{}})
	}
	return nil
}

// publishDiagnostics sends a palette file's diagnostics to the client.
// Other documents have none and are skipped.
func (s *Server) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, result *AnalysisResult) {
	if ctx == nil || !isPaletteFile(string(uri)) {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: result.Diagnostics,
	})
}
