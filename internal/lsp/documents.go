package lsp

import "sync"

type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open documents and their latest analysis, keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

// Open stores a newly opened document and returns its analysis.
func (s *DocumentStore) Open(uri, content string) *AnalysisResult {
	return s.set(uri, content)
}

// Update replaces a document's content and returns the new analysis.
func (s *DocumentStore) Update(uri, content string) *AnalysisResult {
	return s.set(uri, content)
}

func (s *DocumentStore) set(uri, content string) *AnalysisResult {
	result := Analyze(uri, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.content, ok
}

// Result returns the latest analysis of a document, or nil if it is not open.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	return doc.result
}
