package index

import (
	"sync"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/tokenizer"
)

// Document is a single ingested text with stop-words already removed.
type Document struct {
	ID    int      `json:"document_id"`
	Words []string `json:"words"`
}

// Store holds documents as a flat list in insertion order.
type Store struct {
	mu        sync.RWMutex
	documents []Document
	wordCount int
}

func NewStore() *Store {
	return &Store{
		documents: make([]Document, 0),
	}
}

// AddDocument filters text against stopWords and appends it under id.
// Ids are not checked for uniqueness; a repeated id becomes a second,
// independent document.
func (s *Store) AddDocument(stopWords tokenizer.StopWords, id int, text string) Document {
	doc := Document{
		ID:    id,
		Words: tokenizer.RemoveStopWords(text, stopWords),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, doc)
	s.wordCount += len(doc.Words)
	return doc
}

// Documents returns a snapshot of all documents in insertion order.
func (s *Store) Documents() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// Document returns the first document stored under id.
func (s *Store) Document(id int) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}

func (s *Store) DocCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// WordCount is the total number of non-stop words across all documents.
func (s *Store) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordCount
}
