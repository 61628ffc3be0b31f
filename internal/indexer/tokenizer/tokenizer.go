// Package tokenizer provides text tokenisation for the search engine.
// Text is split on single space characters only; there is no case folding,
// punctuation stripping or stemming. Stop-words come from the caller.
package tokenizer

import (
	"sort"
	"strings"
)

// StopWords is an immutable set of words excluded from documents and queries.
type StopWords struct {
	words map[string]struct{}
}

// ParseStopWords builds a StopWords set from space-separated text.
// Duplicates collapse into a single entry.
func ParseStopWords(text string) StopWords {
	tokens := Split(text)
	words := make(map[string]struct{}, len(tokens))
	for _, word := range tokens {
		words[word] = struct{}{}
	}
	return StopWords{words: words}
}

// Contains reports whether word is a stop-word.
func (s StopWords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

func (s StopWords) Len() int {
	return len(s.words)
}

// Words returns the stop-words in lexical order.
func (s StopWords) Words() []string {
	out := make([]string, 0, len(s.words))
	for word := range s.words {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// Split breaks text into words on the ' ' character. Consecutive, leading
// and trailing spaces never produce empty words.
func Split(text string) []string {
	words := make([]string, 0, strings.Count(text, " ")+1)
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}

// RemoveStopWords splits text and drops every stop-word. Word order and
// repeated words are preserved.
func RemoveStopWords(text string, stopWords StopWords) []string {
	words := Split(text)
	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if stopWords.Contains(word) {
			continue
		}
		filtered = append(filtered, word)
	}
	return filtered
}
