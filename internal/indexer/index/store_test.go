package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/internal/indexer/tokenizer"
)

func TestStoreAddDocument(t *testing.T) {
	stop := tokenizer.ParseStopWords("и в на")
	store := NewStore()

	doc := store.AddDocument(stop, 0, "белый кот и модный ошейник")
	assert.Equal(t, 0, doc.ID)
	assert.Equal(t, []string{"белый", "кот", "модный", "ошейник"}, doc.Words)

	store.AddDocument(stop, 1, "пушистый кот пушистый хвост")
	store.AddDocument(stop, 2, "")

	docs := store.Documents()
	require.Len(t, docs, 3)
	for i, d := range docs {
		assert.Equal(t, i, d.ID, "insertion order")
		for _, w := range d.Words {
			assert.False(t, stop.Contains(w))
		}
	}
	assert.Equal(t, []string{"пушистый", "кот", "пушистый", "хвост"}, docs[1].Words)
	assert.Empty(t, docs[2].Words)
	assert.Equal(t, 3, store.DocCount())
	assert.Equal(t, 8, store.WordCount())
}

func TestStoreDuplicateIDs(t *testing.T) {
	store := NewStore()
	store.AddDocument(tokenizer.StopWords{}, 7, "first")
	store.AddDocument(tokenizer.StopWords{}, 7, "second")

	assert.Equal(t, 2, store.DocCount())
	doc, ok := store.Document(7)
	require.True(t, ok)
	assert.Equal(t, []string{"first"}, doc.Words)

	_, ok = store.Document(8)
	assert.False(t, ok)
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore()
	store.AddDocument(tokenizer.StopWords{}, 0, "a")
	docs := store.Documents()
	docs[0].ID = 99

	doc, ok := store.Document(0)
	require.True(t, ok)
	assert.Equal(t, 0, doc.ID)
}
