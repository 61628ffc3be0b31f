package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"only spaces", "   ", []string{}},
		{"single word", "cat", []string{"cat"}},
		{"double space collapses", "a  b", []string{"a", "b"}},
		{"leading and trailing", " a ", []string{"a"}},
		{"order preserved", "white cat and collar", []string{"white", "cat", "and", "collar"}},
		{"punctuation kept", "cat, dog.", []string{"cat,", "dog."}},
		{"case kept", "Cat cat", []string{"Cat", "cat"}},
		{"tab is not a separator", "a\tb c", []string{"a\tb", "c"}},
		{"cyrillic", "белый  кот", []string{"белый", "кот"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestParseStopWords(t *testing.T) {
	stop := ParseStopWords("и в на в  и")
	assert.Equal(t, 3, stop.Len())
	assert.True(t, stop.Contains("и"))
	assert.True(t, stop.Contains("на"))
	assert.False(t, stop.Contains("кот"))
	assert.Equal(t, []string{"в", "и", "на"}, stop.Words())

	empty := ParseStopWords("")
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Contains(""))
}

func TestRemoveStopWords(t *testing.T) {
	stop := ParseStopWords("and the")

	got := RemoveStopWords("the cat and the fluffy cat", stop)
	assert.Equal(t, []string{"cat", "fluffy", "cat"}, got)

	for _, word := range got {
		assert.False(t, stop.Contains(word))
	}

	assert.Empty(t, RemoveStopWords("and the", stop))
	assert.Equal(t, []string{"a", "b"}, RemoveStopWords("a b", StopWords{}))
}
