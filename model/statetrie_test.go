package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTrie_InsertIfNotExists(t *testing.T) {
	trie := NewStateTrie()

	idx, existed := trie.InsertIfNotExists(Vector{1, 0}, 1)
	assert.False(t, existed)
	assert.Equal(t, 1, idx)

	idx, existed = trie.InsertIfNotExists(Vector{1, 0}, 99)
	assert.True(t, existed)
	assert.Equal(t, 1, idx, "candidate index must be ignored once a vector is interned")

	idx, existed = trie.InsertIfNotExists(Vector{0, 1}, 2)
	assert.False(t, existed)
	assert.Equal(t, 2, idx)
}

func TestStateTrie_LookupAndContains(t *testing.T) {
	trie := NewStateTrie()
	assert.False(t, trie.Contains(Vector{1, 2}))

	trie.InsertIfNotExists(Vector{1, 2}, 5)
	assert.True(t, trie.Contains(Vector{1, 2}))

	idx, found := trie.Lookup(Vector{1, 2})
	assert.True(t, found)
	assert.Equal(t, 5, idx)

	_, found = trie.Lookup(Vector{2, 1})
	assert.False(t, found)
}

func TestStateTrie_IndexNeverChangesOnceAssigned(t *testing.T) {
	trie := NewStateTrie()
	for i := 0; i < 50; i++ {
		idx, _ := trie.InsertIfNotExists(Vector{int64(i % 5), int64(i % 3)}, 1000+i)
		idx2, existed := trie.InsertIfNotExists(Vector{int64(i % 5), int64(i % 3)}, -1)
		assert.True(t, existed)
		assert.Equal(t, idx, idx2)
	}
}
