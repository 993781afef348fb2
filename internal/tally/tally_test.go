package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_AddAndCount(t *testing.T) {
	tl := New()

	assert.Equal(t, uint64(1), tl.Add("sword"))
	assert.Equal(t, uint64(2), tl.Add("sword"))
	assert.Equal(t, uint64(1), tl.Add("bow"))

	n, ok := tl.Count("sword")
	require.True(t, ok)
	assert.Equal(t, uint64(2), n)

	_, ok = tl.Count("hammer")
	assert.False(t, ok)

	assert.Equal(t, 2, tl.Len())
	assert.Equal(t, uint64(3), tl.Total())
}

func TestTally_EntriesByteOrder(t *testing.T) {
	tl := New()
	for _, w := range []string{"sword", "bow", "Zebra", "arrow", "Bow", "bow"} {
		tl.Add(w)
	}

	assert.Equal(t, []Entry{
		{Word: "Bow", Count: 1},
		{Word: "Zebra", Count: 1},
		{Word: "arrow", Count: 1},
		{Word: "bow", Count: 2},
		{Word: "sword", Count: 1},
	}, tl.Entries())
}

func TestTally_EntriesEmpty(t *testing.T) {
	entries := New().Entries()
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestTally_EntriesIsCopy(t *testing.T) {
	tl := New()
	tl.Add("bow")

	entries := tl.Entries()
	entries[0].Count = 99

	n, _ := tl.Count("bow")
	assert.Equal(t, uint64(1), n)
}
