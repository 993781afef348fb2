package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wordtally/internal/tally"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func sampleTally() *tally.Tally {
	tl := tally.New()
	for _, w := range []string{"sword", "bow", "helmet", "sword", "shield", "bow", "helmet", "sword"} {
		tl.Add(w)
	}
	return tl
}

func TestWordList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).WordList(sampleTally()))

	assert.Equal(t, "\n=== Word list:\nbow 2\nhelmet 2\nshield 1\nsword 3\n", buf.String())
	newGoldie(t).Assert(t, "word_list", buf.Bytes())
}

func TestWordList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).WordList(tally.New()))

	newGoldie(t).Assert(t, "word_list_empty", buf.Bytes())
}

func TestWordList_Idempotent(t *testing.T) {
	tl := sampleTally()

	var first, second bytes.Buffer
	require.NoError(t, New(&first).WordList(tl))
	require.NoError(t, New(&second).WordList(tl))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWordList_UppercaseFirst(t *testing.T) {
	tl := tally.New()
	tl.Add("bow")
	tl.Add("Zebra")

	var buf bytes.Buffer
	require.NoError(t, New(&buf).WordList(tl))
	assert.Equal(t, "\n=== Word list:\nZebra 1\nbow 1\n", buf.String())
}

func TestLookupLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.Prompt())
	require.NoError(t, r.Found("sword", 3))
	require.NoError(t, r.Prompt())
	require.NoError(t, r.NotFound("bow sword"))

	assert.Equal(t,
		"\nEnter a word for lookup:Success: sword was present 3 times in the initial word list\n"+
			"\nEnter a word for lookup:bow sword was NOT found in the initial word list\n",
		buf.String())
}

func TestTotalFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).TotalFound(3))
	assert.Equal(t, "\n\n=== Total words found: 3\n", buf.String())

	buf.Reset()
	require.NoError(t, New(&buf).TotalFound(0))
	assert.Equal(t, "\n\n=== Total words found: 0\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWordList_WriteError(t *testing.T) {
	err := New(failingWriter{}).WordList(sampleTally())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write word list")
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(sampleTally())

	assert.Len(t, s.Words, 4)
	assert.Equal(t, "bow", s.Words[0].Word)
	assert.Len(t, s.Digest, 64)
}
