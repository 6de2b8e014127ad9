package dictionary_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/dictionary"
)

const wordList = `# fruit
Apple
apricot

Banana
APPLE
  Blueberry  
# trailing comment
`

func TestLoadSkipsCommentsAndDuplicates(t *testing.T) {
	d, err := dictionary.Load(strings.NewReader(wordList))
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len())
	assert.ElementsMatch(t, []string{"Apple", "apricot", "Banana", "Blueberry"}, slices.Collect(d.All()))
}

func TestAddKeepsFirstSpelling(t *testing.T) {
	d := dictionary.New()
	assert.True(t, d.Add("Paris"))
	assert.False(t, d.Add("PARIS"))
	assert.False(t, d.Add("   "))

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []string{"Paris"}, slices.Collect(d.All()))
}

func TestWithPrefixIgnoresCase(t *testing.T) {
	d := dictionary.New()
	for _, w := range []string{"Apple", "apricot", "Banana", "Blueberry", "ape"} {
		d.Add(w)
	}

	assert.ElementsMatch(t, []string{"Apple", "apricot", "ape"}, slices.Collect(d.WithPrefix("AP")))
	assert.ElementsMatch(t, []string{"Apple"}, slices.Collect(d.WithPrefix("appl")))
	assert.Empty(t, slices.Collect(d.WithPrefix("cherry")))
	assert.Len(t, slices.Collect(d.WithPrefix("")), 5)
}

func TestSequenceStopsEarly(t *testing.T) {
	d := dictionary.New()
	for _, w := range []string{"a", "b", "c", "d"} {
		d.Add(w)
	}

	n := 0
	for range d.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestSequenceIsReusable(t *testing.T) {
	d := dictionary.New()
	d.Add("one")
	d.Add("two")

	seq := d.All()
	assert.Len(t, slices.Collect(seq), 2)
	assert.Len(t, slices.Collect(seq), 2)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(wordList), 0o644))

	d, err := dictionary.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := dictionary.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

type failingReader struct{}

var errBroken = errors.New("broken pipe")

func (failingReader) Read([]byte) (int, error) { return 0, errBroken }

func TestLoadWrapsReadErrors(t *testing.T) {
	_, err := dictionary.Load(failingReader{})
	require.ErrorIs(t, err, errBroken)
}

func TestAllKeepsSubstringMatches(t *testing.T) {
	d := dictionary.New()
	for _, w := range []string{"Munich", "Zürich", "Berlin"} {
		d.Add(w)
	}

	var got []string
	for w := range d.All() {
		if dropdown.Matches(w, "ich", true, false) {
			got = append(got, w)
		}
	}
	assert.ElementsMatch(t, []string{"Munich", "Zürich"}, got)
	assert.Empty(t, slices.Collect(d.WithPrefix("ich")), "prefix narrowing alone would drop them")
}
