// Package dictionary serves word lists as dropdown candidates.
//
// Words are stored in a patricia trie keyed by their lowercase form, so a
// prefix lookup visits only the matching subtree. The display form of the
// first insertion is what the sequences yield.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// errStopVisit ends a trie walk when the consumer of a sequence stops early.
var errStopVisit = errors.New("dictionary: stop visit")

// Dictionary is a case-insensitive set of words.
type Dictionary struct {
	trie  *patricia.Trie
	count int
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{trie: patricia.NewTrie()}
}

// Add inserts word. Blank words and words already present (ignoring case)
// are skipped; Add reports whether the word was new.
func (d *Dictionary) Add(word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	if !d.trie.Insert(patricia.Prefix(strings.ToLower(word)), word) {
		return false
	}
	d.count++
	return true
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return d.count }

// All yields every word.
func (d *Dictionary) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = d.trie.Visit(visitor(yield))
	}
}

// WithPrefix yields the words starting with prefix, ignoring case.
func (d *Dictionary) WithPrefix(prefix string) iter.Seq[string] {
	if prefix == "" {
		return d.All()
	}
	key := patricia.Prefix(strings.ToLower(prefix))
	return func(yield func(string) bool) {
		_ = d.trie.VisitSubtree(key, visitor(yield))
	}
}

func visitor(yield func(string) bool) patricia.VisitorFunc {
	return func(_ patricia.Prefix, item patricia.Item) error {
		word, ok := item.(string)
		if !ok {
			return nil
		}
		if !yield(word) {
			return errStopVisit
		}
		return nil
	}
}

// Load reads one word per line from r. Blank lines and lines starting with
// '#' are ignored.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		d.Add(text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list after line %d: %w", line, err)
	}
	return d, nil
}

// LoadFile loads the word list at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}
