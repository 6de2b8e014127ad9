package dropdown

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize returns the form of text used for matching: lowercased, and
// transliterated to plain ASCII first when ignoreAccentMarks is set and
// accent folding is compiled in (see AccentFolding).
//
// Lowercasing is language-neutral but context aware: a word-final capital
// sigma becomes "ς", as in "ΟΔΟΣ" to "οδος".
func Normalize(text string, ignoreAccentMarks bool) string {
	return newNormalizer(ignoreAccentMarks)(text)
}

// newNormalizer returns a Normalize bound to one Caser. The result must not
// be shared between goroutines.
func newNormalizer(ignoreAccentMarks bool) func(string) string {
	lower := cases.Lower(language.Und)
	fold := AccentFolding && ignoreAccentMarks
	return func(text string) string {
		if fold {
			text = foldAccents(text)
		}
		return lower.String(text)
	}
}

// Matches reports whether candidate is shown for query. Everything matches
// when filtering is off or the query is empty; otherwise the normalized
// candidate must contain the normalized query.
func Matches(candidate, query string, filter, ignoreAccentMarks bool) bool {
	return newFilter(query, filter, ignoreAccentMarks)(candidate)
}

func newFilter(query string, filter, ignoreAccentMarks bool) func(string) bool {
	if !filter || query == "" {
		return func(string) bool { return true }
	}
	normalize := newNormalizer(ignoreAccentMarks)
	needle := normalize(query)
	return func(candidate string) bool {
		return strings.Contains(normalize(candidate), needle)
	}
}
