//go:build !noaccents

package dropdown

import "github.com/mozillazg/go-unidecode"

// AccentFolding reports whether accent-insensitive matching is compiled in.
// Build with the noaccents tag to leave it out.
const AccentFolding = true

// foldAccents transliterates text to its closest plain ASCII spelling:
// "Zürich" becomes "Zurich", "Москва" becomes "Moskva" and "ﬁle" becomes
// "file".
func foldAccents(text string) string {
	if isASCII(text) {
		return text
	}
	return unidecode.Unidecode(text)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IgnoreAccentMarks sets whether matching transliterates both sides to plain
// ASCII first, so "cafe" finds "Café" and "moskva" finds "Москва".
// Off by default.
func (d DropDownBox) IgnoreAccentMarks(ignore bool) DropDownBox {
	d.ignoreAccentMarks = ignore
	return d
}
