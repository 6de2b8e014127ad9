//go:build noaccents

package dropdown

// AccentFolding reports whether accent-insensitive matching is compiled in.
const AccentFolding = false

func foldAccents(text string) string { return text }
