package dropdown

import (
	"fmt"
	"iter"
)

// Items adapts a slice of string-like values to a candidate sequence.
func Items[S ~string](items []S) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range items {
			if !yield(string(item)) {
				return
			}
		}
	}
}

// Stringers adapts a slice of fmt.Stringer values to a candidate sequence.
// String is called lazily, once per item per frame.
func Stringers[T fmt.Stringer](items []T) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range items {
			if !yield(item.String()) {
				return
			}
		}
	}
}
