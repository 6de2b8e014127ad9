//go:build !noaccents

package main

import "github.com/go-theft-auto/dropdown"

func withAccentFolding(box dropdown.DropDownBox, on bool) dropdown.DropDownBox {
	return box.IgnoreAccentMarks(on)
}
