//go:build noaccents

package main

import "github.com/go-theft-auto/dropdown"

func withAccentFolding(box dropdown.DropDownBox, _ bool) dropdown.DropDownBox {
	return box
}
