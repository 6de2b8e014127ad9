package gui

import (
	"hash/fnv"
	"hash/maphash"
)

// ID uniquely identifies a widget for retained state and popup tracking.
type ID uint64

// idSeed keys IDFrom. It is fixed for the lifetime of the process, which is
// all an immediate-mode frame loop needs.
var idSeed = maphash.MakeSeed()

// IDFrom derives an ID from any comparable value.
// Unlike GetID it ignores call order: the same source
// always yields the same ID, so it is safe to call every frame for a
// widget whose position in the frame may change.
//
//	popupID := gui.IDFrom("country-picker")
//	rowID := gui.IDFrom(struct{ table string; row int }{"users", 4})
func IDFrom[T comparable](source T) ID {
	id := ID(maphash.Comparable(idSeed, source))
	if id == 0 {
		// 0 means "no widget" throughout the package.
		id = 1
	}
	return id
}

// With derives a child ID, e.g. the text edit owned by a dropdown.
func (id ID) With(label string) ID {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(uint64(id) >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// GetID generates an ID from a label. An auto-incrementing counter
// differentiates the same label used in a loop, so the result depends on
// call order within the frame.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	h := fnv.New64a()
	h.Write([]byte(label))

	// counter (16 bits) + label (48 bits)
	return ID(uint64(ctx.idCounter)<<48 | h.Sum64()&0xFFFFFFFFFFFF)
}
