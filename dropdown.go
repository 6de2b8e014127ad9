package dropdown

import (
	"iter"

	"github.com/go-theft-auto/dropdown/gui"
)

// RenderFunc draws one candidate row and reports interaction with it.
// It is called once per candidate that survives filtering, in order.
type RenderFunc func(ctx *gui.Context, text string) gui.Response

// SelectableLabel is the stock RenderFunc: a full-width selectable row.
func SelectableLabel(ctx *gui.Context, text string) gui.Response {
	return ctx.Selectable(text, false)
}

// DropDownBox is a text field that opens a list of candidates below itself
// when focused. Clicking a candidate writes it into the buffer.
//
// A DropDownBox is built fresh every frame and consumed by Show:
//
//	dropdown.FromSlice(fruits, "fruit", &fruit, dropdown.SelectableLabel).
//	    HintText("pick a fruit").
//	    MaxHeight(120).
//	    Show(ctx)
//
// The buffer is borrowed for the call. The id source must be the same value
// every frame for the same widget.
type DropDownBox struct {
	buf     *string
	popupID gui.ID
	items   iter.Seq[string]
	render  RenderFunc

	hintText          string
	filterByInput     bool
	selectOnFocus     bool
	desiredWidth      float32
	maxHeight         float32
	ignoreAccentMarks bool
}

// New creates a DropDownBox over a single-pass candidate sequence.
// idSource is hashed into the popup's identity; buf is the text being edited.
// A nil render draws candidates with SelectableLabel.
func New[K comparable](items iter.Seq[string], idSource K, buf *string, render RenderFunc) DropDownBox {
	if render == nil {
		render = SelectableLabel
	}
	return DropDownBox{
		buf:           buf,
		popupID:       gui.IDFrom(idSource),
		items:         items,
		render:        render,
		filterByInput: true,
	}
}

// FromSlice creates a DropDownBox over a slice of strings.
func FromSlice[K comparable, S ~string](items []S, idSource K, buf *string, render RenderFunc) DropDownBox {
	return New(Items(items), idSource, buf, render)
}

// HintText sets the text shown in the empty field.
func (d DropDownBox) HintText(hint string) DropDownBox {
	d.hintText = hint
	return d
}

// FilterByInput sets whether candidates are filtered by the buffer.
// On by default.
func (d DropDownBox) FilterByInput(filter bool) DropDownBox {
	d.filterByInput = filter
	return d
}

// SelectOnFocus sets whether focusing the field selects its whole text.
// Off by default.
func (d DropDownBox) SelectOnFocus(selectOnFocus bool) DropDownBox {
	d.selectOnFocus = selectOnFocus
	return d
}

// DesiredWidth sets the field width. Zero or less uses the style default.
func (d DropDownBox) DesiredWidth(width float32) DropDownBox {
	d.desiredWidth = width
	return d
}

// MaxHeight caps the height of the candidate list. Zero or less leaves it
// unconstrained up to the bottom of the display.
func (d DropDownBox) MaxHeight(height float32) DropDownBox {
	d.maxHeight = height
	return d
}

// PopupID returns the identity the popup is tracked under.
func (d DropDownBox) PopupID() gui.ID {
	return d.popupID
}

// EditID returns the ID of the text field, derived from the popup ID so it
// is stable across frames.
func (d DropDownBox) EditID() gui.ID {
	return d.popupID.With("edit")
}
