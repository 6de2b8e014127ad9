package dropdown

import (
	"unicode/utf8"

	"github.com/go-theft-auto/dropdown/gui"
)

// Show draws the field and, while it is open, the candidate popup.
//
// Focusing the field opens the popup. Clicking a candidate replaces the
// buffer with it and closes the popup; the returned response then reports
// Changed. Other clicks and Escape close the popup without a change.
func (d DropDownBox) Show(ctx *gui.Context) gui.Response {
	opts := []gui.Option{gui.WithOpt(gui.OptStableID, d.EditID())}
	if d.hintText != "" {
		opts = append(opts, gui.WithOpt(gui.OptHint, d.hintText))
	}
	if d.desiredWidth > 0 {
		opts = append(opts, gui.WithOpt(gui.OptWidth, d.desiredWidth))
	}

	edit := ctx.TextEdit(d.buf, opts...)
	resp := edit.Response

	if resp.GainedFocus {
		if d.selectOnFocus {
			edit.State.SelectAll(utf8.RuneCountInString(*d.buf))
			edit.Store(ctx)
		}
		ctx.OpenPopup(d.popupID)
		gui.Logger().Debug("dropdown opened", "popup", d.popupID, "query", *d.buf)
	}

	committed := false
	ctx.PopupBelow(d.popupID, resp, gui.PopupCloseOnClick, func() {
		ctx.ScrollArea(d.popupID.With("list"), d.maxHeight)(func() {
			committed = d.showCandidates(ctx)
		})
	})

	if committed {
		resp.MarkChanged()
	}
	return resp
}

// showCandidates drains the candidate sequence once, drawing every candidate
// that passes the filter. The first clicked candidate is committed; the rest
// of the sequence is still drawn. It reports whether a commit happened.
func (d DropDownBox) showCandidates(ctx *gui.Context) bool {
	if d.items == nil {
		return false
	}

	// The query is fixed before the loop so a commit can't change what
	// the remaining rows are matched against.
	keep := newFilter(*d.buf, d.filterByInput, d.ignoreAccentMarks)

	committed := false
	for text := range d.items {
		if !keep(text) {
			continue
		}
		if d.render(ctx, text).Clicked && !committed {
			committed = true
			*d.buf = text
			ctx.ClosePopup(d.popupID)
			gui.Logger().Debug("dropdown commit", "popup", d.popupID, "value", text)
		}
	}
	return committed
}
