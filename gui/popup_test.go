package gui_test

import (
	"testing"

	"github.com/go-theft-auto/dropdown/gui"
)

func TestMemorySingleOpenPopup(t *testing.T) {
	m := gui.NewMemory()
	a, b := gui.IDFrom("a"), gui.IDFrom("b")

	if m.IsPopupOpen(a) {
		t.Fatal("new memory has no open popup")
	}
	m.OpenPopup(a)
	if !m.IsPopupOpen(a) {
		t.Fatal("a should be open")
	}
	m.OpenPopup(b)
	if m.IsPopupOpen(a) || !m.IsPopupOpen(b) {
		t.Error("opening b should replace a")
	}
	m.ClosePopup(a)
	if !m.IsPopupOpen(b) {
		t.Error("closing a popup that isn't open must not close another")
	}
	m.ClosePopup(b)
	if m.OpenPopupID() != 0 {
		t.Error("b should be closed")
	}
}

// popupFrame draws an anchor text edit and a three-row popup below it.
// The popup spans y 16..58; rows sit at y 18, 34 and 50.
func popupFrame(id gui.ID, behavior gui.PopupCloseBehavior, shown *bool, clicked *string) func(ctx *gui.Context) {
	value := ""
	return func(ctx *gui.Context) {
		anchor := ctx.TextEdit(&value, gui.WithOpt(gui.OptStableID, id.With("edit")))
		*shown = ctx.PopupBelow(id, anchor.Response, behavior, func() {
			for _, item := range []string{"one", "two", "three"} {
				if ctx.Selectable(item, false).Clicked {
					*clicked = item
				}
			}
		})
	}
}

func TestPopupBelowCloseOnClick(t *testing.T) {
	memory := gui.NewMemory()
	ui := gui.New(&mockRenderer{}, gui.WithPopupMemory(memory))
	input := gui.NewInputState()
	id := gui.IDFrom("close-on-click")
	var shown bool
	var clicked string
	draw := popupFrame(id, gui.PopupCloseOnClick, &shown, &clicked)

	frame(t, ui, input, draw)
	if shown {
		t.Fatal("closed popup must not draw")
	}

	memory.OpenPopup(id)
	frame(t, ui, input, draw)
	if !shown {
		t.Fatal("open popup should draw")
	}

	input.Click(20, 36)
	frame(t, ui, input, draw)
	if clicked != "two" {
		t.Errorf("row click should reach the item before closing, got %q", clicked)
	}
	if memory.IsPopupOpen(id) {
		t.Error("click inside the popup closes it with PopupCloseOnClick")
	}
}

func TestPopupBelowCloseOnClickOutside(t *testing.T) {
	memory := gui.NewMemory()
	ui := gui.New(&mockRenderer{}, gui.WithPopupMemory(memory))
	input := gui.NewInputState()
	id := gui.IDFrom("close-outside")
	var shown bool
	var clicked string
	draw := popupFrame(id, gui.PopupCloseOnClickOutside, &shown, &clicked)

	memory.OpenPopup(id)
	frame(t, ui, input, draw)

	input.Click(20, 20)
	frame(t, ui, input, draw)
	if clicked != "one" || !memory.IsPopupOpen(id) {
		t.Errorf("click inside should keep popup open, clicked=%q open=%v", clicked, memory.IsPopupOpen(id))
	}

	input.Click(500, 500)
	frame(t, ui, input, draw)
	if memory.IsPopupOpen(id) {
		t.Error("click outside should close the popup")
	}
}

func TestPopupBelowIgnoreClicksClosesOnEscape(t *testing.T) {
	memory := gui.NewMemory()
	ui := gui.New(&mockRenderer{}, gui.WithPopupMemory(memory))
	input := gui.NewInputState()
	id := gui.IDFrom("ignore")
	var shown bool
	var clicked string
	draw := popupFrame(id, gui.PopupIgnoreClicks, &shown, &clicked)

	memory.OpenPopup(id)
	frame(t, ui, input, draw)

	input.Click(500, 500)
	frame(t, ui, input, draw)
	if !memory.IsPopupOpen(id) {
		t.Fatal("PopupIgnoreClicks must survive outside clicks")
	}

	input.PressKey(gui.KeyEscape)
	frame(t, ui, input, draw)
	if memory.IsPopupOpen(id) {
		t.Error("Escape always closes")
	}
}

func TestPopupOccludesWidgetsUnderneath(t *testing.T) {
	memory := gui.NewMemory()
	ui := gui.New(&mockRenderer{}, gui.WithPopupMemory(memory))
	input := gui.NewInputState()
	id := gui.IDFrom("occluder")

	var under gui.Response
	draw := func(ctx *gui.Context) {
		anchor := ctx.Button("anchor", gui.WithOpt(gui.OptWidth, float32(200)))
		under = ctx.Button("under")
		ctx.PopupBelow(id, anchor, gui.PopupIgnoreClicks, func() {
			ctx.Text("covering")
		})
	}

	memory.OpenPopup(id)
	frame(t, ui, input, draw)

	input.SetMousePos(10, 26)
	frame(t, ui, input, draw)
	if under.Hovered {
		t.Error("widget under an open popup must not be hovered")
	}
}
