package gui_test

import (
	"testing"

	"github.com/go-theft-auto/dropdown/gui"
)

var editID = gui.IDFrom("edit")

func textEdit(value *string, out *gui.TextEditOutput) func(ctx *gui.Context) {
	return func(ctx *gui.Context) {
		*out = ctx.TextEdit(value, gui.WithOpt(gui.OptStableID, editID))
	}
}

func TestTextEditFocusLifecycle(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := ""
	var out gui.TextEditOutput

	frame(t, ui, input, textEdit(&value, &out))
	if out.HasFocus || out.GainedFocus {
		t.Fatal("text edit must start unfocused")
	}

	input.Click(10, 8)
	frame(t, ui, input, textEdit(&value, &out))
	if !out.GainedFocus || !out.HasFocus {
		t.Fatalf("click should focus, got %+v", out.Response)
	}

	frame(t, ui, input, textEdit(&value, &out))
	if out.GainedFocus {
		t.Error("GainedFocus must only fire on the transition frame")
	}
	if !out.HasFocus {
		t.Error("focus should persist across frames")
	}

	input.Click(500, 500)
	frame(t, ui, input, textEdit(&value, &out))
	if !out.LostFocus || out.HasFocus {
		t.Errorf("click elsewhere should unfocus, got %+v", out.Response)
	}
}

func TestTextEditTyping(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := ""
	var out gui.TextEditOutput

	input.Click(10, 8)
	frame(t, ui, input, textEdit(&value, &out))

	input.AddInputChar('h')
	input.AddInputChar('é')
	frame(t, ui, input, textEdit(&value, &out))
	if value != "hé" || !out.Changed {
		t.Fatalf("value = %q changed = %v", value, out.Changed)
	}
	if out.State.CursorPos != 2 {
		t.Errorf("cursor should count runes, got %d", out.State.CursorPos)
	}

	input.PressKey(gui.KeyBackspace)
	frame(t, ui, input, textEdit(&value, &out))
	if value != "h" {
		t.Errorf("backspace should remove one rune, value = %q", value)
	}

	input.ModCtrl = true
	input.PressKey(gui.KeyZ)
	frame(t, ui, input, textEdit(&value, &out))
	input.ModCtrl = false
	if value != "hé" {
		t.Errorf("undo should restore %q, got %q", "hé", value)
	}

	input.PressKey(gui.KeyEnter)
	frame(t, ui, input, textEdit(&value, &out))
	if out.HasFocus || !out.LostFocus {
		t.Error("Enter should give up focus")
	}
}

func TestTextEditSelectAllThenType(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := "hello"
	var out gui.TextEditOutput

	input.Click(10, 8)
	frame(t, ui, input, textEdit(&value, &out))

	input.ModCtrl = true
	input.PressKey(gui.KeyA)
	frame(t, ui, input, textEdit(&value, &out))
	input.ModCtrl = false

	if start, end := out.State.GetSelectedRange(); start != 0 || end != 5 {
		t.Fatalf("selection = [%d, %d), want [0, 5)", start, end)
	}

	input.AddInputChar('x')
	frame(t, ui, input, textEdit(&value, &out))
	if value != "x" {
		t.Errorf("typing over a selection should replace it, value = %q", value)
	}
}

func TestTextEditStoreAppliesOnNextFrame(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := "hello"
	var out gui.TextEditOutput

	frame(t, ui, input, func(ctx *gui.Context) {
		out = ctx.TextEdit(&value, gui.WithOpt(gui.OptStableID, editID))
		out.State.SelectAll(5)
		out.Store(ctx)
	})

	state := gui.GetState(ui.Context(), editID, gui.InputTextState{})
	if start, end := state.GetSelectedRange(); start != 0 || end != 5 {
		t.Errorf("stored selection = [%d, %d), want [0, 5)", start, end)
	}
}

func TestTextEditClampsStaleCursor(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := "a long value"
	var out gui.TextEditOutput

	frame(t, ui, input, textEdit(&value, &out))

	value = "ab"
	frame(t, ui, input, textEdit(&value, &out))
	if out.State.CursorPos > 2 {
		t.Errorf("cursor %d past end of %q", out.State.CursorPos, value)
	}
}

func TestClipboardCutPaste(t *testing.T) {
	clip := &memClipboard{}
	gui.SetClipboardProvider(clip)
	defer gui.SetClipboardProvider(nil)

	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	value := "abc"
	var out gui.TextEditOutput

	input.Click(10, 8)
	frame(t, ui, input, textEdit(&value, &out))

	input.ModCtrl = true
	input.PressKey(gui.KeyA)
	frame(t, ui, input, textEdit(&value, &out))
	input.PressKey(gui.KeyX)
	frame(t, ui, input, textEdit(&value, &out))
	if value != "" || clip.text != "abc" {
		t.Fatalf("cut: value = %q clipboard = %q", value, clip.text)
	}

	input.PressKey(gui.KeyV)
	frame(t, ui, input, textEdit(&value, &out))
	input.ModCtrl = false
	if value != "abc" {
		t.Errorf("paste: value = %q", value)
	}
}

type memClipboard struct{ text string }

func (c *memClipboard) GetText() string     { return c.text }
func (c *memClipboard) SetText(text string) { c.text = text }
