package gui

import "unicode/utf8"

// TextEditOutput is what TextEdit returns: the response plus the editing
// state after this frame, which callers may adjust and Store.
type TextEditOutput struct {
	Response
	State InputTextState
}

// Store saves State as the text edit's retained state so changes made by the
// caller take effect on the next frame.
func (o TextEditOutput) Store(ctx *Context) {
	SetState(ctx, o.ID, o.State)
}

// TextEdit draws a single-line text field editing *value.
//
// Clicking the field focuses it; clicking anywhere else, Escape or Enter
// gives focus up. While focused it handles typing, cursor movement,
// selection, clipboard (Ctrl+C/X/V) and undo/redo (Ctrl+Z/Y).
// OptHint draws placeholder text while the value is empty.
func (ctx *Context) TextEdit(value *string, opts ...Option) TextEditOutput {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(o, "textedit")

	runes := []rune(*value)
	state := GetState(ctx, id, NewInputTextState(len(runes)))
	state.clampTo(len(runes))

	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = ctx.style.DefaultInputWidth
	}
	h := ctx.lineHeight() + ctx.style.InputPadding*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	resp := ctx.interact(id, rect)
	disabled := GetOpt(o, OptDisabled)
	if disabled {
		resp.Hovered = false
		resp.Clicked = false
	}

	textX := pos.X + ctx.style.InputPadding
	textY := pos.Y + ctx.style.InputPadding
	maxWidth := w - ctx.style.InputPadding*2

	wasFocused := ctx.IsFocused(id)
	switch {
	case resp.Clicked:
		ctx.SetFocused(id)
		state.CursorPos = ctx.cursorFromX(runes, ctx.Input.MouseX-textX+state.ScrollOffset)
		state.ClearSelection()
	case wasFocused && (resp.ClickedElsewhere || disabled):
		ctx.ClearFocus()
	}

	if ctx.IsFocused(id) && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		changed, done := ctx.processTextEditKeyboard(value, &state, &runes)
		resp.Changed = changed
		if done {
			ctx.ClearFocus()
		}
	}

	resp.HasFocus = ctx.IsFocused(id)
	resp.GainedFocus = !wasFocused && resp.HasFocus
	resp.LostFocus = wasFocused && !resp.HasFocus

	// Keep the cursor in view.
	cursorTextWidth := float32(state.CursorPos) * ctx.charWidth()
	if cursorTextWidth-state.ScrollOffset > maxWidth {
		state.ScrollOffset = cursorTextWidth - maxWidth
	}
	if cursorTextWidth < state.ScrollOffset {
		state.ScrollOffset = cursorTextWidth
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}

	bgColor := ctx.style.InputBgColor
	borderColor := ctx.style.InputBorderColor
	if resp.HasFocus {
		bgColor = ctx.style.InputFocusedBgColor
		borderColor = ctx.style.FocusColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, borderColor, 1)

	ctx.DrawList.PushClipRect(textX, pos.Y, textX+maxWidth, pos.Y+h)
	if resp.HasFocus && state.HasSelection() {
		selStart, selEnd := state.GetSelectedRange()
		x0 := float32(selStart)*ctx.charWidth() - state.ScrollOffset
		x1 := float32(selEnd)*ctx.charWidth() - state.ScrollOffset
		ctx.DrawList.AddRect(textX+x0, pos.Y+2, x1-x0, h-4, ctx.style.SelectionBgColor)
	}
	switch {
	case *value != "":
		textColor := ctx.style.TextColor
		if disabled {
			textColor = ctx.style.TextDisabledColor
		}
		ctx.AddText(textX-state.ScrollOffset, textY, *value, textColor)
	case GetOpt(o, OptHint) != "":
		ctx.AddText(textX, textY, GetOpt(o, OptHint), ctx.style.HintColor)
	}
	ctx.DrawList.PopClipRect()

	if resp.HasFocus {
		cursorX := textX + cursorTextWidth - state.ScrollOffset
		ctx.DrawList.AddVLine(cursorX, pos.Y+2, pos.Y+h-2, ctx.style.CursorColor, 1)
	}

	SetState(ctx, id, state)
	ctx.AdvanceCursor(Vec2{X: w, Y: h})

	return TextEditOutput{Response: resp, State: state}
}

// cursorFromX returns the rune offset closest to x pixels into the text.
func (ctx *Context) cursorFromX(runes []rune, x float32) int {
	cw := ctx.charWidth()
	if cw <= 0 || x <= 0 {
		return 0
	}
	pos := int(x/cw + 0.5)
	return min(pos, len(runes))
}

// processTextEditKeyboard applies this frame's keyboard input to the text.
// changed reports an edit; done reports Escape or Enter.
func (ctx *Context) processTextEditKeyboard(value *string, state *InputTextState, runes *[]rune) (changed, done bool) {
	input := ctx.Input
	textLen := len(*runes)

	setText := func(rs []rune) {
		*runes = rs
		*value = string(rs)
		changed = true
	}

	deleteSelection := func() bool {
		if !state.HasSelection() {
			return false
		}
		start, end := state.GetSelectedRange()
		state.PushUndo(*value)
		setText(append((*runes)[:start:start], (*runes)[end:]...))
		state.CursorPos = start
		state.ClearSelection()
		return true
	}

	// extendSelection moves the cursor to pos, growing the selection from
	// the old cursor when shift is held.
	extendSelection := func(pos int) {
		if input.ModShift {
			if !state.HasSelection() {
				state.SelectionStart = state.CursorPos
			}
			state.SelectionEnd = pos
		} else {
			state.ClearSelection()
		}
		state.CursorPos = pos
	}

	if input.ModCtrl {
		switch {
		case input.KeyPressed(KeyA):
			state.SelectAll(textLen)
			return false, false
		case input.KeyPressed(KeyC):
			if start, end := state.GetSelectedRange(); start >= 0 {
				ClipboardSetText(string((*runes)[start:end]))
			}
			return false, false
		case input.KeyPressed(KeyX):
			if start, end := state.GetSelectedRange(); start >= 0 {
				ClipboardSetText(string((*runes)[start:end]))
				deleteSelection()
			}
			return changed, false
		case input.KeyPressed(KeyV):
			if clip := ClipboardGetText(); clip != "" {
				deleteSelection()
				state.PushUndo(*value)
				ins := []rune(clip)
				rs := make([]rune, 0, len(*runes)+len(ins))
				rs = append(rs, (*runes)[:state.CursorPos]...)
				rs = append(rs, ins...)
				rs = append(rs, (*runes)[state.CursorPos:]...)
				setText(rs)
				state.CursorPos += len(ins)
			}
			return changed, false
		case input.KeyPressed(KeyZ) && !input.ModShift:
			if undone, ok := state.Undo(*value); ok {
				setText([]rune(undone))
				state.CursorPos = len(*runes)
				state.ClearSelection()
			}
			return changed, false
		case input.KeyPressed(KeyY), input.KeyPressed(KeyZ):
			if redone, ok := state.Redo(); ok {
				setText([]rune(redone))
				state.CursorPos = len(*runes)
				state.ClearSelection()
			}
			return changed, false
		}
	}

	if input.KeyRepeated(KeyLeft) && state.CursorPos > 0 {
		pos := state.CursorPos - 1
		if input.ModCtrl {
			pos = findWordBoundaryLeft(*runes, state.CursorPos)
		}
		extendSelection(pos)
	}
	if input.KeyRepeated(KeyRight) && state.CursorPos < textLen {
		pos := state.CursorPos + 1
		if input.ModCtrl {
			pos = findWordBoundaryRight(*runes, state.CursorPos)
		}
		extendSelection(pos)
	}
	if input.KeyPressed(KeyHome) {
		extendSelection(0)
	}
	if input.KeyPressed(KeyEnd) {
		extendSelection(textLen)
	}

	if input.KeyRepeated(KeyBackspace) {
		if !deleteSelection() && state.CursorPos > 0 {
			state.PushUndo(*value)
			setText(append((*runes)[:state.CursorPos-1:state.CursorPos-1], (*runes)[state.CursorPos:]...))
			state.CursorPos--
		}
	}
	if input.KeyRepeated(KeyDelete) {
		if !deleteSelection() && state.CursorPos < len(*runes) {
			state.PushUndo(*value)
			setText(append((*runes)[:state.CursorPos:state.CursorPos], (*runes)[state.CursorPos+1:]...))
		}
	}

	if input.KeyPressed(KeyEscape) || input.KeyPressed(KeyEnter) {
		return changed, true
	}

	for _, ch := range input.InputChars {
		if ch < 32 || !utf8.ValidRune(ch) {
			continue
		}
		deleteSelection()
		state.PushUndo(*value)
		rs := make([]rune, 0, len(*runes)+1)
		rs = append(rs, (*runes)[:state.CursorPos]...)
		rs = append(rs, ch)
		rs = append(rs, (*runes)[state.CursorPos:]...)
		setText(rs)
		state.CursorPos++
	}

	return changed, false
}

// findWordBoundaryLeft finds the start of the word to the left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight finds the end of the word to the right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
