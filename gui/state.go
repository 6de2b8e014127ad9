package gui

// StateStore persists widget state between frames.
// The state lives outside the widgets, so it can be inspected and swapped.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
}

// MapStateStore is an in-memory StateStore.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// GetState retrieves typed state from the context.
// Returns defaultVal if the state doesn't exist or has the wrong type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state in the context.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// InputTextState tracks the editing state of a text edit.
// All positions are in runes, not bytes.
type InputTextState struct {
	CursorPos int

	// SelectionStart is the anchor, SelectionEnd follows the cursor.
	// -1 means no selection.
	SelectionStart int
	SelectionEnd   int

	// Horizontal scroll for text wider than the field.
	ScrollOffset float32

	UndoStack []string
	UndoIndex int
}

// NewInputTextState returns a state with the cursor at pos and no selection.
func NewInputTextState(pos int) InputTextState {
	return InputTextState{CursorPos: pos, SelectionStart: -1, SelectionEnd: -1}
}

// HasSelection returns true if there's an active text selection.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// GetSelectedRange returns the selection as (start, end) with start <= end.
// Returns (-1, -1) if nothing is selected.
func (s *InputTextState) GetSelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

// ClearSelection removes the selection.
func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

// SelectAll selects textLen runes and moves the cursor to the end.
func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// clampTo keeps cursor and selection inside a text of n runes. The buffer
// can change outside the widget between frames, e.g. when a dropdown commits.
func (s *InputTextState) clampTo(n int) {
	if s.CursorPos > n {
		s.CursorPos = n
	}
	if s.CursorPos < 0 {
		s.CursorPos = 0
	}
	if s.SelectionStart > n {
		s.SelectionStart = n
	}
	if s.SelectionEnd > n {
		s.SelectionEnd = n
	}
}

// PushUndo saves text to the undo stack. Call it before changing the text.
func (s *InputTextState) PushUndo(text string) {
	const maxUndoSize = 50

	// Drop redo history past the current position.
	if s.UndoIndex < len(s.UndoStack) {
		s.UndoStack = s.UndoStack[:s.UndoIndex]
	}

	if len(s.UndoStack) > 0 && s.UndoStack[len(s.UndoStack)-1] == text {
		return
	}

	s.UndoStack = append(s.UndoStack, text)
	s.UndoIndex = len(s.UndoStack)

	if len(s.UndoStack) > maxUndoSize {
		s.UndoStack = s.UndoStack[1:]
		s.UndoIndex--
	}
}

// Undo returns the previous text, or false if there is nothing to undo.
func (s *InputTextState) Undo(currentText string) (string, bool) {
	if s.UndoIndex == len(s.UndoStack) && len(s.UndoStack) > 0 {
		if s.UndoStack[len(s.UndoStack)-1] != currentText {
			s.UndoStack = append(s.UndoStack, currentText)
		}
	}

	if s.UndoIndex > 0 {
		s.UndoIndex--
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// Redo returns the next text, or false if there is nothing to redo.
func (s *InputTextState) Redo() (string, bool) {
	if s.UndoIndex < len(s.UndoStack)-1 {
		s.UndoIndex++
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// ScrollAreaState tracks a vertical scroll area.
type ScrollAreaState struct {
	ScrollY       float32
	ContentHeight float32 // measured on the previous frame
	Measured      bool
}
