package gui

// PopupMemory records which popup is open. It outlives frames: a popup opened
// on one frame stays open on the next until something closes it.
type PopupMemory interface {
	OpenPopup(id ID)
	ClosePopup(id ID)
	IsPopupOpen(id ID) bool
}

// Memory is the default PopupMemory. At most one popup is open at a time;
// opening another one replaces it.
type Memory struct {
	open ID
}

// NewMemory returns a Memory with no open popup.
func NewMemory() *Memory {
	return &Memory{}
}

// OpenPopup marks id as the open popup.
func (m *Memory) OpenPopup(id ID) {
	if m.open != id {
		guiLogger.Debug("popup opened", "id", id, "replaced", m.open)
	}
	m.open = id
}

// ClosePopup closes id if it is the open popup. Closing a popup that is not
// open does nothing.
func (m *Memory) ClosePopup(id ID) {
	if m.open == id && id != 0 {
		guiLogger.Debug("popup closed", "id", id)
		m.open = 0
	}
}

// IsPopupOpen reports whether id is the open popup.
func (m *Memory) IsPopupOpen(id ID) bool {
	return id != 0 && m.open == id
}

// OpenPopupID returns the open popup, or 0.
func (m *Memory) OpenPopupID() ID {
	return m.open
}

// OpenPopup opens the popup id in the context's popup memory.
func (ctx *Context) OpenPopup(id ID) {
	ctx.memory.OpenPopup(id)
}

// ClosePopup closes the popup id.
func (ctx *Context) ClosePopup(id ID) {
	ctx.memory.ClosePopup(id)
}

// IsPopupOpen reports whether the popup id is open.
func (ctx *Context) IsPopupOpen(id ID) bool {
	return ctx.memory.IsPopupOpen(id)
}

// PopupMemory returns the memory backing OpenPopup and friends.
func (ctx *Context) PopupMemory() PopupMemory {
	return ctx.memory
}
