package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dropdown/gui"
)

// GLFWInputAdapter collects GLFW window events into a gui.InputState.
type GLFWInputAdapter struct {
	window   *glfw.Window
	input    *gui.InputState
	lastTime float64
}

// NewGLFWInputAdapter installs the window callbacks. It replaces any key,
// char, mouse button, scroll and cursor callbacks already set.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window:   window,
		input:    gui.NewInputState(),
		lastTime: glfw.GetTime(),
	}
	window.SetKeyCallback(a.onKey)
	window.SetCharCallback(a.onChar)
	window.SetMouseButtonCallback(a.onMouseButton)
	window.SetScrollCallback(a.onScroll)
	window.SetCursorPosCallback(a.onCursorPos)
	return a
}

// NewFrame clears the previous frame's events and returns the time since the
// last call. Call it before glfw.PollEvents.
func (a *GLFWInputAdapter) NewFrame() float32 {
	a.input.Reset()

	now := glfw.GetTime()
	dt := float32(now - a.lastTime)
	a.lastTime = now
	return dt
}

// Update samples the cursor and modifiers after events were polled and
// returns the input for this frame.
func (a *GLFWInputAdapter) Update(dt float32) *gui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.held(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.held(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.held(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = a.held(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// Input returns the input state being filled.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) held(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keyMap[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) onChar(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mouseButtonMap[button]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) onScroll(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) onCursorPos(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

var keyMap = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyKPEnter:   gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,
	glfw.KeyA:         gui.KeyA,
	glfw.KeyC:         gui.KeyC,
	glfw.KeyV:         gui.KeyV,
	glfw.KeyX:         gui.KeyX,
	glfw.KeyY:         gui.KeyY,
	glfw.KeyZ:         gui.KeyZ,
}

var mouseButtonMap = map[glfw.MouseButton]gui.MouseButton{
	glfw.MouseButtonLeft:   gui.MouseButtonLeft,
	glfw.MouseButtonRight:  gui.MouseButtonRight,
	glfw.MouseButtonMiddle: gui.MouseButtonMiddle,
}

// GLFWClipboard is a gui.ClipboardProvider backed by the system clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard returns a clipboard bound to window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText implements gui.ClipboardProvider.
func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText implements gui.ClipboardProvider.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
