package gui

import "unicode/utf8"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context; widgets are methods on it.
type Context struct {
	DrawList           *DrawList
	ForegroundDrawList *DrawList // popups, drawn on top of DrawList

	style Style

	cursor      Vec2
	layoutStack []*Layout

	// Input is read-only during the frame.
	Input *InputState

	// Persisted between frames.
	stateStore StateStore
	memory     PopupMemory

	idCounter uint32

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// Widget with keyboard focus. Persists across frames.
	focusedID ID

	FontTextureID uint32

	// Output flags telling the application whether the GUI consumed input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	// Per-frame text measurement cache.
	textMeasureCache map[string]Vec2

	// Visible rectangles of the scroll areas being drawn, innermost last.
	// Items clipped away by a scroll area must not react to the mouse.
	viewportStack []Rect

	// Popup rectangles: overlayRects were drawn last frame and occlude the
	// widgets underneath; nextOverlayRects are collected this frame.
	overlayRects     []Rect
	nextOverlayRects []Rect
	overlayDepth     int
}

// NewContext creates a context with the default style and an in-memory
// popup memory. GUI.Begin replaces both with the GUI's own.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		layoutStack:      make([]*Layout, 0, 16),
		stateStore:       make(MapStateStore),
		memory:           NewMemory(),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
// Focus and popup memory carry over; everything else starts fresh.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = ctx.focusedID != 0

	clear(ctx.textMeasureCache)
	ctx.viewportStack = ctx.viewportStack[:0]

	ctx.overlayRects, ctx.nextOverlayRects = ctx.nextOverlayRects, ctx.overlayRects[:0]
	ctx.overlayDepth = 0
}

func (ctx *Context) mousePos() Vec2 {
	if ctx.Input == nil {
		return Vec2{-1, -1}
	}
	return Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
}

// isHovered returns true if rect is under the mouse and not hidden by a
// scroll area's clipping or by a popup drawn over it.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.mousePos()
	if !rect.Contains(p) {
		return false
	}
	if n := len(ctx.viewportStack); n > 0 && !ctx.viewportStack[n-1].Contains(p) {
		return false
	}
	if ctx.overlayDepth == 0 {
		for _, r := range ctx.overlayRects {
			if r.Contains(p) {
				return false
			}
		}
	}
	return true
}

// SetFocused gives keyboard focus to id.
func (ctx *Context) SetFocused(id ID) {
	if ctx.focusedID != id && guiVerbose() {
		guiLogger.Debug("focus moved", "from", ctx.focusedID, "to", id)
	}
	ctx.focusedID = id
}

// IsFocused returns true if the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.SetFocused(0)
}

// GetCursorPos returns the position of the next widget.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// charWidth is the advance of one glyph of the monospace font.
func (ctx *Context) charWidth() float32 {
	return ctx.style.CharWidth * ctx.style.FontScale
}

// MeasureText returns the size of rendered text.
// Results are cached for the frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	result := Vec2{
		X: float32(utf8.RuneCountInString(text)) * ctx.charWidth(),
		Y: ctx.lineHeight(),
	}
	ctx.textMeasureCache[text] = result
	return result
}

// AddText draws text with the current style onto the active draw list.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text onto a specific draw list.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// currentLayoutWidth returns the width available to items in the current
// layout, or the display width outside any layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Width - layout.Padding*2
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

func (ctx *Context) currentLayoutHeight() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Height - layout.Padding*2
	}
	return ctx.DisplaySize.Y - ctx.cursor.Y
}

func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// beginItem applies the layout gap before an item (not before the first).
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	gap := layout.Gap
	if gap == 0 {
		gap = ctx.style.ItemSpacing
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += gap
	} else {
		ctx.cursor.X += gap
	}
}

// ItemPos returns the position for the next widget with gap applied.
// Widgets call this before drawing.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor past an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}
	layout.ItemCount++
}

func (ctx *Context) pushViewport(r Rect) {
	if n := len(ctx.viewportStack); n > 0 {
		r = r.Intersect(ctx.viewportStack[n-1])
	}
	ctx.viewportStack = append(ctx.viewportStack, r)
}

func (ctx *Context) popViewport() {
	if n := len(ctx.viewportStack); n > 0 {
		ctx.viewportStack = ctx.viewportStack[:n-1]
	}
}

// IsInsideViewport reports whether a row spanning [y, y+h) is at least
// partly visible in the innermost scroll area. Outside any scroll area
// everything is visible.
func (ctx *Context) IsInsideViewport(y, h float32) bool {
	n := len(ctx.viewportStack)
	if n == 0 {
		return true
	}
	vp := ctx.viewportStack[n-1]
	return y+h > vp.Y && y < vp.Bottom()
}
