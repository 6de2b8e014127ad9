package gui

// PopupCloseBehavior decides which clicks close a popup.
type PopupCloseBehavior int

const (
	// PopupCloseOnClick closes on any click outside the anchor widget,
	// including clicks on the popup's own contents.
	PopupCloseOnClick PopupCloseBehavior = iota
	// PopupCloseOnClickOutside closes on clicks outside both the anchor and
	// the popup.
	PopupCloseOnClickOutside
	// PopupIgnoreClicks never closes on clicks.
	PopupIgnoreClicks
)

func (b PopupCloseBehavior) String() string {
	switch b {
	case PopupCloseOnClick:
		return "close-on-click"
	case PopupCloseOnClickOutside:
		return "close-on-click-outside"
	case PopupIgnoreClicks:
		return "ignore-clicks"
	}
	return "unknown"
}

// PopupBelow draws contents in a popup directly below anchor, as wide as
// the anchor, while the popup id is open in the popup memory. It reports
// whether the popup was shown this frame.
//
// The popup is drawn on the foreground draw list and hides the widgets under
// it from the mouse on the following frame. Closing is decided after the
// contents ran, so a click on an item is seen by the item before the popup
// closes. Escape always closes.
func (ctx *Context) PopupBelow(id ID, anchor Response, behavior PopupCloseBehavior, contents func()) bool {
	if !ctx.IsPopupOpen(id) {
		return false
	}

	pad := ctx.style.PopupPadding
	x, y := anchor.Rect.X, anchor.Rect.Bottom()
	w := anchor.Rect.W

	savedList := ctx.DrawList
	savedCursor := ctx.cursor
	savedLayouts := ctx.layoutStack
	if ctx.ForegroundDrawList != nil {
		ctx.DrawList = ctx.ForegroundDrawList
	}
	ctx.overlayDepth++

	ctx.layoutStack = nil
	ctx.cursor = Vec2{X: x + pad, Y: y + pad}
	ctx.pushLayoutWith(&Layout{
		Type:   LayoutVertical,
		Width:  w - pad*2,
		Height: maxf(ctx.DisplaySize.Y-y-pad*2, ctx.lineHeight()),
	})

	contents()

	bounds := ctx.popLayout()
	rect := Rect{X: x, Y: y, W: w, H: bounds.H + pad*2}

	ctx.DrawList.InsertRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.PopupBgColor)
	if ctx.style.BorderSize > 0 {
		ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H,
			ctx.style.PopupBorderColor, ctx.style.BorderSize)
	}
	ctx.nextOverlayRects = append(ctx.nextOverlayRects, rect)
	if ctx.isHovered(rect) {
		ctx.WantCaptureMouse = true
	}

	ctx.overlayDepth--
	ctx.DrawList = savedList
	ctx.cursor = savedCursor
	ctx.layoutStack = savedLayouts

	if ctx.shouldClosePopup(anchor, rect, behavior) {
		guiLogger.Debug("popup dismissed", "id", id, "behavior", behavior)
		ctx.ClosePopup(id)
	}
	return true
}

func (ctx *Context) shouldClosePopup(anchor Response, popup Rect, behavior PopupCloseBehavior) bool {
	if ctx.Input == nil {
		return false
	}
	if ctx.Input.KeyPressed(KeyEscape) {
		return true
	}
	switch behavior {
	case PopupCloseOnClick:
		return anchor.ClickedElsewhere
	case PopupCloseOnClickOutside:
		return anchor.ClickedElsewhere && !popup.Contains(ctx.mousePos())
	}
	return false
}
