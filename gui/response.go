package gui

// Response reports what happened to a widget this frame.
type Response struct {
	ID   ID
	Rect Rect

	Hovered bool
	Clicked bool

	// ClickedElsewhere is set when a mouse button was pressed this frame
	// outside Rect.
	ClickedElsewhere bool

	// Changed is set when the widget's value changed this frame.
	Changed bool

	GainedFocus bool
	LostFocus   bool
	HasFocus    bool
}

// MarkChanged flags the value as changed, for composite widgets whose value
// changed through a child.
func (r *Response) MarkChanged() {
	r.Changed = true
}

// interact computes the pointer part of a Response for a widget at rect.
func (ctx *Context) interact(id ID, rect Rect) Response {
	resp := Response{ID: id, Rect: rect}
	if ctx.Input == nil {
		return resp
	}
	resp.Hovered = ctx.isHovered(rect)
	resp.Clicked = resp.Hovered && ctx.Input.MouseClicked(MouseButtonLeft)
	resp.ClickedElsewhere = ctx.Input.AnyClick() && !rect.Contains(ctx.mousePos())
	if resp.Hovered {
		ctx.WantCaptureMouse = true
	}
	if resp.Clicked && guiVerbose() {
		guiLogger.Debug("click", "id", id, "rect", rect, "mouse", ctx.mousePos())
	}
	return resp
}
