package gui

// scrollWheelStep is the distance one wheel notch scrolls, in pixels.
const scrollWheelStep = 20

// ScrollArea draws its contents in a vertically scrolling viewport.
//
// The viewport grows with the content measured on the previous frame up to a
// limit: maxHeight when positive, and never past the bottom of the display.
// Rows scrolled out of view are clipped and do not react to the mouse.
//
//	ctx.ScrollArea(gui.IDFrom("log"), 120)(func() {
//	    for _, line := range lines {
//	        ctx.Text(line)
//	    }
//	})
func (ctx *Context) ScrollArea(id ID, maxHeight float32) func(func()) {
	return func(contents func()) {
		state := GetState(ctx, id, ScrollAreaState{})

		pos := ctx.ItemPos()
		w := ctx.currentLayoutWidth()

		limit := maxf(ctx.DisplaySize.Y-pos.Y, ctx.lineHeight())
		if maxHeight > 0 {
			limit = minf(maxHeight, limit)
		}
		viewportH := limit
		if state.Measured {
			viewportH = minf(state.ContentHeight, limit)
		}

		overflow := state.ContentHeight > viewportH
		contentW := w
		if overflow {
			contentW -= ctx.style.ScrollbarSize
		}

		viewport := Rect{X: pos.X, Y: pos.Y, W: w, H: viewportH}

		if ctx.Input != nil && ctx.Input.MouseWheelY != 0 && ctx.isHovered(viewport) {
			state.ScrollY -= ctx.Input.MouseWheelY * scrollWheelStep
		}
		state.ScrollY = clampf(state.ScrollY, 0, maxf(0, state.ContentHeight-viewportH))

		ctx.DrawList.PushClipRect(viewport.X, viewport.Y, viewport.Right(), viewport.Bottom())
		ctx.pushViewport(viewport)

		// The area owns its cursor; the parent only sees the viewport.
		saved := ctx.layoutStack
		ctx.layoutStack = nil
		ctx.cursor = Vec2{X: pos.X, Y: pos.Y - state.ScrollY}
		ctx.pushLayoutWith(&Layout{
			Type:   LayoutVertical,
			Width:  contentW,
			Height: viewportH,
			Gap:    0,
		})

		contents()

		bounds := ctx.popLayout()
		ctx.layoutStack = saved

		ctx.popViewport()
		ctx.DrawList.PopClipRect()

		state.ContentHeight = bounds.H
		state.Measured = true
		SetState(ctx, id, state)

		if overflow {
			ctx.drawScrollbar(viewport, state)
		}

		ctx.cursor = pos
		ctx.AdvanceCursor(Vec2{X: w, Y: viewportH})
		ctx.cursor.X = pos.X
	}
}

func (ctx *Context) drawScrollbar(viewport Rect, state ScrollAreaState) {
	size := ctx.style.ScrollbarSize
	x := viewport.Right() - size
	ctx.DrawList.AddRect(x, viewport.Y, size, viewport.H, ctx.style.ScrollbarBgColor)

	maxScroll := state.ContentHeight - viewport.H
	if maxScroll <= 0 {
		return
	}
	grabH := maxf(size, viewport.H*viewport.H/state.ContentHeight)
	grabY := viewport.Y + (state.ScrollY/maxScroll)*(viewport.H-grabH)
	ctx.DrawList.AddRect(x, grabY, size, grabH, ctx.style.ScrollbarGrabColor)
}
