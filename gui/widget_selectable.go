package gui

// Button draws a button sized to its label.
func (ctx *Context) Button(label string, opts ...Option) Response {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(o, label)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	resp := ctx.interact(id, rect)

	disabled := GetOpt(o, OptDisabled)
	if disabled {
		resp.Hovered = false
		resp.Clicked = false
	}

	bgColor := ctx.style.ButtonColor
	switch {
	case resp.Hovered && ctx.Input != nil && ctx.Input.MouseDown(MouseButtonLeft):
		bgColor = ctx.style.ButtonActiveColor
	case resp.Hovered:
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	ctx.AdvanceCursor(size)
	return resp
}

// Selectable draws a row spanning the layout width that highlights on hover
// and when selected.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) Response {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(o, label)

	pad := ctx.style.ItemSpacing
	w := ctx.currentLayoutWidth()
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	if minW := ctx.MeasureText(label).X + pad*2; w < minW {
		w = minW
	}
	h := ctx.lineHeight() + pad

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	resp := ctx.interact(id, rect)
	// Rows scrolled out of a scroll area stay inert.
	if !ctx.IsInsideViewport(pos.Y, h) {
		resp.Hovered = false
		resp.Clicked = false
	}

	disabled := GetOpt(o, OptDisabled)
	if disabled {
		resp.Hovered = false
		resp.Clicked = false
	}

	switch {
	case selected:
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.SelectedBgColor)
	case resp.Hovered:
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.HoveredBgColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+pad, pos.Y+pad/2, label, textColor)

	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return resp
}
