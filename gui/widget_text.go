package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// Label draws text and reports pointer interaction with it.
// Labels never take focus.
func (ctx *Context) Label(text string, opts ...Option) Response {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(o, text)

	size := ctx.MeasureText(text)
	resp := ctx.interact(id, Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y})

	color := ctx.style.TextColor
	if GetOpt(o, OptDisabled) {
		color = ctx.style.TextDisabledColor
		resp.Clicked = false
	}
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(size)
	return resp
}
