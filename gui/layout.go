package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout tracks the state of a layout container.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	Width, Height       float32 // available size
	MaxWidth, MaxHeight float32 // accumulated content size

	Gap     float32
	Padding float32

	ItemCount int
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets the inner padding of a Panel.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayoutWith pushes layout at the cursor, filling unset sizes from the
// enclosing layout.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout, accounts for it as one item of the
// parent, and returns its content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	if parent := ctx.currentLayout(); parent != nil {
		ctx.cursor = Vec2{X: layout.StartX, Y: layout.StartY}
		ctx.AdvanceCursor(Vec2{X: layout.MaxWidth, Y: layout.MaxHeight})
		if parent.Type == LayoutVertical {
			ctx.cursor.X = layout.StartX
		} else {
			ctx.cursor.Y = layout.StartY
		}
	} else {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y = layout.StartY + layout.MaxHeight
	}

	return bounds
}

// Panel draws a background panel sized to its contents.
//
//	ctx.Panel("Settings", gui.Padding(12))(func() {
//	    ctx.Text("Country")
//	    countryBox.Show(ctx)
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		userWidth := layout.Width

		pos := ctx.ItemPos()
		startX, startY := pos.X, pos.Y
		pad := layout.Padding
		avail := ctx.currentLayoutWidth()

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + pad
		}

		// The panel owns its own cursor; the parent only sees its final size.
		saved := ctx.layoutStack
		ctx.layoutStack = nil
		ctx.cursor = Vec2{X: startX + pad, Y: startY + pad + headerH}
		if layout.Width == 0 {
			layout.Width = avail
		}
		layout.Width -= pad * 2
		layout.Padding = 0
		ctx.pushLayoutWith(layout)

		contents()

		bounds := ctx.popLayout()
		ctx.layoutStack = saved

		panelW := bounds.W + pad*2
		if userWidth > 0 && panelW < userWidth {
			panelW = userWidth
		}
		panelH := bounds.H + pad*2 + headerH

		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)
		if title != "" {
			ctx.AddText(startX+pad, startY+pad, title, ctx.style.TextColor)
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.isHovered(Rect{X: startX, Y: startY, W: panelW, H: panelH}) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = Vec2{X: startX, Y: startY}
		ctx.AdvanceCursor(Vec2{X: panelW, Y: panelH})
		ctx.cursor.X = startX
	}
}

// VStack creates a vertical layout container.
//
//	ctx.VStack(gui.Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack creates a horizontal layout container.
//
//	ctx.HStack(gui.Gap(8))(func() {
//	    ctx.Label("Fruit:")
//	    fruitBox.Show(ctx)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: typ, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		layout.Padding = 0
		ctx.beginItem()
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}
