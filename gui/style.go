package gui

// Style defines the visual appearance of widgets.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32
	HintColor         uint32 // placeholder text in empty text edits

	PanelColor       uint32
	PanelBorderColor uint32

	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	SelectedBgColor uint32
	HoveredBgColor  uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	SelectionBgColor    uint32 // selected text inside a text edit
	CursorColor         uint32

	// Popups drawn below their anchor widget.
	PopupBgColor     uint32
	PopupBorderColor uint32

	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	FocusColor uint32

	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	PopupPadding  float32

	// Width of text edits when no width is requested.
	DefaultInputWidth float32

	BorderSize    float32
	ScrollbarSize float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		HintColor:         RGBA(120, 120, 120, 255),

		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		SelectedBgColor: RGBA(50, 100, 150, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		SelectionBgColor:    RGBA(50, 100, 150, 180),
		CursorColor:         ColorWhite,

		PopupBgColor:     RGBA(25, 25, 25, 250),
		PopupBorderColor: RGBA(90, 90, 90, 255),

		ScrollbarBgColor:   RGBA(30, 30, 30, 255),
		ScrollbarGrabColor: RGBA(80, 80, 80, 255),

		FocusColor: ColorCyan,

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		PopupPadding:  2,

		DefaultInputWidth: 200,

		BorderSize:    1,
		ScrollbarSize: 12,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style: dark panels with cyan
// and yellow accents, slightly larger text.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TextDisabledColor = RGBA(128, 128, 128, 255)
	s.HintColor = RGBA(255, 200, 0, 140) // GTA yellow, faded

	s.PanelColor = RGBA(0, 0, 0, 220)
	s.PanelBorderColor = RGBA(100, 100, 100, 255)

	s.ButtonColor = RGBA(40, 40, 40, 255)
	s.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	s.ButtonActiveColor = RGBA(0, 150, 200, 255)

	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.HoveredBgColor = RGBA(50, 70, 90, 255)

	s.InputBgColor = RGBA(20, 20, 20, 255)
	s.InputFocusedBgColor = RGBA(30, 40, 50, 255)
	s.InputBorderColor = RGBA(0, 150, 200, 255)
	s.SelectionBgColor = RGBA(0, 120, 180, 180)

	s.PopupBgColor = RGBA(10, 10, 10, 250)
	s.PopupBorderColor = RGBA(0, 100, 150, 255)

	s.ScrollbarBgColor = RGBA(20, 20, 20, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)

	s.FocusColor = RGBA(0, 200, 255, 255)

	s.FontScale = 1.5
	s.ItemSpacing = 6
	s.PanelPadding = 12
	s.ButtonPadding = 8
	s.InputPadding = 6
	s.PopupPadding = 3
	s.DefaultInputWidth = 260
	s.ScrollbarSize = 14
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),
		HintColor:         RGBA(160, 160, 160, 255),

		PanelColor:       RGBA(245, 245, 245, 250),
		PanelBorderColor: RGBA(200, 200, 200, 255),

		ButtonColor:        RGBA(220, 220, 220, 255),
		ButtonHoveredColor: RGBA(200, 200, 200, 255),
		ButtonActiveColor:  RGBA(180, 180, 180, 255),

		SelectedBgColor: RGBA(0, 120, 215, 255),
		HoveredBgColor:  RGBA(230, 230, 230, 255),

		InputBgColor:        ColorWhite,
		InputFocusedBgColor: ColorWhite,
		InputBorderColor:    RGBA(150, 150, 150, 255),
		SelectionBgColor:    RGBA(0, 120, 215, 120),
		CursorColor:         RGBA(20, 20, 20, 255),

		PopupBgColor:     ColorWhite,
		PopupBorderColor: RGBA(180, 180, 180, 255),

		ScrollbarBgColor:   RGBA(240, 240, 240, 255),
		ScrollbarGrabColor: RGBA(180, 180, 180, 255),

		FocusColor: RGBA(0, 120, 215, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		PopupPadding:  2,

		DefaultInputWidth: 200,

		BorderSize:    1,
		ScrollbarSize: 12,
	}
}
