package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/backend/opengl"
	"github.com/go-theft-auto/dropdown/backend/sysclip"
	"github.com/go-theft-auto/dropdown/dictionary"
	"github.com/go-theft-auto/dropdown/gui"
	"github.com/go-theft-auto/dropdown/internal/config"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "dropdown demo"
)

//go:embed cities.txt
var builtinWords string

var fruits = []string{
	"Apple", "Apricot", "Avocado", "Banana", "Blackberry", "Blueberry",
	"Cherry", "Clementine", "Coconut", "Date", "Dragonfruit", "Fig",
	"Grape", "Grapefruit", "Guava", "Kiwi", "Lemon", "Lime", "Lychee",
	"Mango", "Melon", "Nectarine", "Orange", "Papaya", "Peach", "Pear",
	"Pineapple", "Plum", "Pomegranate", "Raspberry", "Strawberry", "Watermelon",
}

// demo is the application state that outlives frames.
type demo struct {
	cfg    config.Config
	words  *dictionary.Dictionary
	logger *log.Logger

	fruit   string
	word    string
	changes int
}

func loadWords(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Load(strings.NewReader(builtinWords))
	}
	return dictionary.LoadFile(path)
}

func run(cfg config.Config, logger *log.Logger) error {
	words, err := loadWords(cfg.Dictionary)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	logger.Info("dictionary ready", "words", words.Len())

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	if cfg.Clipboard == "system" && sysclip.Supported() {
		gui.SetClipboardProvider(sysclip.Clipboard{})
	} else {
		gui.SetClipboardProvider(opengl.NewGLFWClipboard(window))
	}

	ui := gui.New(renderer, gui.WithStyle(styleByName(cfg.Style)))
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ui.Resize(w, h)
	})

	d := &demo{cfg: cfg, words: words, logger: logger}
	for !window.ShouldClose() {
		dt := input.NewFrame()
		glfw.PollEvents()
		state := input.Update(dt)

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(state, gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		d.draw(ctx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}

// configure applies the shared settings to a box.
func (d *demo) configure(box dropdown.DropDownBox) dropdown.DropDownBox {
	box = box.
		HintText(d.cfg.Hint).
		FilterByInput(d.cfg.Filter).
		SelectOnFocus(d.cfg.SelectOnFocus).
		DesiredWidth(d.cfg.Width).
		MaxHeight(d.cfg.MaxHeight)
	return withAccentFolding(box, d.cfg.IgnoreAccents)
}

func (d *demo) draw(ctx *gui.Context) {
	ctx.Panel("Dropdown demo", gui.Width(360), gui.Padding(8))(func() {
		ctx.Text("Fruit")
		if d.configure(dropdown.FromSlice(fruits, "fruit", &d.fruit, nil)).Show(ctx).Changed {
			d.changed("fruit", d.fruit)
		}

		ctx.Spacing(8)
		ctx.Text(fmt.Sprintf("Word (%d known)", d.words.Len()))
		if d.configure(dropdown.New(d.words.All(), "word", &d.word, markCurrent(&d.word))).Show(ctx).Changed {
			d.changed("word", d.word)
		}

		ctx.Spacing(8)
		ctx.TextDisabled(fmt.Sprintf("fruit=%q word=%q changes=%d", d.fruit, d.word, d.changes))
	})
}

func (d *demo) changed(field, value string) {
	d.changes++
	d.logger.Debug("value changed", "field", field, "value", value)
}

// markCurrent returns a RenderFunc that shows the row equal to *current as
// selected.
func markCurrent(current *string) dropdown.RenderFunc {
	return func(ctx *gui.Context, text string) gui.Response {
		return ctx.Selectable(text, text == *current)
	}
}
