package dropdown_test

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/gui"
)

// mockRenderer counts the vertices of each color it was asked to draw.
type mockRenderer struct {
	colors map[uint32]int
}

func (r *mockRenderer) Render(dl *gui.DrawList) error {
	for _, v := range dl.VtxBuffer {
		r.colors[v.Color]++
	}
	return nil
}

func (r *mockRenderer) FontTextureID() uint32 { return 1 }
func (r *mockRenderer) Resize(int, int)       {}

// fakeMemory records popup commands instead of relying on a real window.
type fakeMemory struct {
	open   map[gui.ID]bool
	opens  int
	closes int
}

func newFakeMemory() *fakeMemory {
	return &fakeMemory{open: make(map[gui.ID]bool)}
}

func (m *fakeMemory) OpenPopup(id gui.ID) {
	m.opens++
	m.open[id] = true
}

func (m *fakeMemory) ClosePopup(id gui.ID) {
	m.closes++
	delete(m.open, id)
}

func (m *fakeMemory) IsPopupOpen(id gui.ID) bool { return m.open[id] }

type harness struct {
	t        *testing.T
	ui       *gui.GUI
	input    *gui.InputState
	memory   *fakeMemory
	renderer *mockRenderer
}

func newHarness(t *testing.T) *harness {
	memory := newFakeMemory()
	renderer := &mockRenderer{}
	return &harness{
		t:        t,
		ui:       gui.New(renderer, gui.WithPopupMemory(memory)),
		input:    gui.NewInputState(),
		memory:   memory,
		renderer: renderer,
	}
}

// frame runs one frame. The renderer's color counts cover only this frame.
func (h *harness) frame(draw func(ctx *gui.Context)) {
	h.t.Helper()
	h.renderer.colors = make(map[uint32]int)
	ctx := h.ui.Begin(h.input, gui.Vec2{X: 800, Y: 600}, 0.016)
	draw(ctx)
	require.NoError(h.t, h.ui.End())
	h.input.Reset()
}

// show runs one frame with box and returns its response.
func (h *harness) show(box dropdown.DropDownBox) gui.Response {
	h.t.Helper()
	var resp gui.Response
	h.frame(func(ctx *gui.Context) { resp = box.Show(ctx) })
	return resp
}

// recorder is a RenderFunc that draws selectable rows and remembers which
// candidates it was asked to draw in the last frame.
type recorder struct {
	rendered []string
}

func (r *recorder) render(ctx *gui.Context, text string) gui.Response {
	r.rendered = append(r.rendered, text)
	return ctx.Selectable(text, false)
}

func (r *recorder) reset() { r.rendered = nil }

var fruits = []string{"Apple", "Banana", "Grape"}

// With the default style the field is 200x16 at the origin and the popup
// rows start at y=18, 16px apart.
const (
	fieldX, fieldY = 10, 8
	rowX, firstRow = 20, 22
)

func TestOpensOnFocusAndFilters(t *testing.T) {
	h := newHarness(t)
	buf := "an"
	rec := &recorder{}
	box := dropdown.FromSlice(fruits, "fruit", &buf, rec.render)

	resp := h.show(box)
	assert.False(t, h.memory.IsPopupOpen(box.PopupID()))
	assert.Empty(t, rec.rendered, "closed popup draws nothing")
	assert.False(t, resp.Changed)

	h.input.Click(fieldX, fieldY)
	resp = h.show(box)
	require.True(t, resp.GainedFocus)
	assert.True(t, h.memory.IsPopupOpen(box.PopupID()))
	assert.Equal(t, 1, h.memory.opens)
	if diff := cmp.Diff([]string{"Banana"}, rec.rendered); diff != "" {
		t.Errorf("rendered candidates (-want +got):\n%s", diff)
	}
}

func TestClickCommitsCandidate(t *testing.T) {
	h := newHarness(t)
	buf := "an"
	rec := &recorder{}
	box := dropdown.FromSlice(fruits, "fruit", &buf, rec.render)

	h.input.Click(fieldX, fieldY)
	h.show(box)
	rec.reset()

	h.input.Click(rowX, firstRow)
	resp := h.show(box)

	assert.Equal(t, "Banana", buf)
	assert.True(t, resp.Changed)
	assert.False(t, h.memory.IsPopupOpen(box.PopupID()))
	assert.Equal(t, []string{"Banana"}, rec.rendered)
}

func TestEmptyQueryShowsAll(t *testing.T) {
	h := newHarness(t)
	buf := ""
	rec := &recorder{}
	box := dropdown.FromSlice(fruits, "fruit", &buf, rec.render)

	h.input.Click(fieldX, fieldY)
	h.show(box)

	assert.Equal(t, fruits, rec.rendered)
}

func TestFilterDisabledShowsAll(t *testing.T) {
	h := newHarness(t)
	buf := "zzz"
	rec := &recorder{}
	box := dropdown.FromSlice(fruits, "fruit", &buf, rec.render).FilterByInput(false)

	h.input.Click(fieldX, fieldY)
	h.show(box)

	assert.Equal(t, fruits, rec.rendered)
}

func TestRerenderIsIdempotent(t *testing.T) {
	h := newHarness(t)
	buf := "an"
	box := dropdown.FromSlice(fruits, "fruit", &buf, nil)

	for _, open := range []bool{false, true} {
		if open {
			h.memory.OpenPopup(box.PopupID())
		}
		first := h.show(box)
		second := h.show(box)

		assert.Equal(t, "an", buf)
		assert.False(t, first.Changed)
		assert.False(t, second.Changed)
		assert.Equal(t, open, h.memory.IsPopupOpen(box.PopupID()))
	}
}

func TestSelectOnFocusSelectsWholeBuffer(t *testing.T) {
	h := newHarness(t)
	buf := "hello"
	box := dropdown.FromSlice(fruits, "fruit", &buf, nil).SelectOnFocus(true)

	h.input.Click(fieldX, fieldY)
	resp := h.show(box)
	require.True(t, resp.GainedFocus)

	state := gui.GetState(h.ui.Context(), box.EditID(), gui.InputTextState{})
	start, end := state.GetSelectedRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestSelectOnFocusCountsRunes(t *testing.T) {
	h := newHarness(t)
	buf := "Zürich"
	box := dropdown.FromSlice(fruits, "city", &buf, nil).SelectOnFocus(true)

	h.input.Click(fieldX, fieldY)
	h.show(box)

	state := gui.GetState(h.ui.Context(), box.EditID(), gui.InputTextState{})
	_, end := state.GetSelectedRange()
	assert.Equal(t, 6, end)
}

func TestNoSelectionWithoutSelectOnFocus(t *testing.T) {
	h := newHarness(t)
	buf := "hello"
	box := dropdown.FromSlice(fruits, "fruit", &buf, nil)

	h.input.Click(fieldX, fieldY)
	h.show(box)

	state := gui.GetState(h.ui.Context(), box.EditID(), gui.InputTextState{})
	assert.False(t, state.HasSelection())
}

func TestFirstClickWinsAndIterationCompletes(t *testing.T) {
	h := newHarness(t)
	buf := ""
	var rendered []string
	// Every row claims a click.
	clickAll := func(ctx *gui.Context, text string) gui.Response {
		rendered = append(rendered, text)
		return gui.Response{Clicked: true}
	}
	box := dropdown.FromSlice(fruits, "fruit", &buf, clickAll)

	h.memory.OpenPopup(box.PopupID())
	resp := h.show(box)

	assert.Equal(t, "Apple", buf)
	assert.True(t, resp.Changed)
	assert.Equal(t, fruits, rendered, "rows after the commit still render")
}

func TestCommitKeepsQueryForRemainingRows(t *testing.T) {
	h := newHarness(t)
	buf := "a"
	var rendered []string
	clickFirst := func(ctx *gui.Context, text string) gui.Response {
		rendered = append(rendered, text)
		return gui.Response{Clicked: len(rendered) == 1}
	}
	items := []string{"Apple", "Banana", "Grape", "Cherry"}
	box := dropdown.FromSlice(items, "fruit", &buf, clickFirst)

	h.memory.OpenPopup(box.PopupID())
	h.show(box)

	assert.Equal(t, "Apple", buf)
	assert.Equal(t, []string{"Apple", "Banana", "Grape"}, rendered)
}

func TestCandidatesDrainedOncePerFrame(t *testing.T) {
	h := newHarness(t)
	buf := ""
	passes := 0
	seq := func(yield func(string) bool) {
		passes++
		for _, f := range fruits {
			if !yield(f) {
				return
			}
		}
	}
	box := dropdown.New(iter.Seq[string](seq), "fruit", &buf, nil)

	h.show(box)
	assert.Zero(t, passes, "closed popup must not consume candidates")

	h.memory.OpenPopup(box.PopupID())
	h.show(box)
	assert.Equal(t, 1, passes)
}

func TestEscapeClosesPopup(t *testing.T) {
	h := newHarness(t)
	buf := ""
	box := dropdown.FromSlice(fruits, "fruit", &buf, nil)

	h.input.Click(fieldX, fieldY)
	h.show(box)
	require.True(t, h.memory.IsPopupOpen(box.PopupID()))

	h.input.PressKey(gui.KeyEscape)
	resp := h.show(box)
	assert.False(t, h.memory.IsPopupOpen(box.PopupID()))
	assert.False(t, resp.Changed)
	assert.Equal(t, "", buf)
}

func TestClickOutsideClosesWithoutCommit(t *testing.T) {
	h := newHarness(t)
	buf := "an"
	box := dropdown.FromSlice(fruits, "fruit", &buf, nil)

	h.input.Click(fieldX, fieldY)
	h.show(box)

	h.input.Click(700, 500)
	resp := h.show(box)
	assert.False(t, h.memory.IsPopupOpen(box.PopupID()))
	assert.False(t, resp.Changed)
	assert.Equal(t, "an", buf)
}

func TestTypingFiltersWhileOpen(t *testing.T) {
	h := newHarness(t)
	buf := ""
	rec := &recorder{}
	box := dropdown.FromSlice(fruits, "fruit", &buf, rec.render)

	h.input.Click(fieldX, fieldY)
	h.show(box)
	rec.reset()

	h.input.AddInputChar('g')
	resp := h.show(box)

	assert.True(t, resp.Changed, "typing reports a change")
	assert.Equal(t, "g", buf)
	assert.Equal(t, []string{"Grape"}, rec.rendered)
	assert.True(t, h.memory.IsPopupOpen(box.PopupID()))
}

func TestPopupIdentityStableAcrossFrames(t *testing.T) {
	buf := ""
	a := dropdown.FromSlice(fruits, "fruit", &buf, nil)
	b := dropdown.FromSlice([]string{"other"}, "fruit", &buf, nil)
	c := dropdown.FromSlice(fruits, "veg", &buf, nil)

	assert.Equal(t, a.PopupID(), b.PopupID())
	assert.NotEqual(t, a.PopupID(), c.PopupID())
	assert.NotEqual(t, a.PopupID(), a.EditID())
}

func TestBuildersDoNotMutateReceiver(t *testing.T) {
	h := newHarness(t)
	buf := "zzz"
	rec := &recorder{}
	base := dropdown.FromSlice(fruits, "fruit", &buf, rec.render)
	_ = base.FilterByInput(false)

	h.memory.OpenPopup(base.PopupID())
	h.show(base)
	assert.Empty(t, rec.rendered, "base box keeps filtering on")
}

type city struct{ name string }

func (c city) String() string { return c.name }

func TestStringersCandidates(t *testing.T) {
	h := newHarness(t)
	buf := "par"
	rec := &recorder{}
	cities := []city{{"Paris"}, {"Lyon"}, {"Parma"}}
	box := dropdown.New(dropdown.Stringers(cities), "city", &buf, rec.render)

	h.memory.OpenPopup(box.PopupID())
	h.show(box)

	assert.Equal(t, []string{"Paris", "Parma"}, rec.rendered)
}

func TestHintDrawnWhileEmpty(t *testing.T) {
	h := newHarness(t)
	hintColor := gui.DefaultStyle().HintColor
	buf := ""
	box := dropdown.FromSlice(fruits, "fruit", &buf, nil)

	h.show(box)
	assert.Zero(t, h.renderer.colors[hintColor], "no hint by default")

	h.show(box.HintText("fruit"))
	assert.Equal(t, 4*len("fruit"), h.renderer.colors[hintColor], "one glyph quad per hint rune")

	buf = "kiwi"
	h.show(box.HintText("fruit"))
	assert.Zero(t, h.renderer.colors[hintColor], "hint hidden once there is text")
}

func TestDesiredWidthSizesField(t *testing.T) {
	h := newHarness(t)
	buf := ""
	box := dropdown.FromSlice(fruits, "fruit", &buf, nil)

	resp := h.show(box)
	assert.Equal(t, gui.DefaultStyle().DefaultInputWidth, resp.Rect.W)

	resp = h.show(box.DesiredWidth(320))
	assert.Equal(t, float32(320), resp.Rect.W)

	resp = h.show(box.DesiredWidth(0))
	assert.Equal(t, gui.DefaultStyle().DefaultInputWidth, resp.Rect.W, "zero falls back to the style")
}

func TestMaxHeightClampsList(t *testing.T) {
	// Rows are 16px apart from y=18; the third one starts at y=50.
	const thirdRow = firstRow + 32

	tests := []struct {
		name      string
		maxHeight float32
		want      string
	}{
		{"clamped above the third row", 20, ""},
		{"unconstrained", 0, "Grape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			buf := ""
			box := dropdown.FromSlice(fruits, "fruit", &buf, nil).MaxHeight(tt.maxHeight)

			h.input.Click(fieldX, fieldY)
			h.show(box)
			require.True(t, h.memory.IsPopupOpen(box.PopupID()))

			h.input.Click(rowX, thirdRow)
			resp := h.show(box)

			assert.Equal(t, tt.want, buf)
			assert.Equal(t, tt.want != "", resp.Changed)
		})
	}
}
