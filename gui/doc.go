/*
Package gui is a small immediate-mode GUI toolkit with a dedicated Context
type. The UI is rebuilt every frame; widgets are methods on the Context and
return what happened to them as a Response.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))

	for !window.ShouldClose() {
	    dt := adapter.NewFrame()
	    glfw.PollEvents()
	    input := adapter.Update(dt)

	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 720}, dt)

	    ctx.Panel("Search", gui.Padding(12))(func() {
	        edit := ctx.TextEdit(&query, gui.WithOpt(gui.OptHint, "type here"))
	        if edit.Changed {
	            // react to typing
	        }
	    })

	    ui.End()
	    window.SwapBuffers()
	}

# Retained State

Anything that must survive between frames lives outside the widgets:

  - the StateStore holds per-widget state such as InputTextState, keyed by ID
  - the PopupMemory records the open popup
  - the Context remembers which widget has keyboard focus

Both stores can be replaced with GUI options, which is how tests observe
popup commands without a window.

# IDs

GetID derives IDs from labels and a per-frame counter, so they depend on call order.
Widgets whose identity must not depend on the frame layout take an ID from
IDFrom, passed with OptStableID.

# Popups

OpenPopup, ClosePopup and IsPopupOpen address popups by ID. PopupBelow draws
an open popup under an anchor widget on the foreground draw list and closes
it according to a PopupCloseBehavior.

# Text Edit Shortcuts

	Left / Right        Move cursor (Ctrl: by word, Shift: extend selection)
	Home / End          Jump to start / end
	Ctrl+A              Select all
	Ctrl+C / X / V      Copy / cut / paste
	Ctrl+Z              Undo
	Ctrl+Y, Ctrl+Shift+Z Redo
	Escape, Enter       Give up focus

# Logging

The package logs through log/slog. SetVerbose enables debug records on the
default handler; SetLogger installs any other slog logger.
*/
package gui
