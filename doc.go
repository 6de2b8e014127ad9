/*
Package dropdown provides an autocomplete combo box for the gui
immediate-mode toolkit: a single-line text field that opens a list of
candidates below itself when focused, filters them by what was typed, and
writes the clicked candidate back into the text.

# Usage

Build the widget every frame and call Show:

	var fruit string
	fruits := []string{"Apple", "Banana", "Grape"}

	resp := dropdown.FromSlice(fruits, "fruit", &fruit, dropdown.SelectableLabel).
	    HintText("fruit").
	    SelectOnFocus(true).
	    Show(ctx)
	if resp.Changed {
	    // fruit was typed into or picked from the list
	}

Candidates are any iter.Seq[string]; they are drained once per frame while
the popup is open. Items and Stringers adapt slices, and the dictionary
package serves large word lists.

# Matching

A candidate is shown when filtering is off, when the text is empty, or when
the lowercased candidate contains the lowercased text. With
IgnoreAccentMarks both sides are also transliterated to plain ASCII first, so
"cafe" finds "Café", "strasse" finds "Straße" and "moskva" finds "Москва".
Transliteration adds github.com/mozillazg/go-unidecode to the build; the
noaccents build tag leaves it out, along with the IgnoreAccentMarks option.

# Popup State

Whether a popup is open lives in the gui.PopupMemory of the context, keyed by
the ID derived from the id source passed to New. The widget itself holds no
state between frames.
*/
package dropdown
