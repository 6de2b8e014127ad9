package gui

// Option configures a widget.
type Option func(*options)

// options holds widget configuration keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
//	var OptAccent = gui.NewOptKey("accent", gui.ColorCyan)
//
//	ctx.Selectable(label, false, gui.WithOpt(OptAccent, gui.ColorYellow))
//
//	accent := GetOpt(o, OptAccent) // inside a widget
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in option keys.
var (
	OptID       = NewOptKey("id", "")
	OptStableID = NewOptKey[ID]("stableID", 0) // overrides OptID and the label
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHint     = NewOptKey("hint", "")
)

// widgetID resolves the ID for a widget: OptStableID, then OptID, then label.
func (ctx *Context) widgetID(o options, label string) ID {
	if id := GetOpt(o, OptStableID); id != 0 {
		return id
	}
	if s := GetOpt(o, OptID); s != "" {
		return ctx.GetID(s)
	}
	return ctx.GetID(label)
}
