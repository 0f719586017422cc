package widgets

// Widget renders itself into a width x height cell block.
type Widget interface {
	Render(width, height int) string
}

// WidgetFunc adapts a plain render function to Widget.
type WidgetFunc func(width, height int) string

func (f WidgetFunc) Render(width, height int) string { return f(width, height) }
