package components

// Component is the common contract for feed widgets. Widgets are
// push-driven: data arrives through typed setters and View renders
// whatever was pushed last.
type Component interface {
	View() string
}
