package widgets

// Widget renders itself into a width×height cell block.
type Widget interface {
	Render(width, height int) string
}
