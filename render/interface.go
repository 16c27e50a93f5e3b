package render

// Layer draws one aspect of a frame into the buffer
type Layer interface {
	Render(ctx Context, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
