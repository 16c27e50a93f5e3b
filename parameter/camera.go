package parameter

// Default viewport when the host does not report one (world units)
const (
	CameraDefaultViewportWidth  = 1280.0
	CameraDefaultViewportHeight = 720.0
)
