package config

// Screen layout configuration
const (
	// Logical screen dimensions in pixels
	ScreenWidth  = 1024
	ScreenHeight = 768

	// Frames per second the update loop is paced at
	TicksPerSecond = 60
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1024, 768 // Can be adjusted if needed for UI scaling
}

// FrameDelta returns the fixed delta time of one tick in seconds
func FrameDelta() float32 {
	return 1.0 / TicksPerSecond
}
