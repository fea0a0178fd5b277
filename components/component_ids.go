package components

// Default update and draw orders. Lower values run (or draw) first.
const (
	InputUpdateOrder   = 10  // before anything reads the owner's transform
	MoveUpdateOrder    = 10  // integrators run early in the frame
	DefaultUpdateOrder = 100 // passive components
	DefaultDrawOrder   = 100

	AsteroidDrawOrder = 100
	ShipDrawOrder     = 150
)
