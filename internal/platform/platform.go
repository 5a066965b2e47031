package platform

// PointerLocator reads the pointer position from the windowing system.
type PointerLocator interface {
	// PointerPosition returns the current global pointer coordinates
	// relative to the root display surface.
	PointerPosition() (x, y int, err error)
}
