package layout

// Item is the interface for anything that can be placed by an Engine.
// The engine works entirely with this interface: implementations supply
// their intrinsic sizes and receive their computed bounds, nothing more.
//
// Items are identified by interface equality, so implementations must be
// comparable (pointer receivers are the usual choice). The same value
// registered twice replaces its constraint rather than appearing twice.
type Item interface {
	// IntrinsicPreferredSize returns the item's natural content-based size.
	// The engine consults it for Absolute constraints with a negative
	// amount and for defaulted constraints; it never computes it itself.
	IntrinsicPreferredSize() (width, height float64)

	// IntrinsicMinimumSize returns the smallest size the item tolerates.
	// Consulted only by minimum-size queries.
	IntrinsicMinimumSize() (width, height float64)

	// SetBounds is called by the engine with the item's computed bounds.
	// It is the only externally observable effect of a placement pass.
	SetBounds(Rect)
}
