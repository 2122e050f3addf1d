package layout

import "math"

// Align specifies how an item is positioned on the cross axis.
type Align uint8

const (
	AlignStart  Align = iota // Start edge: left in vertical layouts, top in horizontal
	AlignCenter              // Center the margin box on the cross axis
	AlignEnd                 // End edge: right in vertical layouts, bottom in horizontal
)

// String returns the wire-format name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "LEFT"
	case AlignCenter:
		return "CENTER"
	case AlignEnd:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Axis specifies the primary axis items are laid out along.
type Axis uint8

const (
	Vertical   Axis = iota // Items stacked top-to-bottom
	Horizontal             // Items placed left-to-right
)

// Spacing specifies how leftover space on the primary axis is distributed.
type Spacing uint8

const (
	SpaceAround  Spacing = iota // Equal gap before, between, and after items
	SpaceBetween                // Equal gap between items, none at the edges
	PackStart                   // Items flush at the start, no gaps
	PackCenter                  // Items centered as one block, no gaps
	PackEnd                     // Items flush at the end, no gaps
)

// Unbounded is the wire-format sentinel for "no maximum".
const Unbounded = math.MaxInt32

// Constraint holds one item's sizing, alignment, and margin specification.
// It is a plain value: assignment produces an independent copy, and a
// registered constraint is never mutated by the engine.
//
// Margins are absolute (never percentage), non-negative, and default to 0.
// MaxWidth and MaxHeight are ceilings applied after resolution; they clamp
// Percent and Rest results only, never Absolute ones.
type Constraint struct {
	Align Align

	LeftMargin   float64
	RightMargin  float64
	TopMargin    float64
	BottomMargin float64

	Width  Value
	Height Value

	MaxWidth  int
	MaxHeight int
}

// New builds a Constraint with unbounded maximum sizes.
func New(align Align, left, right, top, bottom float64, width, height Value) Constraint {
	return Constraint{
		Align:        align,
		LeftMargin:   left,
		RightMargin:  right,
		TopMargin:    top,
		BottomMargin: bottom,
		Width:        width,
		Height:       height,
		MaxWidth:     Unbounded,
		MaxHeight:    Unbounded,
	}
}

// NewWithMax builds a Constraint with explicit maximum sizes. Pass
// [Unbounded] for an axis that should not be capped.
func NewWithMax(align Align, left, right, top, bottom float64, width, height Value, maxWidth, maxHeight int) Constraint {
	c := New(align, left, right, top, bottom, width, height)
	c.MaxWidth = maxWidth
	c.MaxHeight = maxHeight
	return c
}

// DefaultConstraint returns the constraint used when an item is registered
// without one: centered, no margins, sized to the item's intrinsic
// preferred size as reported at registration time.
func DefaultConstraint(item Item) Constraint {
	w, h := item.IntrinsicPreferredSize()
	return New(AlignCenter, 0, 0, 0, 0, Absolute(w), Absolute(h))
}
