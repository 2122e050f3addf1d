// elayout.go re-exports the public types from pkg/layout.
// Any changes to pkg/layout types must be mirrored here.
package elayout

import "github.com/emrgncr/elayout/pkg/layout"

// Engine computes item bounds inside a parent region.
type Engine = layout.Engine

// Constraint holds one item's sizing, alignment, and margin specification.
type Constraint = layout.Constraint

// Item is the host-side interface placed items must implement.
type Item = layout.Item

// Value represents a dimension (percent, absolute, square, ratio, or rest).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitPercent  = layout.UnitPercent
	UnitAbsolute = layout.UnitAbsolute
	UnitSquare   = layout.UnitSquare
	UnitRatio    = layout.UnitRatio
	UnitRest     = layout.UnitRest
)

// Align specifies cross-axis positioning of an item.
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Axis specifies the primary layout axis.
type Axis = layout.Axis

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// Spacing specifies how leftover primary-axis space is distributed.
type Spacing = layout.Spacing

const (
	SpaceAround  = layout.SpaceAround
	SpaceBetween = layout.SpaceBetween
	PackStart    = layout.PackStart
	PackCenter   = layout.PackCenter
	PackEnd      = layout.PackEnd
)

// Rect represents a rectangle with integer coordinates.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Unbounded is the wire-format sentinel for "no maximum".
const Unbounded = layout.Unbounded

// Errors surfaced by the engine.
var (
	ErrMalformed    = layout.ErrMalformed
	ErrMultipleRest = layout.ErrMultipleRest
	ErrUnknownItem  = layout.ErrUnknownItem
)

// Percent creates a Value sized as a percentage of the parent extent.
func Percent(p float64) Value { return layout.Percent(p) }

// Absolute creates a Value with a fixed extent (negative = intrinsic).
func Absolute(v float64) Value { return layout.Absolute(v) }

// Square creates a Value that copies the other axis.
func Square() Value { return layout.Square() }

// Ratio creates a Value that is r times the other axis.
func Ratio(r float64) Value { return layout.Ratio(r) }

// Rest creates a Value that takes the space the siblings leave over.
func Rest() Value { return layout.Rest() }

// NewEngine creates an engine with the given axis and spacing policy.
func NewEngine(axis Axis, spacing Spacing) *Engine { return layout.NewEngine(axis, spacing) }

// NewDefaultEngine creates a vertical engine that centers its items.
func NewDefaultEngine() *Engine { return layout.NewDefaultEngine() }

// NewConstraint builds a Constraint with unbounded maximum sizes.
func NewConstraint(align Align, left, right, top, bottom float64, width, height Value) Constraint {
	return layout.New(align, left, right, top, bottom, width, height)
}

// NewConstraintWithMax builds a Constraint with explicit maximum sizes.
func NewConstraintWithMax(align Align, left, right, top, bottom float64, width, height Value, maxWidth, maxHeight int) Constraint {
	return layout.NewWithMax(align, left, right, top, bottom, width, height, maxWidth, maxHeight)
}

// Parse builds a Constraint from its 11-token wire-format text.
func Parse(text string) (Constraint, error) { return layout.Parse(text) }

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, w, h int) Rect { return layout.NewRect(x, y, w, h) }
