package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitPercent  Unit = iota // Percentage of the parent's extent on that axis
	UnitAbsolute             // Absolute pixels/cells; negative = intrinsic preferred size
	UnitSquare               // Copy the other axis
	UnitRatio                // Multiple of the other axis
	UnitRest                 // Whatever space the siblings leave over
)

// String returns the wire-format name of the unit.
func (u Unit) String() string {
	switch u {
	case UnitPercent:
		return "PERCENT"
	case UnitAbsolute:
		return "ABSOLUTE"
	case UnitSquare:
		return "SQUARE"
	case UnitRatio:
		return "RATIO"
	case UnitRest:
		return "REST"
	default:
		return "UNKNOWN"
	}
}

// Value represents a dimension on one axis: an amount plus the unit that
// says how the amount is interpreted. Square and Rest ignore the amount.
type Value struct {
	Amount float64
	Unit   Unit
}

// Percent returns a Value sized as a percentage of the parent's extent.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Absolute returns a Value with a fixed extent. A negative amount is a
// sentinel meaning "use the item's intrinsic preferred size".
func Absolute(v float64) Value {
	return Value{Amount: v, Unit: UnitAbsolute}
}

// Square returns a Value that copies the resolved extent of the other axis.
func Square() Value {
	return Value{Unit: UnitSquare}
}

// Ratio returns a Value that is r times the resolved extent of the other axis.
func Ratio(r float64) Value {
	return Value{Amount: r, Unit: UnitRatio}
}

// Rest returns a Value that takes all space the siblings leave over.
// At most one item per engine may use Rest on the engine's primary axis.
func Rest() Value {
	return Value{Unit: UnitRest}
}
