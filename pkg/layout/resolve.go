package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrMultipleRest reports two or more items requesting Rest on the
// engine's primary axis. This is a configuration bug, so it aborts the
// in-progress size query or placement pass outright.
var ErrMultipleRest = errors.New("multiple REST constraints on the primary axis")

// ErrUnknownItem reports a size resolution over an item that is not in
// the engine's mapping.
var ErrUnknownItem = errors.New("item is not registered with the engine")

// resolveSize computes item's content box (margins excluded) inside a
// parent of the given size. It runs in three passes: independent axes
// (Percent/Absolute), coupled axes (Square/Ratio), then Rest.
//
// The coupled-axis checks are applied unconditionally and in width-before-
// height order, so a spec with Square or Ratio on both axes resolves
// order-dependently. That order is observable behavior; keep it.
//
// Rest recursively resolves every sibling, which makes a single
// resolution O(n) and a whole pass O(n²). Acceptable for the few dozen
// items a container realistically holds.
//
// Callers must hold e.mu.
func (e *Engine) resolveSize(item Item, parent Size) (Size, error) {
	c, ok := e.constraints[item]
	if !ok {
		return Size{}, ErrUnknownItem
	}

	var width, height float64

	switch c.Width.Unit {
	case UnitPercent:
		width = math.Min(float64(parent.Width)*c.Width.Amount/100, float64(c.MaxWidth))
	case UnitAbsolute:
		width = c.Width.Amount
		if width < 0 {
			width, _ = item.IntrinsicPreferredSize()
		}
	}

	switch c.Height.Unit {
	case UnitPercent:
		height = math.Min(float64(parent.Height)*c.Height.Amount/100, float64(c.MaxHeight))
	case UnitAbsolute:
		height = c.Height.Amount
		if height < 0 {
			_, height = item.IntrinsicPreferredSize()
		}
	}

	// Square and ratio resolve after percent and absolute, width first.
	if c.Width.Unit == UnitSquare {
		width = height
	}
	if c.Height.Unit == UnitSquare {
		height = width
	}
	if c.Width.Unit == UnitRatio {
		width = height * c.Width.Amount
	}
	if c.Height.Unit == UnitRatio {
		height = width * c.Height.Amount
	}

	// Rest resolves last: everything the siblings (and our own margins)
	// don't take. Duplicate Rest is only an error on the primary axis.
	if c.Width.Unit == UnitRest {
		used := c.LeftMargin + c.RightMargin
		for _, other := range e.items {
			if other == item {
				continue
			}
			oc := e.constraints[other]
			if oc.Width.Unit == UnitRest && e.axis == Horizontal {
				return Size{}, fmt.Errorf("%w: width", ErrMultipleRest)
			}
			s, err := e.resolveSize(other, parent)
			if err != nil {
				return Size{}, err
			}
			used += float64(s.Width) + oc.LeftMargin + oc.RightMargin
		}
		width = math.Min(float64(parent.Width)-used, float64(c.MaxWidth))
	}

	if c.Height.Unit == UnitRest {
		used := c.TopMargin + c.BottomMargin
		for _, other := range e.items {
			if other == item {
				continue
			}
			oc := e.constraints[other]
			if oc.Height.Unit == UnitRest && e.axis == Vertical {
				return Size{}, fmt.Errorf("%w: height", ErrMultipleRest)
			}
			s, err := e.resolveSize(other, parent)
			if err != nil {
				return Size{}, err
			}
			used += float64(s.Height) + oc.TopMargin + oc.BottomMargin
		}
		height = math.Min(float64(parent.Height)-used, float64(c.MaxHeight))
	}

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Size{Width: int(width), Height: int(height)}, nil
}

// resolveSizeWithMargins is resolveSize plus the item's margins on both
// axes. Callers must hold e.mu.
func (e *Engine) resolveSizeWithMargins(item Item, parent Size) (Size, error) {
	s, err := e.resolveSize(item, parent)
	if err != nil {
		return Size{}, err
	}
	c := e.constraints[item]
	return Size{
		Width:  int(float64(s.Width) + c.LeftMargin + c.RightMargin),
		Height: int(float64(s.Height) + c.TopMargin + c.BottomMargin),
	}, nil
}

// resolveMinimumSize is the simple variant used only by minimum-size
// queries: the constraint's amount for Absolute, the item's intrinsic
// minimum for everything else. No coupling, no Rest, no max ceilings.
//
// Callers must hold e.mu.
func (e *Engine) resolveMinimumSize(item Item) (Size, error) {
	c, ok := e.constraints[item]
	if !ok {
		return Size{}, ErrUnknownItem
	}

	var width, height float64
	if c.Width.Unit == UnitAbsolute {
		width = c.Width.Amount
	} else {
		width, _ = item.IntrinsicMinimumSize()
	}
	if c.Height.Unit == UnitAbsolute {
		height = c.Height.Amount
	} else {
		_, height = item.IntrinsicMinimumSize()
	}
	return Size{Width: int(width), Height: int(height)}, nil
}
