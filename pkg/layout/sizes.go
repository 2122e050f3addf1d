package layout

import "math"

// PreferredSize returns the aggregate size the registered items want
// inside a parent of the given size: on the primary axis the sum of each
// item's resolved extent plus its margins, on the cross axis the maximum
// margin-inclusive extent across items.
//
// Fails with [ErrMultipleRest] if more than one item uses Rest on the
// primary axis.
func (e *Engine) PreferredSize(parent Size) (Size, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.preferredSize(parent)
}

func (e *Engine) preferredSize(parent Size) (Size, error) {
	var width, height float64
	for _, item := range e.items {
		c := e.constraints[item]
		s, err := e.resolveSize(item, parent)
		if err != nil {
			return Size{}, err
		}
		if e.axis == Vertical {
			width = math.Max(width, c.LeftMargin+c.RightMargin+float64(s.Width))
			height += c.TopMargin + c.BottomMargin + float64(s.Height)
		} else {
			height = math.Max(height, c.TopMargin+c.BottomMargin+float64(s.Height))
			width += c.LeftMargin + c.RightMargin + float64(s.Width)
		}
	}
	return Size{Width: int(width), Height: int(height)}, nil
}

// MinimumSize is PreferredSize over the minimum-size resolver: Absolute
// constraints keep their amount, everything else falls back to the item's
// intrinsic minimum. The parent size is accepted for symmetry with the
// other queries but plays no part in the result.
func (e *Engine) MinimumSize(parent Size) (Size, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var width, height float64
	for _, item := range e.items {
		c := e.constraints[item]
		s, err := e.resolveMinimumSize(item)
		if err != nil {
			return Size{}, err
		}
		if e.axis == Vertical {
			width = math.Max(width, c.LeftMargin+c.RightMargin+float64(s.Width))
			height += c.TopMargin + c.BottomMargin + float64(s.Height)
		} else {
			height = math.Max(height, c.TopMargin+c.BottomMargin+float64(s.Height))
			width += c.LeftMargin + c.RightMargin + float64(s.Width)
		}
	}
	return Size{Width: int(width), Height: int(height)}, nil
}

// MaximumSize sums every item's margin-inclusive resolved size on both
// axes independently. It is deliberately not axis-aware: the result is an
// upper bound the host uses as a hint, nothing more.
func (e *Engine) MaximumSize(parent Size) (Size, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var width, height int
	for _, item := range e.items {
		s, err := e.resolveSizeWithMargins(item, parent)
		if err != nil {
			return Size{}, err
		}
		width += s.Width
		height += s.Height
	}
	return Size{Width: width, Height: height}, nil
}
