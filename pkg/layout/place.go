package layout

import "math"

// placement pairs an item with its computed bounds. place builds the full
// slice before anything is pushed so a failing pass commits nothing.
type placement struct {
	item   Item
	bounds Rect
}

// Layout places every registered item inside region and pushes the
// computed bounds through [Item.SetBounds], in placement order.
//
// The pass keeps no state between calls: bounds are fully re-derived from
// the current constraints and region, so calling Layout twice with the
// same inputs produces identical bounds. It is also atomic: all bounds
// are resolved first, and a Rest-resolution error aborts the pass before
// any item is touched.
func (e *Engine) Layout(region Rect) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	placed, err := e.place(region)
	if err != nil {
		return err
	}
	for _, p := range placed {
		p.item.SetBounds(p.bounds)
	}
	return nil
}

func (e *Engine) place(region Rect) ([]placement, error) {
	n := len(e.items)
	if n == 0 {
		return nil, nil
	}

	parent := region.Size()
	pref, err := e.preferredSize(parent)
	if err != nil {
		return nil, err
	}

	vertical := e.axis == Vertical
	var start, end float64
	var prefExtent, regionExtent int
	if vertical {
		start, end = float64(region.Y), float64(region.Bottom())
		prefExtent, regionExtent = pref.Height, region.Height
	} else {
		start, end = float64(region.X), float64(region.Right())
		prefExtent, regionExtent = pref.Width, region.Width
	}
	excess := math.Max(float64(regionExtent-prefExtent), 0)

	spacing := e.spacing
	if spacing == SpaceBetween && n <= 1 {
		// The gap divisor is n-1; with a single item the policy is
		// undefined, so treat the lone item as a centered block.
		spacing = PackCenter
	}

	var cursor, gap float64
	switch spacing {
	case SpaceAround:
		gap = excess / float64(n+1)
		cursor = start + gap
	case SpaceBetween:
		gap = excess / float64(n-1)
		cursor = start
	case PackStart:
		cursor = start
	case PackCenter:
		mid := (int(start) + int(end)) / 2
		cursor = float64(mid) - float64(prefExtent)/2
	case PackEnd:
		cursor = end - float64(prefExtent)
	}

	placed := make([]placement, 0, n)
	for _, item := range e.items {
		c := e.constraints[item]
		s, err := e.resolveSize(item, parent)
		if err != nil {
			return nil, err
		}

		var bounds Rect
		if vertical {
			cursor += c.TopMargin
			x := crossPos(c.Align, region.X, region.Right(), s.Width, c.LeftMargin, c.RightMargin)
			bounds = Rect{X: x, Y: int(cursor), Width: s.Width, Height: s.Height}
			cursor += c.BottomMargin + float64(s.Height) + gap
		} else {
			cursor += c.LeftMargin
			y := crossPos(c.Align, region.Y, region.Bottom(), s.Height, c.TopMargin, c.BottomMargin)
			bounds = Rect{X: int(cursor), Y: y, Width: s.Width, Height: s.Height}
			cursor += c.RightMargin + float64(s.Width) + gap
		}
		placed = append(placed, placement{item: item, bounds: bounds})
	}
	return placed, nil
}

// crossPos positions an item's content box on the cross axis. Start and
// End offset by the item's own margin from the matching edge; Center
// centers the whole margin box, not just the content box.
func crossPos(align Align, start, end, extent int, startMargin, endMargin float64) int {
	switch align {
	case AlignStart:
		return start + int(startMargin)
	case AlignEnd:
		return end - int(endMargin) - extent
	default: // AlignCenter
		center := (start + end) / 2
		return center - int((float64(extent)+startMargin+endMargin)/2)
	}
}
