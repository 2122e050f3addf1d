package layout

// testItem is a minimal Item implementation for tests. It reports fixed
// intrinsic sizes and records the bounds pushed to it.
type testItem struct {
	name  string
	prefW float64
	prefH float64
	minW  float64
	minH  float64

	bounds   Rect
	setCalls int
}

func newTestItem(name string) *testItem {
	return &testItem{name: name}
}

func (i *testItem) withPreferred(w, h float64) *testItem {
	i.prefW, i.prefH = w, h
	return i
}

func (i *testItem) withMinimum(w, h float64) *testItem {
	i.minW, i.minH = w, h
	return i
}

func (i *testItem) IntrinsicPreferredSize() (float64, float64) {
	return i.prefW, i.prefH
}

func (i *testItem) IntrinsicMinimumSize() (float64, float64) {
	return i.minW, i.minH
}

func (i *testItem) SetBounds(r Rect) {
	i.bounds = r
	i.setCalls++
}
