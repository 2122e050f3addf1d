package layout

import "testing"

// Exercises the full registration-to-placement path the way a host
// container drives it: wire-format constraints in, bounds out, then a
// child removal followed by a re-layout of the survivors.
func TestEngine_WireFormatRoundTripLayout(t *testing.T) {
	e := NewEngine(Horizontal, PackStart)
	sidebar := newTestItem("sidebar")
	content := newTestItem("content")
	gutter := newTestItem("gutter")

	specs := map[*testItem]string{
		sidebar: "LEFT 0 0 0 0 ABSOLUTE PERCENT 24 100 2147483647 2147483647",
		content: "LEFT 1 1 0 0 REST PERCENT 0 100 2147483647 2147483647",
		gutter:  "LEFT 0 0 0 0 ABSOLUTE PERCENT 2 100 2147483647 2147483647",
	}
	for _, item := range []*testItem{sidebar, content, gutter} {
		if err := e.AddText(item, specs[item]); err != nil {
			t.Fatalf("AddText(%s) error = %v", item.name, err)
		}
	}

	region := NewRect(0, 0, 120, 40)
	if err := e.Layout(region); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if sidebar.bounds != NewRect(0, 0, 24, 40) {
		t.Errorf("sidebar bounds = %+v", sidebar.bounds)
	}
	// content: 120 - 24 - 2 - its margins (2) = 92 wide, placed after
	// the sidebar plus its own left margin.
	if content.bounds != NewRect(25, 0, 92, 40) {
		t.Errorf("content bounds = %+v", content.bounds)
	}
	if gutter.bounds != NewRect(118, 0, 2, 40) {
		t.Errorf("gutter bounds = %+v", gutter.bounds)
	}

	// Dropping the gutter hands its space to the rest item on the next pass.
	e.Remove(gutter)
	if err := e.Layout(region); err != nil {
		t.Fatalf("Layout() after remove error = %v", err)
	}
	if content.bounds.Width != 94 {
		t.Errorf("content width after remove = %d, want 94", content.bounds.Width)
	}
}
