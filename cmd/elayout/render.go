package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emrgncr/elayout/pkg/layout"
)

// panel is the CLI's Item implementation: fixed intrinsic sizes from the
// config, computed bounds recorded for printing.
type panel struct {
	name  string
	prefW float64
	prefH float64
	minW  float64
	minH  float64

	bounds layout.Rect
}

func (p *panel) IntrinsicPreferredSize() (float64, float64) { return p.prefW, p.prefH }
func (p *panel) IntrinsicMinimumSize() (float64, float64)   { return p.minW, p.minH }
func (p *panel) SetBounds(r layout.Rect)                    { p.bounds = r }

// buildEngine translates a loaded config into an engine with one panel
// per configured item, in file order.
func buildEngine(cfg config) (*layout.Engine, []*panel, error) {
	axis, err := parseAxis(cfg.Axis)
	if err != nil {
		return nil, nil, err
	}
	spacing, err := parseSpacing(cfg.Spacing)
	if err != nil {
		return nil, nil, err
	}

	e := layout.NewEngine(axis, spacing)
	panels := make([]*panel, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		p := &panel{
			name:  item.Name,
			prefW: item.PreferredWidth,
			prefH: item.PreferredHeight,
			minW:  item.MinimumWidth,
			minH:  item.MinimumHeight,
		}
		if err := e.AddText(p, item.Constraint); err != nil {
			return nil, nil, fmt.Errorf("item %q: %w", item.Name, err)
		}
		panels = append(panels, p)
	}
	return e, panels, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	boundsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// runRender loads the definition at path, computes the layout, and writes
// the resulting bounds plus a scaled character preview to w.
func runRender(w io.Writer, path string) error {
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	e, panels, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	region := layout.NewRect(cfg.Region.X, cfg.Region.Y, cfg.Region.Width, cfg.Region.Height)
	if err := e.Layout(region); err != nil {
		return err
	}

	pref, err := e.PreferredSize(region.Size())
	if err != nil {
		return err
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s: %s/%s region %dx%d, preferred %dx%d",
		path, cfg.Axis, cfg.Spacing, region.Width, region.Height, pref.Width, pref.Height)))
	for _, p := range panels {
		fmt.Fprintf(w, "  %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-12s", p.name)),
			boundsStyle.Render(fmt.Sprintf("x=%-5d y=%-5d w=%-5d h=%d",
				p.bounds.X, p.bounds.Y, p.bounds.Width, p.bounds.Height)))
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, preview(region, panels))
	return nil
}

// previewWidth is the widest character canvas preview draws.
const previewWidth = 72

// preview renders the computed layout as a character canvas, scaled down
// so wide regions still fit a terminal.
func preview(region layout.Rect, panels []*panel) string {
	scale := 1.0
	if region.Width > previewWidth {
		scale = float64(previewWidth) / float64(region.Width)
	}
	cols := int(float64(region.Width)*scale) + 1
	rows := int(float64(region.Height)*scale) + 1

	canvas := make([][]rune, rows)
	for y := range canvas {
		canvas[y] = make([]rune, cols)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	plot := func(x, y int, r rune) {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			canvas[y][x] = r
		}
	}

	for i, p := range panels {
		if p.bounds.IsEmpty() {
			continue
		}
		x0 := int(float64(p.bounds.X-region.X) * scale)
		y0 := int(float64(p.bounds.Y-region.Y) * scale)
		x1 := int(float64(p.bounds.Right()-region.X)*scale) - 1
		y1 := int(float64(p.bounds.Bottom()-region.Y)*scale) - 1
		if x1 < x0 {
			x1 = x0
		}
		if y1 < y0 {
			y1 = y0
		}

		for x := x0; x <= x1; x++ {
			plot(x, y0, '-')
			plot(x, y1, '-')
		}
		for y := y0; y <= y1; y++ {
			plot(x0, y, '|')
			plot(x1, y, '|')
		}
		plot(x0, y0, '+')
		plot(x1, y0, '+')
		plot(x0, y1, '+')
		plot(x1, y1, '+')

		label := fmt.Sprintf("%d:%s", i+1, p.name)
		for j, r := range label {
			if x0+1+j >= x1 {
				break
			}
			plot(x0+1+j, y0+1, r)
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
