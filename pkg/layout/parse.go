package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports constraint text that does not follow the wire
// format. The text format is unforgiving on purpose: constraint strings
// are meant to be built programmatically (see [Constraint.Text]), so any
// deviation is a caller bug, not input to recover from.
var ErrMalformed = errors.New("malformed constraint text")

// Parse builds a Constraint from its wire-format text: 11 whitespace
// separated tokens in fixed order,
//
//	ALIGN LEFT RIGHT TOP BOT WIDTHTYPE HEIGHTTYPE WIDTH HEIGHT MAXW MAXH
//
// where ALIGN is LEFT, RIGHT, or CENTER; the type tokens are PERCENT,
// ABSOLUTE, SQUARE, RATIO, or REST; margins and sizes are decimal floats;
// and MAXW/MAXH are integers with 2147483647 meaning unbounded.
// Any malformed input fails with an error wrapping [ErrMalformed] and no
// partial result.
func Parse(text string) (Constraint, error) {
	fields := strings.Fields(text)
	if len(fields) != 11 {
		return Constraint{}, fmt.Errorf("%w: got %d tokens, want 11", ErrMalformed, len(fields))
	}

	align, err := parseAlign(fields[0])
	if err != nil {
		return Constraint{}, err
	}

	var margins [4]float64
	for i, f := range fields[1:5] {
		margins[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: bad margin %q", ErrMalformed, f)
		}
	}

	widthUnit, err := parseUnit(fields[5])
	if err != nil {
		return Constraint{}, err
	}
	heightUnit, err := parseUnit(fields[6])
	if err != nil {
		return Constraint{}, err
	}

	width, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: bad width %q", ErrMalformed, fields[7])
	}
	height, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: bad height %q", ErrMalformed, fields[8])
	}

	maxWidth, err := strconv.Atoi(fields[9])
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: bad max width %q", ErrMalformed, fields[9])
	}
	maxHeight, err := strconv.Atoi(fields[10])
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: bad max height %q", ErrMalformed, fields[10])
	}

	return Constraint{
		Align:        align,
		LeftMargin:   margins[0],
		RightMargin:  margins[1],
		TopMargin:    margins[2],
		BottomMargin: margins[3],
		Width:        Value{Amount: width, Unit: widthUnit},
		Height:       Value{Amount: height, Unit: heightUnit},
		MaxWidth:     maxWidth,
		MaxHeight:    maxHeight,
	}, nil
}

// Text serializes the constraint back to its 11-token wire form.
// Parse(c.Text()) yields a constraint equal to c.
func (c Constraint) Text() string {
	return strings.Join([]string{
		c.Align.String(),
		formatFloat(c.LeftMargin),
		formatFloat(c.RightMargin),
		formatFloat(c.TopMargin),
		formatFloat(c.BottomMargin),
		c.Width.Unit.String(),
		c.Height.Unit.String(),
		formatFloat(c.Width.Amount),
		formatFloat(c.Height.Amount),
		strconv.Itoa(c.MaxWidth),
		strconv.Itoa(c.MaxHeight),
	}, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseAlign(s string) (Align, error) {
	switch s {
	case "LEFT":
		return AlignStart, nil
	case "CENTER":
		return AlignCenter, nil
	case "RIGHT":
		return AlignEnd, nil
	default:
		return 0, fmt.Errorf("%w: unknown alignment %q", ErrMalformed, s)
	}
}

func parseUnit(s string) (Unit, error) {
	switch s {
	case "PERCENT":
		return UnitPercent, nil
	case "ABSOLUTE":
		return UnitAbsolute, nil
	case "SQUARE":
		return UnitSquare, nil
	case "RATIO":
		return UnitRatio, nil
	case "REST":
		return UnitRest, nil
	default:
		return 0, fmt.Errorf("%w: unknown size type %q", ErrMalformed, s)
	}
}
