package layout

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	type tc struct {
		text string
		want Constraint
	}

	tests := map[string]tc{
		"absolute sizes": {
			text: "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 40 25 2147483647 2147483647",
			want: New(AlignCenter, 0, 0, 0, 0, Absolute(40), Absolute(25)),
		},
		"percent with margins": {
			text: "LEFT 1.5 2.5 3 4 PERCENT ABSOLUTE 70 100 2147483647 2147483647",
			want: New(AlignStart, 1.5, 2.5, 3, 4, Percent(70), Absolute(100)),
		},
		"rest and square": {
			text: "RIGHT 0 0 0 0 REST SQUARE 0 0 2147483647 2147483647",
			want: New(AlignEnd, 0, 0, 0, 0, Rest(), Square()),
		},
		"ratio with max sizes": {
			text: "CENTER 0 0 0 0 RATIO ABSOLUTE 1.5 40 120 80",
			want: NewWithMax(AlignCenter, 0, 0, 0, 0, Ratio(1.5), Absolute(40), 120, 80),
		},
		"extra whitespace between tokens": {
			text: "CENTER  0   0 0 0 ABSOLUTE ABSOLUTE 40 25 2147483647 2147483647",
			want: New(AlignCenter, 0, 0, 0, 0, Absolute(40), Absolute(25)),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"empty string":        "",
		"eight tokens":        "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 40",
		"twelve tokens":       "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 40 25 2147483647 2147483647 extra",
		"unknown alignment":   "MIDDLE 0 0 0 0 ABSOLUTE ABSOLUTE 40 25 2147483647 2147483647",
		"unknown width type":  "CENTER 0 0 0 0 FLEX ABSOLUTE 40 25 2147483647 2147483647",
		"unknown height type": "CENTER 0 0 0 0 ABSOLUTE FLEX 40 25 2147483647 2147483647",
		"bad margin":          "CENTER x 0 0 0 ABSOLUTE ABSOLUTE 40 25 2147483647 2147483647",
		"bad width":           "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE x 25 2147483647 2147483647",
		"bad max width":       "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 40 25 1.5 2147483647",
		"bad max height":      "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 40 25 2147483647 nope",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", text)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse(%q) error = %v, want ErrMalformed", text, err)
			}
		})
	}
}

func TestConstraintText_RoundTrip(t *testing.T) {
	c := New(AlignEnd, 1.25, 2, 0, 3.5, Percent(70), Ratio(1.2))
	c.MaxWidth = 300

	got, err := Parse(c.Text())
	if err != nil {
		t.Fatalf("Parse(Text()) error = %v", err)
	}
	if got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestConstraintText_UnboundedSentinel(t *testing.T) {
	c := New(AlignCenter, 0, 0, 0, 0, Absolute(10), Absolute(10))

	text := c.Text()
	want := "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 10 10 2147483647 2147483647"
	if text != want {
		t.Errorf("Text() = %q, want %q", text, want)
	}
}
