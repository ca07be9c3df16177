package palette

import (
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#3a6ea5", RGB{R: 0x3a, G: 0x6e, B: 0xa5}},
		{"3a6ea5", RGB{R: 0x3a, G: 0x6e, B: 0xa5}},
		{" #ffffff ", RGB{R: 255, G: 255, B: 255}},
		{"#fff", RGB{}},
		{"notacolor", RGB{}},
		{"", RGB{}},
	}
	for _, tt := range tests {
		if got := ParseHex(tt.in); got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	colors := []RGB{
		{58, 110, 165},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{128, 128, 128},
		{0, 0, 0},
		{255, 255, 255},
	}
	for _, c := range colors {
		got := c.ToHSL().ToRGB()
		if abs(got.R-c.R) > 1 || abs(got.G-c.G) > 1 || abs(got.B-c.B) > 1 {
			t.Errorf("round trip %+v = %+v", c, got)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestShiftHuePreservesGray(t *testing.T) {
	// Grays have no hue; shifting must leave them alone.
	got := ShiftHue(RGB{128, 128, 128}, 90)
	if abs(got.R-128) > 1 || got.R != got.G || got.G != got.B {
		t.Errorf("shifted gray = %+v", got)
	}
}

func TestShiftHueFullCircle(t *testing.T) {
	base := RGB{58, 110, 165}
	got := ShiftHue(base, 360)
	if abs(got.R-base.R) > 1 || abs(got.G-base.G) > 1 || abs(got.B-base.B) > 1 {
		t.Errorf("360 degree shift = %+v, want ~%+v", got, base)
	}
}

func TestSingle(t *testing.T) {
	c := Single("#3a6ea5")
	if c.Fill != "rgba(58, 110, 165, 0.6)" {
		t.Errorf("Fill = %q", c.Fill)
	}
	if c.Stroke != "rgb(58, 110, 165)" {
		t.Errorf("Stroke = %q", c.Stroke)
	}
}

func TestWheelFirstSliceIsBase(t *testing.T) {
	w := Wheel("#3a6ea5", 4)
	if len(w) != 4 {
		t.Fatalf("len = %d, want 4", len(w))
	}
	if w[0] != Single("#3a6ea5") {
		t.Errorf("slice 0 = %+v, want the base pair", w[0])
	}
}

func TestWheelSlicesAreDistinct(t *testing.T) {
	// Under 12 slices every 30 degree rotation lands on a new hue.
	w := Wheel("#3a6ea5", 11)
	seen := make(map[string]int)
	for i, c := range w {
		if j, dup := seen[c.Fill]; dup {
			t.Errorf("slices %d and %d share fill %q", j, i, c.Fill)
		}
		seen[c.Fill] = i
	}
}

func TestSeriesBarRepeatsSingle(t *testing.T) {
	s := Series("bar", "#3a6ea5", 3)
	if len(s) != 3 {
		t.Fatalf("len = %d, want 3", len(s))
	}
	single := Single("#3a6ea5")
	for i, c := range s {
		if c != single {
			t.Errorf("entry %d = %+v, want repeated base pair", i, c)
		}
	}
}

func TestSeriesPieMatchesWheel(t *testing.T) {
	s := Series("pie", "#3a6ea5", 5)
	w := Wheel("#3a6ea5", 5)
	for i := range s {
		if s[i] != w[i] {
			t.Errorf("entry %d = %+v, want %+v", i, s[i], w[i])
		}
	}
}

func TestSeriesPieOfOneEqualsSingle(t *testing.T) {
	s := Series("pie", "#3a6ea5", 1)
	if len(s) != 1 || s[0] != Single("#3a6ea5") {
		t.Errorf("pie of one = %+v", s)
	}
}

func TestScriptCarriesConstants(t *testing.T) {
	js := Script()
	if !strings.Contains(js, "30") {
		t.Error("script missing hue step")
	}
	if !strings.Contains(js, "0.6") {
		t.Error("script missing fill opacity")
	}
	if !strings.Contains(js, "chart-canvas") {
		t.Error("script missing canvas selector")
	}
	if strings.Contains(js, "%!") {
		t.Errorf("script has a formatting error: %s", js)
	}
}
