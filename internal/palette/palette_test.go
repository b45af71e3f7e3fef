package palette

import "testing"

func TestStoneColorBands(t *testing.T) {
	cases := []struct {
		v    float64
		want ColorName
	}{
		{0.0, ColorVoid},
		{0.14, ColorVoid},
		{0.15, ColorStone1},
		{0.3, ColorStone2},
		{0.45, ColorStone3},
		{0.6, ColorStone4},
		{0.75, ColorStone5},
		{0.9, ColorStone6},
		// Outside the declared range the ramp falls to its catch-all.
		{1.5, ColorStone6},
		{-0.3, ColorStone6},
	}
	for _, c := range cases {
		if got := StoneColor(c.v, 0.0, 1.0); got != c.want {
			t.Errorf("StoneColor(%v, 0, 1) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestStoneColorHalfRange(t *testing.T) {
	// The strata generator uses the ramp over [0, 0.5].
	if got := StoneColor(0.03, 0.0, 0.5); got != ColorVoid {
		t.Errorf("StoneColor(0.03, 0, 0.5) = %v, want void", got)
	}
	if got := StoneColor(0.49, 0.0, 0.5); got != ColorStone6 {
		t.Errorf("StoneColor(0.49, 0, 0.5) = %v, want stone6", got)
	}
}

func TestFloorColorBands(t *testing.T) {
	// The floor ramp skips band 1 and merges everything past band 5 into
	// void; the gaps are intentional.
	cases := []struct {
		v    float64
		want ColorName
	}{
		{0.41, ColorStone6},
		{0.5, ColorVoid},
		{0.56, ColorStone5},
		{0.63, ColorStone4},
		{0.71, ColorStone3},
		{0.78, ColorStone2},
		{0.9, ColorVoid},
		{0.3, ColorVoid},
		{1.2, ColorVoid},
	}
	for _, c := range cases {
		if got := FloorColor(c.v, 0.4, 1.0); got != c.want {
			t.Errorf("FloorColor(%v, 0.4, 1.0) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestRampsTotal(t *testing.T) {
	for v := -1.0; v <= 2.0; v += 0.01 {
		if StoneColor(v, 0.0, 1.0).String() == "unknown" {
			t.Fatalf("StoneColor(%v) returned an undefined color", v)
		}
		if FloorColor(v, 0.4, 1.0).String() == "unknown" {
			t.Fatalf("FloorColor(%v) returned an undefined color", v)
		}
	}
}

func TestSchemeCoversTerrainColors(t *testing.T) {
	s := Default()
	for _, name := range []ColorName{ColorVoid, ColorStone1, ColorStone2, ColorStone3,
		ColorStone4, ColorStone5, ColorStone6, ColorAqua} {
		code := s.Code(name)
		if len(code) != 7 || code[0] != '#' {
			t.Errorf("scheme code for %v = %q, want #rrggbb", name, code)
		}
	}
}
