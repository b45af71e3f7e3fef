package world

import "testing"

func TestRoundToBoundaries(t *testing.T) {
	cases := []struct {
		n, min, max uint32
	}{
		{0, 0, 64},
		{1, 0, 64},
		{63, 0, 64},
		{64, 0, 64},
		{128, 64, 128},
		{129, 128, 192},
		{175, 128, 192},
		{192, 128, 192},
	}
	for _, c := range cases {
		min, max := RoundToBoundaries(c.n, 64)
		if min != c.min || max != c.max {
			t.Errorf("RoundToBoundaries(%d, 64) = (%d, %d), want (%d, %d)",
				c.n, min, max, c.min, c.max)
		}
	}
}

func TestChunkBoundsPreIncrement(t *testing.T) {
	// A raw coordinate of 64 is bumped to 65 before rounding, so a point
	// sitting exactly on a boundary belongs to the chunk above it.
	b := ChunkBounds(64, 64, 64, 64)
	if b.XMin != 64 || b.XMax != 128 {
		t.Errorf("ChunkBounds x for raw 64 = [%d, %d), want [64, 128)", b.XMin, b.XMax)
	}

	b = ChunkBounds(63, 63, 63, 64)
	if b.XMin != 0 || b.XMax != 64 {
		t.Errorf("ChunkBounds x for raw 63 = [%d, %d), want [0, 64)", b.XMin, b.XMax)
	}

	b = ChunkBounds(0, 0, 0, 64)
	if b.XMin != 0 || b.XMax != 64 || b.YMin != 0 || b.ZMin != 0 {
		t.Errorf("ChunkBounds for origin = %+v, want [0, 64) on all axes", b)
	}
}

func TestChunkBoundsScenario(t *testing.T) {
	// End-to-end scenario: (100, 100, 10) with 64-tile chunks.
	b := ChunkBounds(100, 100, 10, 64)
	if b.XMin != 64 || b.XMax != 128 {
		t.Errorf("x bounds = [%d, %d), want [64, 128)", b.XMin, b.XMax)
	}
	if b.YMin != 64 || b.YMax != 128 {
		t.Errorf("y bounds = [%d, %d), want [64, 128)", b.YMin, b.YMax)
	}
	if b.ZMin != 0 || b.ZMax != 64 {
		t.Errorf("z bounds = [%d, %d), want [0, 64)", b.ZMin, b.ZMax)
	}
}
