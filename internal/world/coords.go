package world

// Bounds is the half-open interval [Min, Max) on each axis identifying one
// chunk of the world.
type Bounds struct {
	XMin, XMax uint32
	YMin, YMax uint32
	ZMin, ZMax uint32
}

// ChunkBounds returns the boundaries of the size x size x size chunk that
// (x, y, z) is located in. Each coordinate is bumped by one before rounding
// so that a point lying exactly on a chunk boundary belongs to the chunk
// below the boundary instead of a degenerate zero-width interval.
func ChunkBounds(x, y, z, size uint32) Bounds {
	cx := x + 1
	cy := y + 1
	cz := z + 1

	xMin, xMax := RoundToBoundaries(cx, size)
	yMin, yMax := RoundToBoundaries(cy, size)
	zMin, zMax := RoundToBoundaries(cz, size)

	return Bounds{
		XMin: xMin, XMax: xMax,
		YMin: yMin, YMax: yMax,
		ZMin: zMin, ZMax: zMax,
	}
}

// RoundToBoundaries finds the nearest multiples of m that n is located
// between, e.g. RoundToBoundaries(100, 64) returns (64, 128). A value that
// is itself a multiple of m closes the interval below it: (64, 64) maps to
// (0, 64), not (64, 128).
func RoundToBoundaries(n, m uint32) (min, max uint32) {
	if n == 0 {
		return 0, m
	}
	max = ((n + m - 1) / m) * m
	min = max - m
	return min, max
}
