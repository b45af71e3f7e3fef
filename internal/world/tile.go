package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"janus/internal/palette"
)

// Glyphs selecting the visual representation of a tile.
const (
	GlyphFloor  = '.'
	GlyphRock   = '#'
	GlyphLiquid = '~'
)

// Tile is the smallest addressable terrain cell. Glyph and Color are a pure
// function of (x, y, depth, seed): regenerating the same coordinate always
// reproduces an identical Tile.
type Tile struct {
	Pos    mgl64.Vec2
	Depth  uint32
	Glyph  rune
	Color  palette.ColorName
	Sample float64 // raw noise magnitude behind the classification, kept for diagnostics
}
