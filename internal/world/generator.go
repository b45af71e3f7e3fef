package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"janus/internal/palette"
)

// ChunkGenerator produces one full chunk of terrain for the given bounds.
type ChunkGenerator interface {
	GenerateChunk(b Bounds) *Chunk
}

const (
	// Ridge policy: input scale applied to all three axes, and the
	// absolute-value threshold that turns a cell into solid rock.
	ridgeScale     = 0.1
	ridgeThreshold = 0.2

	// Strata policy fractal settings and the rock/floor split point.
	strataFrequency   = 0.125
	strataPersistence = 0.35
	strataRockMax     = 0.6
)

// RidgeGenerator carves simple ridge terrain from a scale-adjusted Fbm
// field: cells whose sample magnitude clears a fixed threshold become rock,
// the rest stay open floor.
type RidgeGenerator struct {
	noise *Fbm
	size  uint32
}

// NewRidgeGenerator creates a ridge generator for chunks of the given size.
func NewRidgeGenerator(seed int64, chunkSize uint32) *RidgeGenerator {
	return &RidgeGenerator{
		noise: NewFbm(seed),
		size:  chunkSize,
	}
}

// GenerateChunk fills every depth slice of the chunk covering b, descending
// from the top depth boundary, each slice row-major with x innermost.
func (g *RidgeGenerator) GenerateChunk(b Bounds) *Chunk {
	c := NewChunk(g.size)
	for z := b.ZMax; z > b.ZMin; z-- {
		depth := z - 1
		tiles := make([]Tile, 0, g.size*g.size)
		for y := b.YMin; y < b.YMax; y++ {
			for x := b.XMin; x < b.XMax; x++ {
				v := g.noise.At(float64(x)*ridgeScale, float64(y)*ridgeScale, float64(depth)*ridgeScale)
				glyph, color := classifyRidge(v)
				tiles = append(tiles, Tile{
					Pos:    mgl64.Vec2{float64(x), float64(y)},
					Depth:  depth,
					Glyph:  glyph,
					Color:  color,
					Sample: v,
				})
			}
		}
		c.SetSlice(depth%g.size, tiles)
	}
	return c
}

// classifyRidge maps a raw signed sample to a glyph and color band. Color
// comes from the stone ramp over the raw value, so negative samples land in
// the ramp's catch-all band.
func classifyRidge(v float64) (rune, palette.ColorName) {
	glyph := rune(GlyphFloor)
	if math.Abs(v) >= ridgeThreshold {
		glyph = GlyphRock
	}
	return glyph, palette.StoneColor(v, 0.0, 1.0)
}

// StrataGenerator carves layered strata from a Billow field. Depth is
// converted to physical meters before sampling, so layer thickness is
// independent of chunk granularity.
type StrataGenerator struct {
	noise          *Billow
	size           uint32
	levelThickness float64
}

// NewStrataGenerator creates a strata generator for chunks of the given
// size, with levelThickness vertical meters per depth unit.
func NewStrataGenerator(seed int64, chunkSize uint32, levelThickness float64) *StrataGenerator {
	return &StrataGenerator{
		noise:          NewBillow(seed, strataFrequency, strataPersistence),
		size:           chunkSize,
		levelThickness: levelThickness,
	}
}

// GenerateChunk fills every depth slice of the chunk covering b, descending
// from the top depth boundary, each slice row-major with x innermost.
func (g *StrataGenerator) GenerateChunk(b Bounds) *Chunk {
	c := NewChunk(g.size)
	for z := b.ZMax; z > b.ZMin; z-- {
		depth := z - 1
		zMeters := float64(depth) * g.levelThickness
		tiles := make([]Tile, 0, g.size*g.size)
		for y := b.YMin; y < b.YMax; y++ {
			for x := b.XMin; x < b.XMax; x++ {
				v := math.Abs(g.noise.At(float64(x), float64(y), zMeters))
				glyph, color := classifyStrata(v)
				tiles = append(tiles, Tile{
					Pos:    mgl64.Vec2{float64(x), float64(y)},
					Depth:  depth,
					Glyph:  glyph,
					Color:  color,
					Sample: v,
				})
			}
		}
		c.SetSlice(depth%g.size, tiles)
	}
	return c
}

// classifyStrata maps a sample magnitude to a glyph and color band. Samples
// below the rock threshold are solid rock on the stone ramp, except that a
// rock cell whose density lands in the void band becomes a subsurface
// liquid pocket. Everything else is open floor on the floor ramp.
func classifyStrata(v float64) (rune, palette.ColorName) {
	if v < strataRockMax {
		color := palette.StoneColor(v, 0.0, 0.5)
		if color == palette.ColorVoid {
			return GlyphLiquid, palette.ColorAqua
		}
		return GlyphRock, color
	}
	return GlyphFloor, palette.FloorColor(v, 0.4, 1.0)
}
