package world

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Perlin source parameters. Alpha/beta control the weight falloff inside
// the library's own octave loop; n=3 keeps the source cheap because the
// fractal combinators below add their own octaves on top.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Fbm is fractal Brownian motion over 3D Perlin noise: octave samples
// summed with shrinking amplitude and growing frequency, normalized by the
// total amplitude so results stay in roughly [-1, 1].
type Fbm struct {
	src         *perlin.Perlin
	octaves     int
	frequency   float64
	lacunarity  float64
	persistence float64
}

// NewFbm creates an Fbm field with stock fractal settings.
func NewFbm(seed int64) *Fbm {
	return &Fbm{
		src:         perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		octaves:     6,
		frequency:   1.0,
		lacunarity:  2.0,
		persistence: 0.5,
	}
}

// At samples the field at (x, y, z).
func (f *Fbm) At(x, y, z float64) float64 {
	amplitude := 1.0
	frequency := f.frequency
	sum := 0.0
	norm := 0.0
	for i := 0; i < f.octaves; i++ {
		sum += f.src.Noise3D(x*frequency, y*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Billow is a fractal field over 3D OpenSimplex noise that folds every
// octave around zero (2|v| - 1), producing the lumpy, cloud-like bands the
// strata generator carves rock layers from.
type Billow struct {
	src         opensimplex.Noise
	octaves     int
	frequency   float64
	lacunarity  float64
	persistence float64
}

// NewBillow creates a Billow field. Frequency and persistence vary per
// terrain policy, so they are parameters rather than stock values.
func NewBillow(seed int64, frequency, persistence float64) *Billow {
	return &Billow{
		src:         opensimplex.New(seed),
		octaves:     6,
		frequency:   frequency,
		lacunarity:  2.0,
		persistence: persistence,
	}
}

// At samples the field at (x, y, z).
func (b *Billow) At(x, y, z float64) float64 {
	amplitude := 1.0
	frequency := b.frequency
	sum := 0.0
	norm := 0.0
	for i := 0; i < b.octaves; i++ {
		v := b.src.Eval3(x*frequency, y*frequency, z*frequency)
		sum += (2*math.Abs(v) - 1) * amplitude
		norm += amplitude
		amplitude *= b.persistence
		frequency *= b.lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
