package world

import "janus/internal/config"

// FromConfig builds a chunk store from the world configuration. Planet
// circumference and crust thickness translate into the chunk grid limits.
func FromConfig(w config.World) (*ChunkStore, error) {
	params := Params{
		ChunkSize:      w.ChunkSize,
		MaxChunksX:     w.PlanetCircumference / w.ChunkSize,
		MaxChunksY:     w.PlanetCircumference / w.ChunkSize,
		MaxChunksZ:     w.CrustThickness / w.ChunkSize,
		SurfaceLevel:   w.SurfaceLevel,
		LevelThickness: w.LevelThickness,
	}
	return NewChunkStore(params, w.Seed, Policy(w.Generator))
}
