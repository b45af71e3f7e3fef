package world

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"janus/internal/profiling"
)

// ErrOutOfRange reports a coordinate at or beyond the modeled planet edge.
// The store rejects these instead of letting chunk math wrap.
var ErrOutOfRange = errors.New("coordinate outside planet bounds")

// Policy selects the terrain generation variant.
type Policy string

const (
	PolicyRidge  Policy = "ridge"
	PolicyStrata Policy = "strata"
)

// ChunkCoord identifies a chunk by the coordinate of its center. Lookup and
// insertion both use the center convention; it never leaks past this package.
type ChunkCoord struct {
	X, Y, Z uint32
}

// Params are the world parameters fixed at store construction and shared
// read-only by every generation call.
type Params struct {
	ChunkSize      uint32
	MaxChunksX     uint32
	MaxChunksY     uint32
	MaxChunksZ     uint32
	SurfaceLevel   uint32
	LevelThickness float64
}

// ChunkStore is a sparse, lazily-populated cache of generated chunks keyed
// by chunk center. Chunks are generated on first access and never evicted,
// so memory grows monotonically with the set of chunks visited.
type ChunkStore struct {
	mu       sync.RWMutex
	chunks   map[ChunkCoord]*Chunk
	modCount uint64 // increases on every chunk insertion

	params Params
	seed   int64
	gen    ChunkGenerator
}

// NewChunkStore creates a store for the given parameters. The noise seed is
// drawn once here from a generator seeded with seedSource and reused for
// every chunk this store ever generates.
func NewChunkStore(params Params, seedSource int64, policy Policy) (*ChunkStore, error) {
	if params.ChunkSize == 0 {
		return nil, errors.New("chunk size must be positive")
	}

	seed := rand.New(rand.NewSource(seedSource)).Int63()

	var gen ChunkGenerator
	switch policy {
	case PolicyRidge:
		gen = NewRidgeGenerator(seed, params.ChunkSize)
	case PolicyStrata:
		gen = NewStrataGenerator(seed, params.ChunkSize, params.LevelThickness)
	default:
		return nil, fmt.Errorf("unknown generator policy %q", policy)
	}

	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
		params: params,
		seed:   seed,
		gen:    gen,
	}, nil
}

// GetTile returns the tile at the given world coordinates, generating the
// containing chunk on first access. Repeated calls return value-identical
// tiles without re-invoking generation.
func (s *ChunkStore) GetTile(x, y, z uint32) (Tile, error) {
	size := s.params.ChunkSize
	if x >= s.params.MaxChunksX*size || y >= s.params.MaxChunksY*size || z >= s.params.MaxChunksZ*size {
		return Tile{}, fmt.Errorf("%w: (%d, %d, %d)", ErrOutOfRange, x, y, z)
	}

	b := ChunkBounds(x, y, z, size)
	half := size / 2
	coord := ChunkCoord{X: b.XMin + half, Y: b.YMin + half, Z: b.ZMin + half}

	s.mu.RLock()
	chunk, ok := s.chunks[coord]
	s.mu.RUnlock()
	if !ok {
		chunk = s.generate(coord, b)
	}

	return chunk.TileAt(x%size, y%size, z%size), nil
}

// generate inserts the chunk for coord unless another caller won the race.
// The write lock is held across generation so each key is generated at most
// once and two concurrent misses can never insert divergent chunks.
func (s *ChunkStore) generate(coord ChunkCoord, b Bounds) *Chunk {
	defer profiling.Track("world.GenerateChunk")()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.chunks[coord]; ok {
		return existing
	}

	chunk := s.gen.GenerateChunk(b)
	s.chunks[coord] = chunk
	s.modCount++
	return chunk
}

// PrefetchAround synchronously generates the chunks covering the square
// window of the given radius around (x, y) at depth z, clamped to planet
// bounds. Returns the number of chunks generated. Viewers call this once at
// startup so the first frame doesn't pay generation cost per tile.
func (s *ChunkStore) PrefetchAround(x, y, z, radius uint32) int {
	defer profiling.Track("world.PrefetchAround")()

	size := s.params.ChunkSize
	minX := x - min(x, radius)
	minY := y - min(y, radius)
	maxX := clampAxis(uint64(x)+uint64(radius), uint64(s.params.MaxChunksX)*uint64(size))
	maxY := clampAxis(uint64(y)+uint64(radius), uint64(s.params.MaxChunksY)*uint64(size))

	before := s.ChunkCount()
	for cy := minY / size; cy <= maxY/size; cy++ {
		for cx := minX / size; cx <= maxX/size; cx++ {
			if _, err := s.GetTile(cx*size, cy*size, z); err != nil {
				return s.ChunkCount() - before
			}
		}
	}
	return s.ChunkCount() - before
}

func clampAxis(v, limit uint64) uint32 {
	if v >= limit {
		v = limit - 1
	}
	return uint32(v)
}

// ChunkCount returns how many chunks have been generated so far.
func (s *ChunkStore) ChunkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// ModCount returns the number of chunk insertions performed by the store.
func (s *ChunkStore) ModCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modCount
}

// Read-only world parameter accessors, used by viewers to clamp navigation.

func (s *ChunkStore) ChunkSize() uint32       { return s.params.ChunkSize }
func (s *ChunkStore) MaxChunksX() uint32      { return s.params.MaxChunksX }
func (s *ChunkStore) MaxChunksY() uint32      { return s.params.MaxChunksY }
func (s *ChunkStore) MaxChunksZ() uint32      { return s.params.MaxChunksZ }
func (s *ChunkStore) SurfaceLevel() uint32    { return s.params.SurfaceLevel }
func (s *ChunkStore) LevelThickness() float64 { return s.params.LevelThickness }

// Seed returns the noise seed drawn at construction.
func (s *ChunkStore) Seed() int64 { return s.seed }
