package world

// Chunk is a cube of size³ tiles stored as depth slices: local depth index
// (global z mod size) to a flat row-major run of size*size tiles. Slices
// are inserted one at a time during generation, so unvisited depths never
// allocate. Once a chunk is handed to the store it is never mutated.
type Chunk struct {
	size   uint32
	slices map[uint32][]Tile
}

// NewChunk creates an empty chunk for the given edge length.
func NewChunk(size uint32) *Chunk {
	return &Chunk{
		size:   size,
		slices: make(map[uint32][]Tile, size),
	}
}

// SetSlice stores the tiles of one depth slice under its local depth index.
func (c *Chunk) SetSlice(localZ uint32, tiles []Tile) {
	c.slices[localZ] = tiles
}

// Slice returns the tiles of one depth slice, or nil if it was never set.
func (c *Chunk) Slice(localZ uint32) []Tile {
	return c.slices[localZ]
}

// TileAt returns the tile at the given local coordinates. The slice for
// localZ must exist; the store only reads chunks produced by full-chunk
// generation, which fills every slice.
func (c *Chunk) TileAt(localX, localY, localZ uint32) Tile {
	return c.slices[localZ][localX+localY*c.size]
}

// Size returns the chunk edge length.
func (c *Chunk) Size() uint32 {
	return c.size
}

// SliceCount returns how many depth slices have been populated.
func (c *Chunk) SliceCount() int {
	return len(c.slices)
}
