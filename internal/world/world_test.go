package world

import (
	"testing"

	"janus/internal/config"
)

func TestFromConfigDefaults(t *testing.T) {
	s, err := FromConfig(config.Default().World)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if s.ChunkSize() != 64 {
		t.Errorf("chunk size = %d, want 64", s.ChunkSize())
	}
	if s.MaxChunksX() != 312500 || s.MaxChunksY() != 312500 {
		t.Errorf("horizontal chunk grid = (%d, %d), want (312500, 312500)",
			s.MaxChunksX(), s.MaxChunksY())
	}
	if s.MaxChunksZ() != 500 {
		t.Errorf("vertical chunk grid = %d, want 500", s.MaxChunksZ())
	}
	if s.SurfaceLevel() != 1000 {
		t.Errorf("surface level = %d, want 1000", s.SurfaceLevel())
	}
}

func TestFromConfigRejectsBadGenerator(t *testing.T) {
	w := config.Default().World
	w.Generator = "voronoi"
	if _, err := FromConfig(w); err == nil {
		t.Error("expected error for unknown generator")
	}
}
