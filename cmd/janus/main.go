package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"janus/internal/config"
	"janus/internal/palette"
	"janus/internal/profiling"
	"janus/internal/world"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "path to YAML config file")
		xFlag    = flag.Uint("x", 0, "viewport left edge (0 centers on the planet)")
		yFlag    = flag.Uint("y", 0, "viewport top edge (0 centers on the planet)")
		zFlag    = flag.Uint("z", 32, "depth level to display")
		wFlag    = flag.Int("width", config.GetViewportWidth(), "viewport width in tiles")
		hFlag    = flag.Int("height", config.GetViewportHeight(), "viewport height in tiles")
		prefetch = flag.Uint("prefetch", 0, "prefetch radius in tiles around the viewport origin")
		noColor  = flag.Bool("no-color", false, "disable truecolor output")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	store, err := world.FromConfig(cfg.World)
	if err != nil {
		log.Error("create world store", "error", err)
		os.Exit(1)
	}

	config.SetViewportWidth(*wFlag)
	config.SetViewportHeight(*hFlag)
	width := uint32(config.GetViewportWidth())
	height := uint32(config.GetViewportHeight())

	size := store.ChunkSize()
	x := uint32(*xFlag)
	y := uint32(*yFlag)
	z := uint32(*zFlag)
	if x == 0 {
		x = store.MaxChunksX() * size / 2
	}
	if y == 0 {
		y = store.MaxChunksY() * size / 2
	}

	// Clamp the window to navigable bounds, the way the camera does.
	if total := store.MaxChunksX() * size; total <= width {
		x, width = 0, total
	} else if maxX := total - width; x > maxX {
		x = maxX
	}
	if total := store.MaxChunksY() * size; total <= height {
		y, height = 0, total
	} else if maxY := total - height; y > maxY {
		y = maxY
	}
	if maxZ := store.MaxChunksZ()*size - 1; z > maxZ {
		z = maxZ
	}

	if *prefetch > 0 {
		n := store.PrefetchAround(x, y, z, uint32(*prefetch))
		log.Info("prefetched chunks", "count", n)
	}

	scheme := palette.Default()
	var sb strings.Builder
	for row := uint32(0); row < height; row++ {
		sb.Reset()
		for col := uint32(0); col < width; col++ {
			tile, err := store.GetTile(x+col, y+row, z)
			if err != nil {
				log.Error("get tile", "error", err)
				os.Exit(1)
			}
			if !*noColor {
				sb.WriteString(ansiFg(scheme.Code(tile.Color)))
			}
			sb.WriteRune(tile.Glyph)
		}
		if !*noColor {
			sb.WriteString("\x1b[0m")
		}
		fmt.Println(sb.String())
	}

	log.Info("rendered viewport",
		"x", x, "y", y, "z", z,
		"tiles", width*height,
		"chunks", store.ChunkCount(),
		"seed", store.Seed(),
		"timings", profiling.TopN(3))
}

// ansiFg converts a #rrggbb hex code to a truecolor foreground escape.
func ansiFg(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return ""
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", (v>>16)&0xff, (v>>8)&0xff, v&0xff)
}
