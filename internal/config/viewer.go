package config

import "sync"

// ViewerSettings holds viewport configuration
type ViewerSettings struct {
	mu     sync.RWMutex
	width  int // in tiles
	height int // in tiles
}

var globalViewerSettings = &ViewerSettings{
	width:  60, // default viewport
	height: 30,
}

// GetViewportWidth returns the current viewport width in tiles
func GetViewportWidth() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.width
}

// SetViewportWidth sets the viewport width in tiles
func SetViewportWidth(w int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	// Clamp to reasonable values
	if w < 10 {
		w = 10
	}
	if w > 240 {
		w = 240
	}

	globalViewerSettings.width = w
}

// GetViewportHeight returns the current viewport height in tiles
func GetViewportHeight() int {
	globalViewerSettings.mu.RLock()
	defer globalViewerSettings.mu.RUnlock()
	return globalViewerSettings.height
}

// SetViewportHeight sets the viewport height in tiles
func SetViewportHeight(h int) {
	globalViewerSettings.mu.Lock()
	defer globalViewerSettings.mu.Unlock()

	if h < 5 {
		h = 5
	}
	if h > 120 {
		h = 120
	}

	globalViewerSettings.height = h
}
