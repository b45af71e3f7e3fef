package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight wall-clock accounting for store and viewer phases.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the
// given name. Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Reset clears the accumulated totals.
func Reset() {
	mu.Lock()
	for k := range totals {
		delete(totals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN formats the N largest accumulated durations.
// Example: "world.GenerateChunk:4.2ms, world.PrefetchAround:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", list[i].name, ms))
	}
	return strings.Join(parts, ", ")
}
