// Package state holds the client-side snapshots of server-owned data.
//
// Each provider owns one slice of fetched state and is shared by every
// consumer in the process. A fetch replaces the whole snapshot, never merges.
// Fetch failures are logged and swallowed: the previous snapshot stays
// visible rather than interrupting the caller's flow.
package state

import (
	"log/slog"
	"sync"
)

// gate serializes snapshot access and orders overlapping fetches.
//
// Fetches are not serialized on the wire: two in-flight fetches may resolve
// in either order. Each fetch takes a generation before issuing its request
// and may only install its result while its generation is still current, so
// the last-issued fetch wins regardless of which response arrives last.
type gate struct {
	mu  sync.RWMutex
	gen uint64
}

// begin marks a new fetch and returns its generation.
func (g *gate) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return g.gen
}

// commit runs install while holding the write lock, unless a later fetch has
// begun since gen was taken. Returns whether the result was installed.
func (g *gate) commit(gen uint64, install func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return false
	}
	install()
	return true
}

// force runs install unconditionally and invalidates in-flight fetches, so a
// pushed snapshot is not overwritten by a stale response already on the wire.
func (g *gate) force(install func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	install()
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
