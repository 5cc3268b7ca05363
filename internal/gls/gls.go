// Package gls implements goroutine local storage for region stacks.
package gls

import (
	"sync"

	"github.com/petermattis/goid"
)

// The map holds one entry for each goroutine that currently has at least one
// open protected region. Entries are removed when the last region exits, so
// the map only grows with the number of goroutines running protected code.
var (
	gmutex sync.RWMutex
	gstate map[G]any
)

// G identifies a goroutine, and provides a way to load, store and clear the
// value attached to it.
type G int64

// Current returns the identifier of the calling goroutine.
func Current() G {
	return G(goid.Get())
}

// Load loads the value attached to the goroutine, or nil.
func (g G) Load() any {
	gmutex.RLock()
	v := gstate[g]
	gmutex.RUnlock()
	return v
}

// Store attaches v to the goroutine, replacing any previous value.
func (g G) Store(v any) {
	gmutex.Lock()
	if gstate == nil {
		gstate = make(map[G]any)
	}
	gstate[g] = v
	gmutex.Unlock()
}

// Clear removes the value attached to the goroutine.
func (g G) Clear() {
	gmutex.Lock()
	delete(gstate, g)
	gmutex.Unlock()
}

// Len returns the number of goroutines with an attached value.
func Len() int {
	gmutex.RLock()
	n := len(gstate)
	gmutex.RUnlock()
	return n
}
