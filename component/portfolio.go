// Package component models the external collaborators the clock core is
// registered into: the Trader façade, DataClient/ExecutionClient
// connections, and Portfolio. None of these carry real trading logic; they
// exist to let the clock subsystem be exercised end-to-end by a host
// process.
package component

import (
	"sync"

	"github.com/makeroftools/nautilus-trader/label"
)

// Instrument is an opaque tradable identifier, keyed the same way a Label
// keys a timer.
type Instrument struct {
	Symbol string
}

// Portfolio tracks which instruments a strategy is currently watching.
type Portfolio struct {
	mu          sync.Mutex
	instruments map[label.Label]Instrument
}

// NewPortfolio returns an empty Portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{instruments: make(map[label.Label]Instrument)}
}

// Register adds instrument under l, replacing any instrument previously
// registered under the same label.
func (p *Portfolio) Register(l label.Label, instrument Instrument) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.instruments[l] = instrument
}

// Unregister removes the instrument registered under l, if any.
func (p *Portfolio) Unregister(l label.Label) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.instruments, l)
}

// Get returns the instrument registered under l.
func (p *Portfolio) Get(l label.Label) (Instrument, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	instrument, ok := p.instruments[l]
	return instrument, ok
}

// Len reports how many instruments are currently registered.
func (p *Portfolio) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.instruments)
}
