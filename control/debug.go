// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Probe registry used to report container state for diagnostics.

package control

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Probes holds registered probe functions.
type Probes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewProbes creates a probe registry.
func NewProbes() *Probes {
	return &Probes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts or replaces a named debug hook.
func (p *Probes) RegisterProbe(name string, fn func() any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes[name] = fn
}

// DumpState returns output of all probes.
func (p *Probes) DumpState() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]any, len(p.probes))
	for k, fn := range p.probes {
		out[k] = fn()
	}
	return out
}

// WriteTo writes one "name=value" line per probe, sorted by name.
func (p *Probes) WriteTo(w io.Writer) (int64, error) {
	state := p.DumpState()
	names := make([]string, 0, len(state))
	for k := range state {
		names = append(names, k)
	}
	sort.Strings(names)

	var total int64
	for _, k := range names {
		n, err := fmt.Fprintf(w, "%s=%v\n", k, state[k])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
