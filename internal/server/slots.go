package server

import (
	"context"
	"sync"
)

// slotRegistry implements last-request-wins per upload slot: starting
// an extraction for a slot cancels the in-flight extraction of the
// previous upload to that slot, so a stale result can never overwrite
// a newer one.
type slotRegistry struct {
	mu    sync.Mutex
	slots map[string]*slotState
}

type slotState struct {
	cancel context.CancelFunc
	gen    uint64
}

func newSlotRegistry() *slotRegistry {
	return &slotRegistry{slots: make(map[string]*slotState)}
}

// begin registers a new extraction for the slot, cancelling any
// previous one, and returns a derived context plus the generation
// token for staleness checks.
func (r *slotRegistry) begin(parent context.Context, slotID string) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.slots[slotID]
	gen := uint64(1)
	if prev != nil {
		prev.cancel()
		gen = prev.gen + 1
	}
	r.slots[slotID] = &slotState{cancel: cancel, gen: gen}
	return ctx, gen
}

// isCurrent reports whether the generation still owns the slot.
func (r *slotRegistry) isCurrent(slotID string, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.slots[slotID]
	return st != nil && st.gen == gen
}

// end releases the slot if the generation still owns it.
func (r *slotRegistry) end(slotID string, gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.slots[slotID]
	if st != nil && st.gen == gen {
		st.cancel()
		delete(r.slots, slotID)
	}
}
