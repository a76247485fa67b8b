package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRegistryLastRequestWins(t *testing.T) {
	r := newSlotRegistry()

	ctx1, gen1 := r.begin(context.Background(), "table-4")
	require.True(t, r.isCurrent("table-4", gen1))

	ctx2, gen2 := r.begin(context.Background(), "table-4")
	assert.Greater(t, gen2, gen1)

	// The previous extraction was cancelled on arrival of the new one.
	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.NoError(t, ctx2.Err())
	assert.False(t, r.isCurrent("table-4", gen1))
	assert.True(t, r.isCurrent("table-4", gen2))
}

func TestSlotRegistryIndependentSlots(t *testing.T) {
	r := newSlotRegistry()
	ctx1, _ := r.begin(context.Background(), "table-4")
	_, _ = r.begin(context.Background(), "table-7")
	assert.NoError(t, ctx1.Err())
}

func TestSlotRegistryEnd(t *testing.T) {
	r := newSlotRegistry()
	_, gen1 := r.begin(context.Background(), "table-4")

	// A stale generation cannot release the slot.
	_, gen2 := r.begin(context.Background(), "table-4")
	r.end("table-4", gen1)
	assert.True(t, r.isCurrent("table-4", gen2))

	r.end("table-4", gen2)
	assert.False(t, r.isCurrent("table-4", gen2))
}
