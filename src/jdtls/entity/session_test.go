package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Starting", StateStarting.String())
	assert.Equal(t, "Initializing", StateInitializing.String())
	assert.Equal(t, "Ready", StateReady.String())
	assert.Equal(t, "Degraded", StateDegraded.String())
	assert.Equal(t, "Stopped", StateStopped.String())
	assert.Equal(t, "Unknown", SessionState(42).String())
}

func TestSessionStateCanDispatch(t *testing.T) {
	dispatchable := map[SessionState]bool{
		StateIdle:         false,
		StateStarting:     false,
		StateInitializing: false,
		StateReady:        true,
		StateDegraded:     true,
		StateStopped:      false,
	}
	for state, want := range dispatchable {
		assert.Equal(t, want, state.CanDispatch(), state.String())
	}
}

func TestSessionStateActive(t *testing.T) {
	assert.False(t, StateIdle.Active())
	assert.True(t, StateStarting.Active())
	assert.True(t, StateReady.Active())
	assert.True(t, StateDegraded.Active())
	assert.False(t, StateStopped.Active())
}
