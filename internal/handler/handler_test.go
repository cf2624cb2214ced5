package handler

import (
	"testing"
	"time"

	"lexibot/internal/domain"
	"lexibot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newTestHandler() *Handler {
	return &Handler{
		logger: testutil.NewTestLogger(),
		states: make(map[int64]*domain.StateData),
	}
}

func TestHandler_GetState_DefaultsToIdle(t *testing.T) {
	h := newTestHandler()

	state := h.GetState(42)

	assert.Equal(t, domain.StateIdle, state.State)
}

func TestHandler_SetState(t *testing.T) {
	h := newTestHandler()

	h.SetState(42, &domain.StateData{
		State:       domain.StateReviewing,
		ReviewQueue: []string{"e1", "e2"},
	})

	state := h.GetState(42)
	assert.Equal(t, domain.StateReviewing, state.State)
	assert.Equal(t, []string{"e1", "e2"}, state.ReviewQueue)
	assert.False(t, state.UpdatedAt.IsZero())
}

func TestHandler_ResetState(t *testing.T) {
	h := newTestHandler()

	h.SetState(42, &domain.StateData{State: domain.StateWaitingTopic})
	h.ResetState(42)

	assert.Equal(t, domain.StateIdle, h.GetState(42).State)
}

func TestHandler_SweepStaleStates(t *testing.T) {
	h := newTestHandler()

	h.SetState(1, &domain.StateData{State: domain.StateReviewing})
	h.SetState(2, &domain.StateData{State: domain.StateAnswering})
	h.states[1].UpdatedAt = time.Now().Add(-2 * time.Hour)

	dropped := h.SweepStaleStates(time.Hour)

	assert.Equal(t, 1, dropped)
	assert.Equal(t, domain.StateIdle, h.GetState(1).State)
	assert.Equal(t, domain.StateAnswering, h.GetState(2).State)
}
