// Package state holds the single weather state slot the dashboard renders.
package state

import (
	"sync"

	"github.com/katiamach/weather-dashboard-api/internal/model"
)

// Holder guards the weather state. Only the controller writes it.
type Holder struct {
	mu    sync.RWMutex
	state model.WeatherState
}

// NewHolder creates an idle Holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Snapshot returns a copy of the current state.
func (h *Holder) Snapshot() model.WeatherState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state.Clone()
}

// Update applies fn to the state under the write lock and returns the result.
func (h *Holder) Update(fn func(s *model.WeatherState)) model.WeatherState {
	h.mu.Lock()
	defer h.mu.Unlock()

	fn(&h.state)

	return h.state.Clone()
}
