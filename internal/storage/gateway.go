package storage

import (
	"sync"
	"time"

	"github.com/jordanwest/daykeep/internal/constants"
	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/store"
)

// Gateway is the debounced write-through between the store and a Provider.
// Rapid successive mutations coalesce into one write after a quiet period;
// a reset cancels any pending write before clearing the backend so a stale
// timer can never resurrect cleared data. Write failures are swallowed (and
// logged): the in-memory state stays authoritative until the next write
// succeeds.
type Gateway struct {
	mu       sync.Mutex
	provider Provider
	delay    time.Duration
	timer    *time.Timer
	pending  *store.State
}

// NewGateway wraps a provider with the standard debounce interval.
func NewGateway(provider Provider) *Gateway {
	return &Gateway{
		provider: provider,
		delay:    constants.DebounceInterval,
	}
}

// NewGatewayWithDelay is NewGateway with an explicit debounce interval,
// for tests.
func NewGatewayWithDelay(provider Provider, delay time.Duration) *Gateway {
	return &Gateway{
		provider: provider,
		delay:    delay,
	}
}

// Attach subscribes the gateway to a store's event feed. Mutations touching
// days or settings schedule a debounced write; a reset clears durable
// storage synchronously.
func (g *Gateway) Attach(st *store.Store) {
	st.Subscribe(func(ev store.Event) {
		switch ev.Kind {
		case store.EventReset:
			if err := g.Reset(); err != nil {
				logger.Error("Failed to clear storage on reset", "error", err)
			}
		case store.EventMutate:
			if ev.Days || ev.Settings {
				g.Schedule(ev.State)
			}
		}
	})
}

// Schedule records state as the pending write and (re)starts the debounce
// timer.
func (g *Gateway) Schedule(state store.State) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pending = &state
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(g.delay, g.flushPending)
}

func (g *Gateway) flushPending() {
	g.mu.Lock()
	state := g.pending
	g.pending = nil
	g.timer = nil
	g.mu.Unlock()

	if state == nil {
		return
	}
	if err := g.provider.Save(*state); err != nil {
		logger.Error("Failed to persist state", "error", err)
	}
}

// Flush writes any pending state immediately, cancelling the timer. Called
// at process exit so the last mutations are not lost to the debounce window.
func (g *Gateway) Flush() error {
	g.mu.Lock()
	state := g.pending
	g.pending = nil
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.mu.Unlock()

	if state == nil {
		return nil
	}
	return g.provider.Save(*state)
}

// Reset cancels any pending write and clears the backend synchronously.
func (g *Gateway) Reset() error {
	g.mu.Lock()
	g.pending = nil
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.mu.Unlock()

	return g.provider.Clear()
}
