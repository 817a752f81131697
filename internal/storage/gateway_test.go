package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/jordanwest/daykeep/internal/store"
)

type recordingProvider struct {
	mu     sync.Mutex
	saves  []store.State
	clears int
}

func (p *recordingProvider) Init() error  { return nil }
func (p *recordingProvider) Close() error { return nil }
func (p *recordingProvider) Load() (store.State, error) {
	return store.NewState(), nil
}
func (p *recordingProvider) Save(state store.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves = append(p.saves, state)
	return nil
}
func (p *recordingProvider) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clears++
	return nil
}
func (p *recordingProvider) GetConfigPath() string { return "" }

func (p *recordingProvider) snapshot() ([]store.State, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	saves := make([]store.State, len(p.saves))
	copy(saves, p.saves)
	return saves, p.clears
}

func TestGatewayCoalescesRapidWrites(t *testing.T) {
	provider := &recordingProvider{}
	gw := NewGatewayWithDelay(provider, 20*time.Millisecond)

	st := store.New(store.NewState())
	gw.Attach(st)

	st.ToggleHabit("breathing")
	st.ToggleHabit("light")
	st.ToggleHabit("food")

	time.Sleep(100 * time.Millisecond)

	saves, _ := provider.snapshot()
	if len(saves) != 1 {
		t.Fatalf("expected 1 coalesced write, got %d", len(saves))
	}
	day := saves[0].Days[dayKeyOf(saves[0])]
	if len(day.Habits) != 3 {
		t.Errorf("expected last snapshot with 3 habits, got %v", day.Habits)
	}
}

func dayKeyOf(state store.State) string {
	for k := range state.Days {
		return k
	}
	return ""
}

func TestGatewayFlushWritesImmediately(t *testing.T) {
	provider := &recordingProvider{}
	gw := NewGatewayWithDelay(provider, time.Hour)

	gw.Schedule(store.NewState())
	if err := gw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	saves, _ := provider.snapshot()
	if len(saves) != 1 {
		t.Fatalf("expected immediate write on flush, got %d", len(saves))
	}
	// Nothing pending afterwards.
	if err := gw.Flush(); err != nil {
		t.Fatal(err)
	}
	saves, _ = provider.snapshot()
	if len(saves) != 1 {
		t.Errorf("idle flush wrote again, saves = %d", len(saves))
	}
}

func TestGatewayResetCancelsPendingWrite(t *testing.T) {
	provider := &recordingProvider{}
	gw := NewGatewayWithDelay(provider, 20*time.Millisecond)

	st := store.New(store.NewState())
	gw.Attach(st)

	st.ToggleHabit("breathing")
	st.ResetAll()

	time.Sleep(100 * time.Millisecond)

	saves, clears := provider.snapshot()
	if clears != 1 {
		t.Errorf("expected 1 clear, got %d", clears)
	}
	if len(saves) != 0 {
		t.Errorf("stale debounced write resurrected cleared data: %v", saves)
	}
}

func TestGatewayIdleDoesNothing(t *testing.T) {
	provider := &recordingProvider{}
	gw := NewGatewayWithDelay(provider, 10*time.Millisecond)

	gw.Attach(store.New(store.NewState()))

	time.Sleep(50 * time.Millisecond)
	saves, clears := provider.snapshot()
	if len(saves) != 0 || clears != 0 {
		t.Errorf("idle gateway touched provider: saves=%d clears=%d", len(saves), clears)
	}
}
