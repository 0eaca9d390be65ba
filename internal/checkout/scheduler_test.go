package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/navigation"
)

func newTimerFlow(t *testing.T, processing, redirect time.Duration) (*Flow, *cart.MemoryStore, *navigation.History) {
	t.Helper()
	store := cart.NewMemoryStore()
	require.NoError(t, store.Add(domain.CartItem{ID: 1, Title: "A", Price: domain.NewAmount(4), Quantity: domain.NewAmount(1)}))
	nav := navigation.NewHistory()
	f := NewFlow(store, nav, WithScheduler(TimerScheduler{}), WithDelays(processing, redirect))
	t.Cleanup(f.Close)
	return f, store, nav
}

func TestTimerScheduler_Fires(t *testing.T) {
	done := make(chan struct{})
	TimerScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTimerScheduler_StopPreventsRun(t *testing.T) {
	fired := make(chan struct{}, 1)
	task := TimerScheduler{}.AfterFunc(20*time.Millisecond, func() { fired <- struct{}{} })
	assert.True(t, task.Stop())

	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFlow_RealTimersReachDone(t *testing.T) {
	f, store, nav := newTimerFlow(t, 5*time.Millisecond, 5*time.Millisecond)
	require.NoError(t, f.Submit())

	assert.Eventually(t, func() bool { return f.State() == StateDone }, time.Second, time.Millisecond)
	assert.Empty(t, store.Items())
	assert.Equal(t, []string{navigation.Home}, nav.Entries())
}

func TestFlow_CloseWithRealTimerPending(t *testing.T) {
	f, store, nav := newTimerFlow(t, 40*time.Millisecond, 5*time.Millisecond)
	require.NoError(t, f.Submit())
	f.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, StateProcessing, f.State())
	assert.Len(t, store.Items(), 1)
	assert.Empty(t, nav.Entries())
}

func TestFlow_CloseDuringSuccessWithRealTimer(t *testing.T) {
	f, _, nav := newTimerFlow(t, time.Millisecond, 50*time.Millisecond)
	require.NoError(t, f.Submit())
	require.Eventually(t, func() bool { return f.State() == StateSuccess }, time.Second, time.Millisecond)
	f.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, StateSuccess, f.State())
	assert.Empty(t, nav.Entries())
}
