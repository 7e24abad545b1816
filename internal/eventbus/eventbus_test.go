package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan string, 1)
	b.Subscribe(EventNavigationRequested, func(e DomainEvent) {
		got <- e.(NavigationRequestedEvent).URL
	})

	b.Publish(NavigationRequestedEvent{URL: "/products/red-shoes"})

	select {
	case url := <-got:
		require.Equal(t, "/products/red-shoes", url)
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventPopupOpened, func(DomainEvent) { calls.Add(1) })
	unsubscribe()

	b.Publish(PopupOpenedEvent{})
	b.Close()

	require.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler was not called")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()

	require.NotPanics(t, func() { b.Publish(PopupClosedEvent{}) })
}
