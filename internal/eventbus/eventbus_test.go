package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversInOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	var got []uint64
	b.Subscribe(EventSearchStarted, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(SearchStartedEvent).Generation)
	})

	for i := uint64(1); i <= 5; i++ {
		b.Publish(SearchStartedEvent{Generation: i, Query: "ap"})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 5
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	count := 0
	unsubscribe := b.Subscribe(EventSearchCleared, func(DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		count++
	})
	done := make(chan struct{}, 4)
	b.Subscribe(EventSearchCleared, func(DomainEvent) { done <- struct{}{} })

	b.Publish(SearchClearedEvent{})
	<-done
	unsubscribe()
	b.Publish(SearchClearedEvent{})
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)
	defer b.Close()

	done := make(chan string, 1)
	b.Subscribe(EventIngredientDropped, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventIngredientDropped, func(e DomainEvent) {
		done <- e.(IngredientDroppedEvent).ID
	})

	b.Publish(IngredientDroppedEvent{ID: "source-apple", Name: "apple"})

	select {
	case id := <-done:
		assert.Equal(t, "source-apple", id)
	case <-time.After(time.Second):
		t.Fatal("second handler did not run after panic")
	}
}

func TestPublishAfterCloseIsNoop(t *testing.T) {
	b := New(nil)
	b.Close()
	assert.NotPanics(t, func() { b.Publish(SearchClearedEvent{}) })
}
