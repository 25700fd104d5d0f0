package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("activity")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("activity")
	defer cleanup2()

	hub.Publish("activity", Event{Name: "attendance.check_in", Data: "payload"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, "attendance.check_in", event.Name)
			assert.Equal(t, "payload", event.Data)
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestHubTopicsAreIsolated(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("activity")
	defer cleanup()

	hub.Publish("other", Event{Name: "noise"})

	select {
	case <-ch:
		t.Fatal("event leaked across topics")
	default:
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("activity")
	require.Equal(t, 1, hub.SubscriberCount("activity"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("activity"))

	// Channel is closed after cleanup.
	_, open := <-ch
	assert.False(t, open)

	// Publishing afterwards must not panic.
	hub.Publish("activity", Event{Name: "late"})

	// Double cleanup is safe.
	cleanup()
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("activity")
	defer cleanup()

	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish("activity", Event{Name: "flood"})
	}

	assert.Equal(t, cap(ch), len(ch))
}
