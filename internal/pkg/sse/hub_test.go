package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyThatUser(t *testing.T) {
	h := NewHub()

	ana, cleanupAna := h.Subscribe("ana")
	defer cleanupAna()
	luis, cleanupLuis := h.Subscribe("luis")
	defer cleanupLuis()

	n := h.Publish("ana", "SIGNED_IN", map[string]string{"session_id": "s1"})
	assert.Equal(t, 1, n)

	select {
	case ev := <-ana:
		assert.Equal(t, "SIGNED_IN", ev.Name)
		assert.False(t, ev.Timestamp.IsZero())
	default:
		t.Fatal("expected event for ana")
	}

	select {
	case ev := <-luis:
		t.Fatalf("unexpected event for luis: %v", ev)
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	h := NewHub()

	ch, cleanup := h.Subscribe("ana")
	require.Equal(t, 1, h.SubscriberCount("ana"))

	cleanup()
	cleanup()
	assert.Equal(t, 0, h.SubscriberCount("ana"))

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.Publish("ana", "SIGNED_OUT", nil))
}

func TestHub_FullBufferDropsEvents(t *testing.T) {
	h := NewHub()
	_, cleanup := h.Subscribe("ana")
	defer cleanup()

	for i := 0; i < subscriberBuffer; i++ {
		require.Equal(t, 1, h.Publish("ana", "ping", nil))
	}
	assert.Equal(t, 0, h.Publish("ana", "ping", nil))
}
