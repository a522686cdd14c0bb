package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := &Client{Hub: hub, Send: make(chan []byte, 16)}
	b := &Client{Hub: hub, Send: make(chan []byte, 16)}
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast(WebSocketMessage{Type: "state", Data: map[string]string{"theme": "dark"}})

	for _, client := range []*Client{a, b} {
		select {
		case raw := <-client.Send:
			var msg WebSocketMessage
			require.NoError(t, json.Unmarshal(raw, &msg))
			assert.Equal(t, "state", msg.Type)
		case <-time.After(time.Second):
			t.Fatal("client never received the broadcast")
		}
	}
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := &Client{Hub: hub, Send: make(chan []byte, 16)}
	hub.Register(c)
	hub.Unregister(c)

	// the hub closes the channel on unregister
	select {
	case _, open := <-c.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHub_EvictsClientWithFullBuffer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	stuck := &Client{Hub: hub, Send: make(chan []byte)} // no buffer, never read
	healthy := &Client{Hub: hub, Send: make(chan []byte, 16)}
	hub.Register(stuck)
	hub.Register(healthy)

	hub.Broadcast(WebSocketMessage{Type: "state"})

	select {
	case _, open := <-stuck.Send:
		assert.False(t, open, "stuck client should have been dropped")
	case <-time.After(time.Second):
		t.Fatal("stuck client was not evicted")
	}

	select {
	case <-healthy.Send:
	case <-time.After(time.Second):
		t.Fatal("healthy client never received the broadcast")
	}
}
