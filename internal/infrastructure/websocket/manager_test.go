package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m.Start(ctx)
	return m
}

func register(t *testing.T, m *Manager, id string) *Client {
	t.Helper()
	client := &Client{ID: id, AdminUID: "admin-1", Send: make(chan []byte, 8)}
	m.Register <- client
	require.Eventually(t, func() bool {
		m.mutex.RLock()
		defer m.mutex.RUnlock()
		_, ok := m.clients[id]
		return ok
	}, time.Second, 5*time.Millisecond)
	return client
}

func TestBroadcastReachesAllClients(t *testing.T) {
	m := startManager(t)
	c1 := register(t, m, "c1")
	c2 := register(t, m, "c2")

	m.Broadcast([]byte("frame"))

	for _, client := range []*Client{c1, c2} {
		select {
		case msg := <-client.Send:
			assert.Equal(t, "frame", string(msg))
		case <-time.After(time.Second):
			t.Fatalf("client %s never received the broadcast", client.ID)
		}
	}
}

func TestSendTargetsOneClient(t *testing.T) {
	m := startManager(t)
	c1 := register(t, m, "c1")
	c2 := register(t, m, "c2")

	m.Send("c1", []byte("frame"))

	select {
	case msg := <-c1.Send:
		assert.Equal(t, "frame", string(msg))
	case <-time.After(time.Second):
		t.Fatal("targeted client never received the frame")
	}

	select {
	case <-c2.Send:
		t.Fatal("frame leaked to an unrelated client")
	default:
	}
}

func TestSendToUnknownClientIsNoop(t *testing.T) {
	m := startManager(t)
	m.Send("missing", []byte("frame"))
}

func TestUnregisterClosesSendAndDropsSelection(t *testing.T) {
	m := startManager(t)
	client := register(t, m, "c1")
	m.setSelection("c1", "u1")

	m.Unregister <- client

	select {
	case _, ok := <-client.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was never closed")
	}

	require.Eventually(t, func() bool {
		_, ok := m.Selections()["c1"]
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestSelectionsReturnsCopy(t *testing.T) {
	m := startManager(t)
	m.setSelection("c1", "u1")

	selections := m.Selections()
	selections["c1"] = "tampered"

	assert.Equal(t, "u1", m.Selections()["c1"])
}

func TestSlowClientDoesNotBlockBroadcast(t *testing.T) {
	m := startManager(t)
	slow := &Client{ID: "slow", AdminUID: "admin-1", Send: make(chan []byte)}
	m.Register <- slow
	fast := register(t, m, "fast")

	m.Broadcast([]byte("frame"))

	select {
	case msg := <-fast.Send:
		assert.Equal(t, "frame", string(msg))
	case <-time.After(time.Second):
		t.Fatal("fast client starved by a slow one")
	}
}
