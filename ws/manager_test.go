package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(id string) *Client {
	return &Client{ID: id, Send: make(chan Event, sendBufferSize)}
}

func register(t *testing.T, hub *Hub, c *Client) {
	t.Helper()
	hub.register <- c
	require.Eventually(t, func() bool {
		return hub.IsConnected(c.ID)
	}, time.Second, 5*time.Millisecond)
}

func TestHub_RegisterAndCount(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	register(t, hub, newTestClient("u1"))
	register(t, hub, newTestClient("u2"))

	assert.Equal(t, 2, hub.ClientCount())
	assert.True(t, hub.IsConnected("u1"))
	assert.False(t, hub.IsConnected("u3"))
}

func TestHub_PublishToDeliversToOneClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	target := newTestClient("u1")
	other := newTestClient("u2")
	register(t, hub, target)
	register(t, hub, other)

	hub.PublishTo("u1", NewEvent(EventNewApplication, "someone applied", map[string]string{"job_id": "j1"}))

	select {
	case event := <-target.Send:
		assert.Equal(t, EventNewApplication, event.Kind)
		assert.Equal(t, "j1", event.Data["job_id"])
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("target client did not receive the event")
	}

	select {
	case <-other.Send:
		t.Fatal("event leaked to another client")
	default:
	}
}

func TestHub_PublishToUnknownClientIsNoop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	hub.PublishTo("nobody", NewEvent(EventJobStatusUpdate, "msg", nil))
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := newTestClient("u1")
	b := newTestClient("u2")
	register(t, hub, a)
	register(t, hub, b)

	hub.Publish(NewEvent(EventJobPosted, "new job", map[string]string{"job_id": "j1"}))

	for _, c := range []*Client{a, b} {
		select {
		case event := <-c.Send:
			assert.Equal(t, EventJobPosted, event.Kind)
		case <-time.After(time.Second):
			t.Fatalf("client %s did not receive the broadcast", c.ID)
		}
	}
}

func TestHub_DuplicateRegisterReplacesConnection(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := newTestClient("u1")
	second := newTestClient("u1")
	register(t, hub, first)

	hub.register <- second
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-first.Send:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond, "old client's channel should be closed")

	assert.Equal(t, 1, hub.ClientCount())

	hub.PublishTo("u1", NewEvent(EventJobStatusUpdate, "update", nil))
	select {
	case <-second.Send:
	case <-time.After(time.Second):
		t.Fatal("replacement client did not receive the event")
	}
}

// A targeted publish must survive the account reconnecting at the same
// moment: the reconnect closes the old send channel, and a send on a closed
// channel would panic inside the request goroutine that published.
func TestHub_PublishToDuringReconnectDoesNotPanic(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	register(t, hub, newTestClient("u1"))

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					hub.PublishTo("u1", NewEvent(EventNewApplication, "someone applied", nil))
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		hub.register <- newTestClient("u1")
	}
	close(done)
	wg.Wait()

	assert.True(t, hub.IsConnected("u1"))
}

func TestHub_UnregisterOnlyRemovesCurrentClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := newTestClient("u1")
	second := newTestClient("u1")
	register(t, hub, first)
	hub.register <- second
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	// The stale client disconnecting must not tear down the replacement.
	hub.unregister <- first
	time.Sleep(20 * time.Millisecond)
	assert.True(t, hub.IsConnected("u1"))

	hub.unregister <- second
	require.Eventually(t, func() bool { return !hub.IsConnected("u1") }, time.Second, 5*time.Millisecond)
}
