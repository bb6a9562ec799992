package web

import (
	"testing"
	"time"
)

func TestHubBroadcastReachesClients(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.register <- c

	h.Broadcast([]byte("pos"))

	select {
	case msg := <-c.send:
		if string(msg) != "pos" {
			t.Fatalf("got %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast never arrived")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := &Client{hub: h, send: make(chan []byte)} // unbuffered, never read
	h.register <- c

	h.Broadcast([]byte("one"))

	select {
	case _, ok := <-c.send:
		if ok {
			t.Fatal("expected the slow client's channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("slow client was never dropped")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.register <- c
	h.unregister <- c

	select {
	case _, ok := <-c.send:
		if ok {
			t.Fatal("send channel should be closed after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("unregister never took effect")
	}
}
