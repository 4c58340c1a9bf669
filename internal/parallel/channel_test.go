package parallel

import (
	"context"
	"testing"
	"time"
)

// =============================================================================
// Send and receive
// =============================================================================

func TestChannel_SendRecv(t *testing.T) {
	c := NewChannel[int](1)
	if !c.Send(5) {
		t.Fatal("Send() = false on open channel")
	}
	v, ok := c.Recv(context.Background())
	if !ok || v != 5 {
		t.Errorf("Recv() = %d, %v; want 5, true", v, ok)
	}
}

// =============================================================================
// Hang-up and cancellation
// =============================================================================

func TestChannel_CloseUnblocksSender(t *testing.T) {
	c := NewChannel[int](0)

	done := make(chan bool, 1)
	go func() { done <- c.Send(1) }()

	time.Sleep(10 * time.Millisecond)
	c.Close()
	c.Close() // idempotent

	select {
	case ok := <-done:
		if ok {
			t.Error("Send() = true after receiver hung up")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("blocked sender was not released by Close")
	}

	if c.Send(2) {
		t.Error("Send() after Close = true")
	}
}

func TestChannel_RecvContext(t *testing.T) {
	c := NewChannel[int](0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok := c.Recv(ctx); ok {
		t.Error("Recv() = true with cancelled context")
	}
	if _, ok := c.TryRecv(); ok {
		t.Error("TryRecv() = true on empty channel")
	}
}
