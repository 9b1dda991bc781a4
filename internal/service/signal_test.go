package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	lucidfeed "github.com/lucidfeed-wq/Lucid-Feed-sub003"
)

// Realtime must exit on cancellation alone and leave the caller's channels
// untouched, even when redis is unreachable. The socket handler keeps both
// channels open for the lifetime of the connection and relies on this.
func TestRealtimeStopsOnCancel(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { rdb.Close() })
	s := NewSignalService(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	input := make(chan []string)
	output := make(chan lucidfeed.Event)

	done := make(chan struct{})
	go func() {
		s.Realtime(ctx, input, output)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Realtime did not stop after cancellation")
	}

	// The channels still belong to the caller after shutdown.
	select {
	case _, ok := <-output:
		if !ok {
			t.Fatal("Realtime must not close the output channel")
		}
	default:
	}

	// A late subscribe attempt must not panic; with the pump gone it simply
	// finds no receiver.
	select {
	case input <- []string{"item1"}:
		t.Fatal("no receiver should remain after shutdown")
	default:
	}
}
