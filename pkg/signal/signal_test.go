package signal

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatchCancelsOnSignal(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	ctx, cancel := watch(context.Background(), sigCh, false)
	defer cancel()

	sigCh <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after interrupt")
	}
}

func TestWatchCancelFunc(t *testing.T) {
	ctx, cancel := watch(context.Background(), make(chan os.Signal, 1), false)
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("cancel did not end the context")
	}
}

func TestWithInterruptFollowsParent(t *testing.T) {
	parent, stop := context.WithCancel(context.Background())
	ctx, cancel := WithInterrupt(parent)
	defer cancel()

	stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("child context outlived its parent")
	}
}
