package async

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCloser struct {
	closed atomic.Int32
}

func (c *countingCloser) Close() error {
	c.closed.Add(1)
	return nil
}

func TestCloseOnDone_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &countingCloser{}
	returned := make(chan struct{})
	go func() {
		closeOnDone(ctx, make(chan struct{}), c)
		close(returned)
	}()

	cancel()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("closeOnDone did not return after cancel")
	}
	assert.Equal(t, int32(1), c.closed.Load())
}

func TestCloseOnDone_ReturnsWhenDone(t *testing.T) {
	c := &countingCloser{}
	done := make(chan struct{})
	returned := make(chan struct{})
	go func() {
		closeOnDone(context.Background(), done, c)
		close(returned)
	}()

	close(done)
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("closeOnDone leaked after done was closed")
	}
	assert.Zero(t, c.closed.Load())
}
