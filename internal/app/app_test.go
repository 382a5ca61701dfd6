package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunInBackground_StopWaitsForRun(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool

	stop := runInBackground(context.Background(), func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		// зачисление, начатое до остановки, дописывается.
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	assert.False(t, finished.Load())
	stop()
	assert.True(t, finished.Load(), "stop должен дождаться завершения run")
}

func TestRunInBackground_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	stop := runInBackground(parent, func(ctx context.Context) {
		<-ctx.Done()
		close(done)
	})
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not observe parent cancellation")
	}
	stop()
}
