package sigctx

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithTermination(t *testing.T) {
	t.Run("ParentCanceled", func(t *testing.T) {
		parent, cancel := context.WithCancel(t.Context())
		ctx, stop := WithTermination(parent)
		defer stop()

		cancel()
		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("Signal", func(t *testing.T) {
		ctx, stop := WithTermination(t.Context())
		defer stop()

		assert.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
			t.Fatal("context is not canceled by SIGTERM")
		}
	})
}
