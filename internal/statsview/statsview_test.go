package statsview

import (
	"context"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestURL(t *testing.T) {
	assert.Equal(t, "http://localhost:12600/debug/statsview", URL())
}

func TestLaunchStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := Launch(ctx, log.NewTestLogger(t), 3)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stats server did not stop")
	}
}
