// Package statsview serves live runtime statistics of the decoder, useful to
// watch memory and goroutine usage while large batches of ROMs are decoded.
package statsview

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// Address the statistics server listens on.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address of the statistics page.
func URL() string {
	return "http://" + Address + path
}

// Launch starts the statistics server for a batch of the given number of
// files. The server is shut down when the context is done, the returned
// channel is closed once it stopped.
func Launch(ctx context.Context, logger *log.Logger, files int) <-chan struct{} {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Stats server failed", log.Err(err))
		}
	}()
	go func() {
		<-ctx.Done()
		mgr.Stop()
	}()

	logger.Info("Stats server available", log.String("url", URL()), log.Int("files", files))
	return done
}
