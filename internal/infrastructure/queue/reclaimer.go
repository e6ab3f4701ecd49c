// Package queue runs the background reclaim of upload files that no product
// references anymore.
package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/investasi/catalogue-api/internal/api/metrics"
	"github.com/investasi/catalogue-api/internal/infrastructure/storage"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Reclaimer deletes stored files on a fixed set of workers fed from one
// buffered channel. Deletion has no ordering requirement, so the workers
// share a queue instead of sharding.
type Reclaimer struct {
	queue   chan string
	store   *storage.Store
	workers int
	log     zerolog.Logger
}

// NewReclaimer creates a Reclaimer with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewReclaimer(numWorkers int, store *storage.Store, log zerolog.Logger) *Reclaimer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Reclaimer{
		queue:   make(chan string, channelBuffer),
		store:   store,
		workers: numWorkers,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (r *Reclaimer) Start(ctx context.Context) {
	for i := 0; i < r.workers; i++ {
		go r.runWorker(ctx)
	}
}

// Reclaim enqueues filenames for deletion. Best effort: when the queue is
// full the filename is dropped and counted, never blocking a request.
func (r *Reclaimer) Reclaim(filenames ...string) {
	for _, name := range filenames {
		select {
		case r.queue <- name:
			metrics.ReclaimQueueDepth.Set(float64(len(r.queue)))
		default:
			metrics.FileReclaimErrorsTotal.Inc()
			r.log.Warn().Str("filename", name).Msg("reclaim queue full, file orphaned")
		}
	}
}

func (r *Reclaimer) runWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case name, ok := <-r.queue:
			if !ok {
				return
			}
			metrics.ReclaimQueueDepth.Set(float64(len(r.queue)))
			if err := r.store.Remove(name); err != nil {
				metrics.FileReclaimErrorsTotal.Inc()
				r.log.Error().Err(err).Str("filename", name).Msg("file reclaim failed")
				continue
			}
			metrics.FilesReclaimedTotal.Inc()
		}
	}
}
