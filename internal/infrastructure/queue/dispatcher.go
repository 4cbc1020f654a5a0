// Package queue decouples the synchronous local write path from vendor
// write-throughs.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/api/metrics"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
	pushTimeout    = 45 * time.Second
)

// Dispatcher routes vendor push jobs to a fixed set of workers using
// consistent hashing on the shipment identifier, so pushes for one shipment
// execute in the order they were queued.
type Dispatcher struct {
	workers []chan ports.VendorPushJob
	pusher  ports.VendorPusher
	log     zerolog.Logger
	wg      sync.WaitGroup
	stop    sync.Once
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, pusher ports.VendorPusher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.VendorPushJob, numWorkers),
		pusher:  pusher,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.VendorPushJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channels until
// Stop closes them.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Stop closes the queues and blocks until every already-queued push has been
// attempted. Enqueue must not be called after Stop; the HTTP server is shut
// down first, so no new jobs can arrive.
func (d *Dispatcher) Stop() {
	d.stop.Do(func() {
		for _, ch := range d.workers {
			close(ch)
		}
	})
	d.wg.Wait()
}

// Enqueue sends a job to the worker responsible for its shipment. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.VendorPushJob) {
	idx := d.shardIndex(job.Identifier)
	d.workers[idx] <- job
	metrics.PushQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a shipment identifier deterministically to a worker index.
func (d *Dispatcher) shardIndex(identifier string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(id int, ch <-chan ports.VendorPushJob) {
	defer d.wg.Done()
	workerID := strconv.Itoa(id)
	for job := range ch {
		metrics.PushQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

		// Each push gets its own timeout, detached from any request context:
		// the operator's request already returned.
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		if err := d.pusher.PushToVendor(ctx, job); err != nil {
			d.log.Error().Err(err).
				Str("identifier", job.Identifier).
				Str("vendor", job.Vendor).
				Int("worker_id", id).
				Msg("vendor push failed")
		}
		cancel()
	}
}
