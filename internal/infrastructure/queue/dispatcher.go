package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes role-change audit records to a fixed set of workers using
// consistent hashing on the subject email, guaranteeing per-principal record
// ordering. Writes happen off the request path; a failed insert is logged and
// dropped rather than failing the originating operation.
type Dispatcher struct {
	workers []chan domain.RoleAudit
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.RoleAudit, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.RoleAudit, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a record to the worker responsible for its subject.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(a domain.RoleAudit) {
	d.workers[d.shardIndex(a.Subject)] <- a
}

// shardIndex maps a subject email deterministically to a worker index.
func (d *Dispatcher) shardIndex(subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subject))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.RoleAudit) {
	for {
		select {
		case <-ctx.Done():
			return
		case record, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &record); err != nil {
				d.log.Error().Err(err).
					Str("subject", record.Subject).
					Str("action", record.Action).
					Int("worker_id", id).
					Msg("audit record insert failed")
			}
		}
	}
}
