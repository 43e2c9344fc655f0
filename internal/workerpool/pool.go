// Package workerpool runs named jobs on a fixed number of goroutines, with
// graceful shutdown, context-based cancellation, atomic counters and a record
// of which jobs failed. vecscript uses it to replay many scripts at once.
package workerpool

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Job is one named unit of work. Run receives the pool's context so it can
// stop early when the pool is cancelled.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Failure records a job that returned an error.
type Failure struct {
	Job string
	Err error
}

// Config holds pool construction parameters.
type Config struct {
	// Workers is the number of goroutines consuming jobs. Defaults to 1.
	Workers int

	// QueueSize is the capacity of the job channel. 0 makes Submit block
	// until a worker is free.
	QueueSize int

	// ShutdownTimeout bounds how long Shutdown waits for queued and running
	// jobs before cancelling them. Defaults to 30 s.
	ShutdownTimeout time.Duration

	// Context is the parent of the context handed to jobs; cancelling it
	// cancels every job. Defaults to context.Background().
	Context context.Context

	// Logger receives pool and worker activity. Defaults to log.Default().
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Workers <= 0 {
		out.Workers = 1
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = 30 * time.Second
	}
	if out.Context == nil {
		out.Context = context.Background()
	}
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

// Metrics is a snapshot of the pool counters.
type Metrics struct {
	Submitted int64 // jobs accepted by Submit
	Started   int64 // jobs a worker picked up
	Succeeded int64 // jobs that returned nil
	Failed    int64 // jobs that returned an error or were skipped after cancel
	Dropped   int64 // jobs rejected by Submit
}

// Pool is a fixed-size worker pool.
//
//	pool := workerpool.New(cfg)
//	pool.Submit(ctx, job)   // blocks while the queue is full
//	pool.Shutdown()         // stop accepting, drain, cancel stragglers
//	pool.Failures()
type Pool struct {
	cfg     Config
	jobs    chan Job
	wg      sync.WaitGroup
	metrics Metrics

	workerCtx     context.Context
	cancelWorkers context.CancelFunc

	once   sync.Once
	closed atomic.Bool

	mu       sync.Mutex
	failures []Failure
}

// New creates a Pool and starts its workers.
func New(cfg Config) *Pool {
	cfg = cfg.withDefaults()
	workerCtx, cancel := context.WithCancel(cfg.Context)

	p := &Pool{
		cfg:           cfg,
		jobs:          make(chan Job, cfg.QueueSize),
		workerCtx:     workerCtx,
		cancelWorkers: cancel,
	}

	p.cfg.Logger.Printf("[pool] starting %d workers (queue=%d, shutdownTimeout=%s)",
		cfg.Workers, cfg.QueueSize, cfg.ShutdownTimeout)

	for i := 0; i < cfg.Workers; i++ {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	return p
}

// Submit enqueues job, blocking while the queue is full. It returns
// ErrPoolClosed once Shutdown has begun, or the caller's context error if
// ctx ends first.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	if p.closed.Load() {
		atomic.AddInt64(&p.metrics.Dropped, 1)
		return ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		atomic.AddInt64(&p.metrics.Submitted, 1)
		return nil
	case <-ctx.Done():
		atomic.AddInt64(&p.metrics.Dropped, 1)
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs, lets the workers drain the queue and waits
// up to ShutdownTimeout. Past the timeout it cancels the job context, waits
// for the workers to exit and returns ErrShutdownTimeout.
//
// Shutdown must not race with Submit; call it once the producers are done.
// Later calls are no-ops.
func (p *Pool) Shutdown() error {
	var shutdownErr error

	p.once.Do(func() {
		p.cfg.Logger.Printf("[pool] shutdown initiated")
		p.closed.Store(true)
		close(p.jobs)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.cfg.Logger.Printf("[pool] shutdown complete")
		case <-time.After(p.cfg.ShutdownTimeout):
			p.cfg.Logger.Printf("[pool] shutdown timeout (%s) elapsed, cancelling jobs", p.cfg.ShutdownTimeout)
			p.cancelWorkers()
			<-done
			shutdownErr = ErrShutdownTimeout
		}
		p.cancelWorkers()
	})

	return shutdownErr
}

// Metrics returns the current counters. Each field is read atomically; the
// fields are not read together under a lock.
func (p *Pool) Metrics() Metrics {
	return Metrics{
		Submitted: atomic.LoadInt64(&p.metrics.Submitted),
		Started:   atomic.LoadInt64(&p.metrics.Started),
		Succeeded: atomic.LoadInt64(&p.metrics.Succeeded),
		Failed:    atomic.LoadInt64(&p.metrics.Failed),
		Dropped:   atomic.LoadInt64(&p.metrics.Dropped),
	}
}

// Failures lists the failed jobs sorted by name.
func (p *Pool) Failures() []Failure {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := append([]Failure(nil), p.failures...)
	sort.Slice(out, func(i, j int) bool { return out[i].Job < out[j].Job })
	return out
}

func (p *Pool) fail(job string, err error) {
	atomic.AddInt64(&p.metrics.Failed, 1)
	p.mu.Lock()
	p.failures = append(p.failures, Failure{Job: job, Err: err})
	p.mu.Unlock()
}

func (p *Pool) runWorker(id int) {
	defer p.wg.Done()
	p.cfg.Logger.Printf("[worker %d] started", id)

	for job := range p.jobs {
		if err := p.workerCtx.Err(); err != nil {
			p.cfg.Logger.Printf("[worker %d] skipping %s: %v", id, job.Name, err)
			p.fail(job.Name, err)
			continue
		}

		atomic.AddInt64(&p.metrics.Started, 1)
		if err := job.Run(p.workerCtx); err != nil {
			p.cfg.Logger.Printf("[worker %d] %s failed: %v", id, job.Name, err)
			p.fail(job.Name, err)
			continue
		}
		atomic.AddInt64(&p.metrics.Succeeded, 1)
	}

	p.cfg.Logger.Printf("[worker %d] exited", id)
}

// Sentinel errors returned by the pool.
var (
	ErrPoolClosed      = errors.New("worker pool is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; jobs were cancelled")
)
