package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/marcodamonte/containers/internal/script"
	"github.com/marcodamonte/containers/internal/workerpool"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

type options struct {
	workers int
	out     string
	timeout time.Duration
	verbose bool

	stdout io.Writer
	logger *log.Logger
}

// run loads every script up front, replays them on a worker pool and returns
// the process exit code.
func run(ctx context.Context, opts options, paths []string) int {
	logger := opts.logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	// Names key the report files and the failure list, so they must be unique.
	scripts := make([]*script.Script, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		s, err := script.Load(p)
		if err != nil {
			logger.Printf("[vecscript] %v", err)
			return exitUsage
		}
		if prev, ok := seen[s.Name]; ok {
			logger.Printf("[vecscript] %s: script name %q already used by %s", p, s.Name, prev)
			return exitUsage
		}
		seen[s.Name] = p
		scripts = append(scripts, s)
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	poolLogger := log.New(io.Discard, "", 0)
	if opts.verbose {
		poolLogger = logger
	}
	pool := workerpool.New(workerpool.Config{
		Workers:         opts.workers,
		QueueSize:       len(scripts),
		ShutdownTimeout: opts.timeout,
		Context:         ctx,
		Logger:          poolLogger,
	})

	var mu sync.Mutex
	emit := func(r *script.Report) error {
		if opts.out != "" {
			path, err := script.WriteReport(opts.out, r)
			if err != nil {
				return err
			}
			logger.Printf("[vecscript] %s: report written to %s", r.Name, path)
			return nil
		}
		data, err := r.Marshal()
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		_, err = fmt.Fprintf(opts.stdout, "---\n%s", data)
		return err
	}

	submitted := 0
	for _, s := range scripts {
		err := pool.Submit(ctx, workerpool.Job{
			Name: s.Name,
			Run: func(ctx context.Context) error {
				r, err := script.Run(ctx, s)
				if err != nil {
					return err
				}
				if err := emit(r); err != nil {
					return err
				}
				if !r.Passed() {
					return fmt.Errorf("%d expectation(s) failed: %s",
						len(r.Failures), strings.Join(r.Failures, "; "))
				}
				return nil
			},
		})
		if err != nil {
			logger.Printf("[vecscript] submit %s: %v", s.Name, err)
			break
		}
		submitted++
	}

	if err := pool.Shutdown(); errors.Is(err, workerpool.ErrShutdownTimeout) {
		logger.Printf("[vecscript] some scripts were cancelled (timeout %s)", opts.timeout)
	}

	failures := pool.Failures()
	for _, f := range failures {
		logger.Printf("[vecscript] FAIL %s: %v", f.Job, f.Err)
	}

	m := pool.Metrics()
	logger.Printf("[vecscript] scripts=%d submitted=%d passed=%d failed=%d",
		len(scripts), submitted, m.Succeeded, m.Failed)

	if submitted < len(scripts) || len(failures) > 0 {
		return exitFailed
	}
	return exitOK
}
