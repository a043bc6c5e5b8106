package renderer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// rowCounter hands out row indices. Each claim is a single atomic add, so
// faster workers simply claim more rows.
type rowCounter struct {
	next   atomic.Int64
	done   atomic.Int64
	height int64
}

// claim returns the next unclaimed row, or false once every row is taken
func (c *rowCounter) claim() (int, bool) {
	row := c.next.Add(1) - 1
	if row >= c.height {
		return 0, false
	}
	return int(row), true
}

// worker owns its generator and its finished rows; neither is shared
type worker struct {
	id     int
	random *rand.Rand
	rows   []RowResult
}

// runWorkers starts the pool and blocks until every row is finished or a
// worker fails. The first worker failure stops the others at their next claim.
func (rt *Raytracer) runWorkers(ctx context.Context) ([]RowResult, []int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	counter := &rowCounter{height: int64(rt.config.Height)}
	workers := make([]*worker, rt.config.Workers)
	errs := make([]error, rt.config.Workers)

	stopProgress := rt.startProgress(counter)

	var wg sync.WaitGroup
	for i := range workers {
		workers[i] = &worker{id: i, random: rt.workerRandom()}
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			if err := rt.runWorker(ctx, w, counter); err != nil {
				errs[w.id] = err
				cancel()
			}
		}(workers[i])
	}
	wg.Wait()
	stopProgress()

	rowsPerWorker := make([]int, len(workers))
	var rows []RowResult
	for i, w := range workers {
		rowsPerWorker[i] = len(w.rows)
		rows = append(rows, w.rows...)
	}

	return rows, rowsPerWorker, firstError(errs)
}

// firstError prefers a real worker failure over the cancellations it caused
func firstError(errs []error) error {
	var cancelled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, context.Canceled) {
			return err
		}
		if cancelled == nil {
			cancelled = err
		}
	}
	return cancelled
}

// runWorker claims and renders rows until none are left. A panic while
// tracing is recovered and returned as an error naming the row.
func (rt *Raytracer) runWorker(ctx context.Context, w *worker, counter *rowCounter) (err error) {
	row := -1
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("worker %d panicked on row %d: %w", w.id, row, e)
			} else {
				err = fmt.Errorf("worker %d panicked on row %d: %v", w.id, row, r)
			}
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var ok bool
		row, ok = counter.claim()
		if !ok {
			rt.logger.Debug("worker finished", "worker", w.id, "rows", len(w.rows))
			return nil
		}

		if rt.config.Deterministic {
			w.random.Seed(rt.config.Seed + int64(row))
		}

		w.rows = append(w.rows, RowResult{Row: row, Pixels: rt.renderRow(row, w.random)})
		counter.done.Add(1)
	}
}

// workerRandom returns a private generator for one worker. In
// deterministic mode it is reseeded per row, so the initial seed is unused.
func (rt *Raytracer) workerRandom() *rand.Rand {
	if rt.config.Deterministic {
		return rand.New(rand.NewSource(rt.config.Seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}

// startProgress reports finished rows on a ticker until the returned stop
// function is called. stop sends one final report.
func (rt *Raytracer) startProgress(counter *rowCounter) (stop func()) {
	if rt.config.Progress == nil {
		return func() {}
	}

	start := time.Now()
	report := func() {
		rt.config.Progress(Progress{
			RowsDone:  int(counter.done.Load()),
			TotalRows: int(counter.height),
			Elapsed:   time.Since(start),
		})
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(rt.config.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				report()
			}
		}
	}()

	return func() {
		close(done)
		<-finished
		report()
	}
}
