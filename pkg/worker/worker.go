package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/VladPetriv/finance_tracker/pkg/logger"
)

type job[T any] struct {
	ID   string
	Data T
}

// Func is a function that handles a worker job.
type Func[T any] func(ctx context.Context, id string, data T) error

// Pool is a worker pool.
type Pool[T any] struct {
	logger       *logger.Logger
	workersCount int
	handlerFunc  Func[T]
	jobs         chan job[T]
	wg           *sync.WaitGroup
	dedup        map[string]struct{}
	mu           *sync.Mutex
	errs         []error
}

// NewPool creates a new worker pool.
func NewPool[T any](logger *logger.Logger, workersCount int, handlerFunc Func[T]) *Pool[T] {
	if workersCount < 1 {
		workersCount = 1
	}

	return &Pool[T]{
		logger:       logger,
		workersCount: workersCount,
		handlerFunc:  handlerFunc,
		jobs:         make(chan job[T]),
		wg:           &sync.WaitGroup{},
		dedup:        make(map[string]struct{}),
		mu:           &sync.Mutex{},
	}
}

// Start starts the number of workers that were passed in constructor.
func (p *Pool[T]) Start(ctx context.Context) {
	for range p.workersCount {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Err(ctx.Err()).Msg("worker stopping due to context cancellation")
			p.mu.Lock()
			p.errs = append(p.errs, ctx.Err())
			p.mu.Unlock()
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			err := p.handlerFunc(ctx, job.ID, job.Data)
			if err != nil {
				p.logger.Error().Err(err).Str("jobID", job.ID).Msg("handle job")
			}

			p.mu.Lock()
			if err != nil {
				p.errs = append(p.errs, fmt.Errorf("job %s: %w", job.ID, err))
			}
			delete(p.dedup, job.ID)
			p.mu.Unlock()
		}
	}
}

// Stop stops the worker pool and waits for running jobs.
// Returns all errors returned by the handler, joined together.
func (p *Pool[T]) Stop() error {
	close(p.jobs)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	return errors.Join(p.errs...)
}

// AddJob adds a new job to the worker pool.
// Jobs with an id that is already queued or running are skipped.
// Returns false when the job was not accepted because ctx is done.
func (p *Pool[T]) AddJob(ctx context.Context, id string, data T) bool {
	p.mu.Lock()
	_, ok := p.dedup[id]
	if ok {
		p.mu.Unlock()
		return true
	}
	p.dedup[id] = struct{}{}
	p.mu.Unlock()

	select {
	case p.jobs <- job[T]{ID: id, Data: data}:
		return true
	case <-ctx.Done():
		return false
	}
}
