package renderer

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scheduler is a chunked, work-stealing-free pool: a shared monotonic
// counter, a chunk size, and a fixed worker count. Each worker repeatedly
// claims a chunk under the counter's lock, then runs the callable over
// that chunk's indices outside the lock. A single callback goroutine
// invokes a progress callback in a loop until every chunk is claimed.
type Scheduler struct {
	ChunkSize int
	Workers   int

	mu      sync.Mutex
	counter int
	total   int
	done    bool
}

// NewScheduler creates a scheduler with the given chunk size. Workers
// defaults to runtime.NumCPU() when workers <= 0.
func NewScheduler(chunkSize, workers int) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{ChunkSize: chunkSize, Workers: workers}
}

// claim atomically reserves the next chunk of indices in [0, total),
// returning the half-open range [start, end) and whether it is non-empty.
func (s *Scheduler) claim() (start, end int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return 0, 0, false
	}

	start = s.counter
	end = s.counter + s.ChunkSize
	if end > s.total {
		end = s.total
	}
	s.counter = end

	if start >= end {
		s.done = true
		return 0, 0, false
	}
	return start, end, true
}

// isDone reports whether every index has been claimed.
func (s *Scheduler) isDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Run dispatches work over every index in [0, total), split across
// s.Workers goroutines claiming chunks from the shared counter. newWorker
// is called once per goroutine to build that goroutine's own work(i)
// closure, so each worker can own private state (a seeded *rand.Rand)
// without sharing it across goroutines. A separate goroutine invokes
// progress() in a loop until every chunk is claimed. The worker fleet and
// the progress goroutine are joined with an errgroup.Group rather than a
// bare sync.WaitGroup, since neither side of this join can actually fail;
// errgroup just gives Run a single Wait() instead of a WaitGroup plus a
// second done-channel for the progress goroutine. Run blocks until both
// exit.
func (s *Scheduler) Run(total int, newWorker func() func(i int), progress func()) {
	s.mu.Lock()
	s.counter = 0
	s.total = total
	s.done = total == 0
	s.mu.Unlock()

	var g errgroup.Group
	for w := 0; w < s.Workers; w++ {
		g.Go(func() error {
			work := newWorker()
			for {
				start, end, ok := s.claim()
				if !ok {
					return nil
				}
				for i := start; i < end; i++ {
					work(i)
				}
			}
		})
	}

	g.Go(func() error {
		for !s.isDone() {
			if progress != nil {
				progress()
			}
		}
		return nil
	})

	_ = g.Wait()
}
