package sizetree

import "sync/atomic"

// scheduler is the bounded worker-lane pool of §4.E. It accepts a task iff
// fewer than its limit are currently in flight, tracking that count with a
// single atomic integer rather than a buffered-channel semaphore so
// trySpawn never blocks.
type scheduler struct {
	limit    int32
	inFlight atomic.Int32
}

func newScheduler(maxThreads int) *scheduler {
	if maxThreads < 1 {
		maxThreads = 1
	}
	return &scheduler{limit: int32(maxThreads)}
}

// future is the handle to a task scheduled via trySpawn.
type future struct {
	done chan *Node
}

func (f *future) await() *Node {
	return <-f.done
}

// trySpawn accepts task iff the in-flight count is below the pool's limit,
// atomically reserving a slot before starting the goroutine. On rejection
// it returns (nil, false) and the caller is expected to run the work
// inline instead.
func (s *scheduler) trySpawn(task func() *Node) (*future, bool) {
	for {
		cur := s.inFlight.Load()
		if cur >= s.limit {
			return nil, false
		}
		if s.inFlight.CompareAndSwap(cur, cur+1) {
			break
		}
	}

	f := &future{done: make(chan *Node, 1)}
	go func() {
		defer s.inFlight.Add(-1)
		f.done <- task()
	}()
	return f, true
}
