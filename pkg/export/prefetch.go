package export

import (
	"context"
)

// pendingRecord carries a load happening ahead of consumption. The result
// channel is buffered so an abandoned read never blocks its goroutine.
type pendingRecord struct {
	done chan FileRecord
}

// prefetchRecords loads the given paths with up to window reads in flight,
// delivering records strictly in input order. Ordering is a correctness
// invariant of the pipeline; the read-ahead is purely a performance
// optimization. The returned channel closes after the last record, or early
// when ctx is cancelled.
func prefetchRecords(ctx context.Context, loader *Loader, paths []string, window int) <-chan FileRecord {
	if window < 1 {
		window = 1
	}

	queue := make(chan pendingRecord, window-1)
	out := make(chan FileRecord)

	go func() {
		defer close(queue)
		for _, p := range paths {
			item := pendingRecord{done: make(chan FileRecord, 1)}
			go func(path string) {
				item.done <- loader.Load(path)
			}(p)

			select {
			case queue <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		defer close(out)
		for item := range queue {
			select {
			case out <- <-item.done:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
