package onetrust

import (
	"context"
	"sync"

	"github.com/complykit/trustreport/pkg/errors"
)

// fanOut fetches one detail record per ID over a bounded worker pool. Results
// land in a slice positionally aligned with ids; a fetch that returns
// (nil, nil) marks an anticipated miss and leaves a nil slot. Any hard error
// cancels the remaining work and fails the whole batch.
func fanOut[T any](ctx context.Context, ids []string, limit int, fetch func(context.Context, string) (*T, error)) ([]*T, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > len(ids) {
		limit = len(ids)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*T, len(ids))
	jobs := make(chan int)
	errs := make(chan error, limit)

	var wg sync.WaitGroup
	for w := 0; w < limit; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				item, err := fetch(ctx, ids[i])
				if err != nil {
					errs <- err
					cancel()
					return
				}
				results[i] = item
			}
		}()
	}

dispatch:
	for i := range ids {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	var failures []error
	for err := range errs {
		failures = append(failures, err)
	}
	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
