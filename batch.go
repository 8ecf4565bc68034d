package xsdf

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime"
	"sync"

	"deedles.dev/xiter"
	"deedles.dev/xsdf/binimg"
)

// ComputeAll computes the fields of several independent images
// concurrently, running at most workers computations at a time. If
// workers is less than 1, GOMAXPROCS is used. The returned fields are
// in the same order as imgs.
//
// Each individual field is still computed sequentially. If ctx is
// canceled before every image has been started, no new computations
// are started and ctx.Err() is returned once the running ones have
// finished.
func ComputeAll[S Storage[S]](ctx context.Context, imgs iter.Seq[binimg.Image], workers int, opts ...Option) ([]*Field[S], error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		wg     sync.WaitGroup
		m      sync.Mutex
		fields []*Field[S]
		errs   []error
	)
	sem := make(chan struct{}, workers)

	var canceled error
schedule:
	for i, img := range xiter.Enumerate(imgs) {
		select {
		case <-ctx.Done():
			canceled = ctx.Err()
			break schedule
		case sem <- struct{}{}:
		}
		if err := ctx.Err(); err != nil {
			<-sem
			canceled = err
			break
		}

		m.Lock()
		fields = append(fields, nil)
		m.Unlock()

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			field, err := Compute[S](img, opts...)

			m.Lock()
			defer m.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("image %v: %w", i, err))
				return
			}
			fields[i] = field
		}()
	}
	wg.Wait()

	if canceled != nil {
		return nil, canceled
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return fields, nil
}
