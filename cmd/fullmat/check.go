package main

import (
	"runtime"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/fjourdes/fullmat"
)

func getProcNum(jobs int) int {
	if jobs <= 0 {
		return runtime.NumCPU()
	}
	return jobs
}

// checkFiles reads every path with a bounded number of goroutines and
// reports how many of them failed.
func checkFiles(logger *zap.Logger, paths []string, jobs int, opts ...fullmat.ReadOption) error {
	var failed int64

	p := pool.New().WithMaxGoroutines(getProcNum(jobs)).WithErrors()
	for _, path := range paths {
		path := path
		p.Go(func() error {
			m, err := fullmat.Read(path, opts...)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				logger.Warn("invalid matrix file",
					zap.String("path", path),
					zap.String("class", errorClass(err)),
					zap.Error(err),
				)
				return err
			}

			rows, cols := m.Dims()
			logger.Debug("ok",
				zap.String("path", path),
				zap.Stringer("kind", m.Kind()),
				zap.Int("rows", rows),
				zap.Int("cols", cols),
			)
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return errors.Wrapf(err, "%d of %d files failed", atomic.LoadInt64(&failed), len(paths))
	}

	logger.Info("all files valid", zap.Int("files", len(paths)))
	return nil
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, fullmat.ErrFormat):
		return "format"
	case errors.Is(err, fullmat.ErrIO):
		return "io"
	default:
		return "unknown"
	}
}
