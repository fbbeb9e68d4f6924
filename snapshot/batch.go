// Package snapshot formats markup in bulk and compares formatted output
// against stored snapshots.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/clems4ever/diffable/formatter"
	"golang.org/x/sync/errgroup"
)

// Input is one named piece of markup.
type Input struct {
	Name   string
	Markup string
}

// Result is the formatted form of an Input.
type Result struct {
	Name   string
	Output string
}

// FormatAll runs p over every input using up to jobs goroutines. Results are
// in input order. jobs <= 0 means GOMAXPROCS.
func FormatAll(ctx context.Context, inputs []Input, p *formatter.Printer, jobs int) ([]Result, error) {
	return run(ctx, len(inputs), jobs, func(i int) (Result, error) {
		in := inputs[i]
		return Result{Name: in.Name, Output: p.Print(in.Markup)}, nil
	})
}

// FormatFiles reads and formats every file in paths. The first read error
// cancels the remaining work.
func FormatFiles(ctx context.Context, paths []string, p *formatter.Printer, jobs int) ([]Result, error) {
	return run(ctx, len(paths), jobs, func(i int) (Result, error) {
		data, err := os.ReadFile(paths[i])
		if err != nil {
			return Result{}, fmt.Errorf("failed to read %s: %w", paths[i], err)
		}
		return Result{Name: paths[i], Output: p.Print(string(data))}, nil
	})
}

func run(ctx context.Context, n, jobs int, fn func(i int) (Result, error)) ([]Result, error) {
	if n == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns results[i], no locking needed
	results := make([]Result, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := fn(i)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
