package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Group runs tasks concurrently and joins them. The first failing task
// cancels the shared context; Wait returns that first error. A panic in a
// task is recovered and reported as an error of the group.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context
}

// NewGroup creates a Group bound to ctx. limit <= 0 means no limit on
// concurrently running tasks.
func NewGroup(ctx context.Context, limit int) *Group {
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	return &Group{eg: eg, ctx: egCtx}
}

// Context returns the context shared by tasks of the group
func (g *Group) Context() context.Context {
	return g.ctx
}

// Go starts task in a new goroutine. name is used for logging only.
func (g *Group) Go(name string, task func(ctx context.Context) error) {
	g.eg.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(g.ctx).Error("Panic in concurrent task",
					"task", name,
					"recover", r,
					"stack", string(debug.Stack()),
				)
				err = goerr.New("panic in concurrent task",
					goerr.V("task", name),
					goerr.V("recover", fmt.Sprint(r)),
				)
			}
		}()

		if err := task(g.ctx); err != nil {
			return goerr.Wrap(err, "concurrent task failed", goerr.V("task", name))
		}
		return nil
	})
}

// Wait blocks until all tasks finished and returns the first error
func (g *Group) Wait() error {
	return g.eg.Wait()
}

// Fetch runs fn in g and stores its result into dst. dst is written only
// when fn succeeds, so every task owns its own result slot.
func Fetch[T any](g *Group, name string, dst *T, fn func(ctx context.Context) (T, error)) {
	g.Go(name, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

// Map calls fn for each item concurrently in g, storing results by index.
func Map[In, Out any](g *Group, name string, items []In, dst []Out, fn func(ctx context.Context, item In) (Out, error)) {
	for i, item := range items {
		Fetch(g, name, &dst[i], func(ctx context.Context) (Out, error) {
			return fn(ctx, item)
		})
	}
}
