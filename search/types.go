// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNoSolution is returned when the frontier is exhausted without any
	// state satisfying the goal test.
	ErrNoSolution = errors.New("search: no solution")

	// ErrNilCallback is returned when goalTest, successors, cost or heuristic is nil.
	ErrNilCallback = errors.New("search: callback is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when the WithMaxExpansions budget is spent
	// before a goal is found.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Option configures search behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by DFS, BFS and AStar.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the number of nodes popped from the frontier.
	// A value of 0 disables the limit.
	MaxExpansions int

	// OnExpand is called for every node popped from the frontier, before the
	// goal test, with the node's depth (edges from initial).
	OnExpand func(depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(int) {},
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0:  stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called with the depth of every expanded node.
func WithOnExpand(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and returns any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// budget tracks cancellation and the expansion limit for one search run.
type budget struct {
	ctx      context.Context
	limit    int
	expanded int
}

// spend accounts for one expansion. It returns ctx.Err() once the context is
// done, or ErrExpansionLimit once the limit has been exceeded.
func (b *budget) spend() error {
	select {
	case <-b.ctx.Done():
		return b.ctx.Err()
	default:
	}
	b.expanded++
	if b.limit > 0 && b.expanded > b.limit {
		return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, b.limit)
	}

	return nil
}
