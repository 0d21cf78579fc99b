// Package bfs provides tunable options, the result type, and error
// definitions for breadth-first traversal over an inductive graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a node is visited (decomposed), with its
	// depth from the start. If it returns an error, BFS aborts and
	// propagates that error.
	OnVisit func(id int64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterSuccessor can skip edges by returning false.
	// Called for each edge curr→next before next is enqueued.
	FilterSuccessor func(curr, next int64) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all successors allowed)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:         func(int64, int) error { return nil },
		MaxDepth:        0,
		FilterSuccessor: func(_, _ int64) bool { return true },
		err:             nil,
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the traversal.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search from exploring past the given depth;
// nodes at exactly that depth are still visited.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterSuccessor skips successors when fn returns false.
func WithFilterSuccessor(fn func(curr, next int64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterSuccessor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: node ids in visitation order.
//   - Depth: map from node id to its distance (in edges) from the start.
//   - Parent: map from node id to the node that first discovered it;
//     the start node has no entry.
type Result struct {
	Order  []int64
	Depth  map[int64]int
	Parent map[int64]int64
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int64) ([]int64, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []int64{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
