package traverse

import (
	"context"
	"errors"

	"github.com/katalvlaran/handlegraph/core"
)

// ErrNullSource is returned when the traversal's start handle is the zero
// (null) handle.
var ErrNullSource = errors.New("traverse: source handle is null")

// ErrOptionViolation is returned when an invalid Option is supplied, e.g. a
// negative MaxDepth.
var ErrOptionViolation = errors.New("traverse: invalid option supplied")

// BFSOption configures BFS behavior via functional arguments, mirroring the
// teacher's bfs.Option shape.
type BFSOption func(*bfsConfig)

type bfsConfig struct {
	ctx            context.Context
	onEnqueue      func(v core.VertexHandle, depth int)
	onDequeue      func(v core.VertexHandle, depth int)
	onVisit        func(v core.VertexHandle, depth int) error
	maxDepth       int
	filterNeighbor func(from, to core.VertexHandle) bool
	err            error
}

func defaultBFSConfig() bfsConfig {
	return bfsConfig{
		ctx:            context.Background(),
		onEnqueue:      func(core.VertexHandle, int) {},
		onDequeue:      func(core.VertexHandle, int) {},
		onVisit:        func(core.VertexHandle, int) error { return nil },
		maxDepth:       0,
		filterNeighbor: func(core.VertexHandle, core.VertexHandle) bool { return true },
	}
}

// WithBFSContext sets a custom context for cancellation.
func WithBFSContext(ctx context.Context) BFSOption {
	return func(c *bfsConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithBFSOnEnqueue registers a callback run when a vertex is enqueued.
func WithBFSOnEnqueue(fn func(v core.VertexHandle, depth int)) BFSOption {
	return func(c *bfsConfig) {
		if fn != nil {
			c.onEnqueue = fn
		}
	}
}

// WithBFSOnDequeue registers a callback run immediately before a vertex is
// visited.
func WithBFSOnDequeue(fn func(v core.VertexHandle, depth int)) BFSOption {
	return func(c *bfsConfig) {
		if fn != nil {
			c.onDequeue = fn
		}
	}
}

// WithBFSOnVisit registers a callback run when visiting a vertex; returning
// an error aborts the traversal and propagates that error.
func WithBFSOnVisit(fn func(v core.VertexHandle, depth int) error) BFSOption {
	return func(c *bfsConfig) {
		if fn != nil {
			c.onVisit = fn
		}
	}
}

// WithBFSMaxDepth stops exploring beyond the given depth (d>0), or disables
// any limit when d==0 (the default). A negative d is an option violation.
func WithBFSMaxDepth(d int) BFSOption {
	return func(c *bfsConfig) {
		if d < 0 {
			c.err = ErrOptionViolation
			return
		}
		c.maxDepth = d
	}
}

// WithBFSFilterNeighbor skips an out-edge curr->nbr when fn returns false.
func WithBFSFilterNeighbor(fn func(curr, nbr core.VertexHandle) bool) BFSOption {
	return func(c *bfsConfig) {
		if fn != nil {
			c.filterNeighbor = fn
		}
	}
}

// DFSOption configures DFS behavior via functional arguments, mirroring the
// teacher's dfs.Option shape.
type DFSOption func(*dfsConfig)

type dfsConfig struct {
	ctx      context.Context
	onVisit  func(v core.VertexHandle, depth int) error
	onExit   func(v core.VertexHandle, depth int) error
	maxDepth int
	err      error
}

func defaultDFSConfig() dfsConfig {
	return dfsConfig{
		ctx:      context.Background(),
		maxDepth: -1,
	}
}

// WithDFSContext sets a custom context for cancellation.
func WithDFSContext(ctx context.Context) DFSOption {
	return func(c *dfsConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithDFSOnVisit registers a pre-order hook, called when a vertex is first
// discovered; returning an error aborts the traversal.
func WithDFSOnVisit(fn func(v core.VertexHandle, depth int) error) DFSOption {
	return func(c *dfsConfig) {
		c.onVisit = fn
	}
}

// WithDFSOnExit registers a post-order hook, called after a vertex's
// descendants have been fully explored; returning an error aborts the
// traversal.
func WithDFSOnExit(fn func(v core.VertexHandle, depth int) error) DFSOption {
	return func(c *dfsConfig) {
		c.onExit = fn
	}
}

// WithDFSMaxDepth limits recursion to the given depth (0 visits only the
// start vertex). Negative values disable the limit (the default).
func WithDFSMaxDepth(limit int) DFSOption {
	return func(c *dfsConfig) {
		c.maxDepth = limit
	}
}
