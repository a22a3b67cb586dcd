package cells

import "github.com/AnatoleLucet/cells/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

var (
	// ErrForeignCell is the panic value (wrapped) when cells of different graphs are mixed.
	ErrForeignCell = internal.ErrForeignCell

	// ErrNilFunc is the panic value (wrapped) when a cell is built with a nil function.
	ErrNilFunc = internal.ErrNilFunc
)

// Observer receives engine events for a graph. See Metrics for a Prometheus implementation.
type Observer = internal.Observer

type Kind = internal.Kind

const (
	KindInput   = internal.KindInput
	KindCompute = internal.KindCompute
)

// Graph owns a set of input and compute cells.
// A graph must only be used from one goroutine at a time.
type Graph struct {
	graph *internal.Graph
}

type Option func(*internal.Config)

// WithName labels the graph in logs and metrics.
func WithName(name string) Option {
	return func(c *internal.Config) { c.Name = name }
}

// WithObserver registers an observer for the graph's events.
func WithObserver(o Observer) Option {
	return func(c *internal.Config) { c.Observer = o }
}

// NewGraph creates an empty graph.
func NewGraph(opts ...Option) *Graph {
	var cfg internal.Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{internal.NewGraph(cfg)}
}

// DefaultGraph returns the graph used by NewInput and friends on the calling goroutine.
func DefaultGraph() *Graph {
	return &Graph{internal.GetGraph()}
}

// ID returns the unique id of the graph.
func (g *Graph) ID() string { return g.graph.ID().String() }

// Name returns the name given with WithName, if any.
func (g *Graph) Name() string { return g.graph.Name() }

// Cell is any cell a compute cell can read from: *Input[T] or *Compute[T].
type Cell interface {
	source() internal.Source
}

// Reader is a cell with a typed value.
type Reader[T any] interface {
	Cell
	Value() T
}

// Read returns the current value of c as a T.
// It panics if c holds a value of another type.
func Read[T any](c Cell) T {
	return as[T](c.source().Value())
}
