package cells

import (
	"fmt"
	"slices"

	"github.com/AnatoleLucet/cells/internal"
)

// Compute is a cell derived from other cells by a pure function.
// Its value is evaluated on every read, never cached.
type Compute[T any] struct {
	compute *internal.Compute
}

// NewCompute creates a compute cell over sources, in the graph of the first
// source (or the default graph when there are none).
// fn receives the sources in the order given; use Read to get their values.
func NewCompute[T any](sources []Cell, fn func([]Cell) T) *Compute[T] {
	g := DefaultGraph()
	if len(sources) > 0 {
		g = &Graph{sources[0].source().Graph()}
	}

	return NewComputeWith(g, sources, fn)
}

// NewComputeWith creates a compute cell over sources in g.
// All sources must belong to g.
func NewComputeWith[T any](g *Graph, sources []Cell, fn func([]Cell) T) *Compute[T] {
	if fn == nil {
		panic(fmt.Errorf("%w: compute cell", ErrNilFunc))
	}

	cells := slices.Clone(sources)
	srcs := make([]internal.Source, len(cells))
	for i, c := range cells {
		srcs[i] = c.source()
	}

	c := &Compute[T]{}
	c.compute = g.graph.NewCompute(srcs, func([]internal.Source) any {
		return fn(cells)
	})
	c.compute.Handle = c

	return c
}

// NewCompute1 creates a compute cell from a single typed source.
func NewCompute1[A, T any](a Reader[A], fn func(A) T) *Compute[T] {
	return NewCompute([]Cell{a}, func([]Cell) T {
		return fn(a.Value())
	})
}

// NewCompute2 creates a compute cell from two typed sources.
func NewCompute2[A, B, T any](a Reader[A], b Reader[B], fn func(A, B) T) *Compute[T] {
	return NewCompute([]Cell{a, b}, func([]Cell) T {
		return fn(a.Value(), b.Value())
	})
}

// Value evaluates the cell against the current values of its sources.
func (c *Compute[T]) Value() T {
	return as[T](c.compute.Value())
}

// AddCallback subscribes cb to changes of this cell.
// Adding the same callback twice makes it log twice per change.
func (c *Compute[T]) AddCallback(cb Subscriber) {
	c.compute.AddCallback(cb.callback())
}

// RemoveCallback unsubscribes every occurrence of cb. Values it already
// logged are kept.
func (c *Compute[T]) RemoveCallback(cb Subscriber) {
	c.compute.RemoveCallback(cb.callback())
}

func (c *Compute[T]) source() internal.Source { return c.compute }
