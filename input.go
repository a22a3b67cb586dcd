package cells

import "github.com/AnatoleLucet/cells/internal"

// Input is a cell whose value is set directly.
type Input[T any] struct {
	input *internal.Input
}

// NewInput creates an input cell in the default graph of the calling goroutine.
func NewInput[T any](initial T) *Input[T] {
	return NewInputWith(DefaultGraph(), initial)
}

// NewInputWith creates an input cell in g.
func NewInputWith[T any](g *Graph, initial T) *Input[T] {
	return &Input[T]{
		g.graph.NewInput(initial),
	}
}

// Value returns the current value of the input.
func (i *Input[T]) Value() T {
	return as[T](i.input.Value())
}

// SetValue stores v and notifies the callbacks of every dependent compute
// cell whose value changed as a result.
//
// Setting the current value again still runs the update, but no callback
// fires unless some compute cell actually changes.
// When called from a callback function, the write is applied once the
// running update completes.
func (i *Input[T]) SetValue(v T) {
	i.input.SetValue(v)
}

func (i *Input[T]) source() internal.Source { return i.input }
