package cells

import (
	"fmt"

	"github.com/AnatoleLucet/cells/internal"
)

// Subscriber is implemented by *Callback[V] for any V.
type Subscriber interface {
	callback() *internal.Callback
}

// Callback logs fn(cell) every time a compute cell it is subscribed to changes.
type Callback[V any] struct {
	cb *internal.Callback
}

// NewCallback creates a callback cell with an empty log.
// fn receives the compute cell that changed.
func NewCallback[V any](fn func(Cell) V) *Callback[V] {
	if fn == nil {
		panic(fmt.Errorf("%w: callback cell", ErrNilFunc))
	}

	return &Callback[V]{
		internal.NewCallback(func(c *internal.Compute) any {
			return fn(c.Handle.(Cell))
		}),
	}
}

// Values returns the logged values, oldest first.
func (cb *Callback[V]) Values() []V {
	raw := cb.cb.Values()

	values := make([]V, len(raw))
	for i, v := range raw {
		values[i] = as[V](v)
	}

	return values
}

func (cb *Callback[V]) callback() *internal.Callback { return cb.cb }
