package internal

import (
	"fmt"
	"slices"

	"github.com/golang/glog"
)

// Callback observes compute cells and logs a value each time one of them changes.
// It belongs to no graph; a callback can watch cells from several graphs.
type Callback struct {
	fn     func(*Compute) any
	values []any
}

func NewCallback(fn func(*Compute) any) *Callback {
	if fn == nil {
		panic(fmt.Errorf("%w: callback cell", ErrNilFunc))
	}

	return &Callback{fn: fn}
}

func (cb *Callback) receive(c *Compute) {
	v := cb.fn(c)
	cb.values = append(cb.values, v)

	if glog.V(3) {
		glog.Infof("[cells]%s callback got %v from compute %d\n", c.graph.Label(), v, c.id)
	}
}

// Values returns a copy of the log, oldest first.
func (cb *Callback) Values() []any {
	return slices.Clone(cb.values)
}
