package internal

import (
	"fmt"
	"slices"

	"github.com/golang/glog"
)

type Compute struct {
	graph *Graph
	id    ComputeID

	sources []Source
	fn      func([]Source) any

	// value before the running update, only meaningful mid-cascade
	prev any

	callbacks []*Callback

	// Handle is the public cell wrapping this one, handed to callback functions.
	Handle any
}

// NewCompute builds a compute cell over sources and links it to every input
// reachable from them. The sources must already exist in g, so the graph
// can't contain a cycle.
func (g *Graph) NewCompute(sources []Source, fn func([]Source) any) *Compute {
	if fn == nil {
		panic(fmt.Errorf("%w: compute cell", ErrNilFunc))
	}
	for _, s := range sources {
		g.checkOwns(s)
	}

	c := &Compute{
		graph:   g,
		id:      ComputeID(len(g.computes)),
		sources: slices.Clone(sources),
		fn:      fn,
	}
	g.computes = append(g.computes, c)

	c.LinkDependent(c.id)

	g.observer.CellCreated(g.Label(), KindCompute)

	return c
}

func (c *Compute) Graph() *Graph { return c.graph }

func (c *Compute) ID() ComputeID { return c.id }

// Value evaluates the cell function against the current state of its sources.
// It is never cached.
func (c *Compute) Value() any {
	return c.fn(c.sources)
}

// LinkDependent forwards the registration down to the sources of this cell,
// until it reaches input cells.
func (c *Compute) LinkDependent(dep ComputeID) {
	for _, s := range c.sources {
		s.LinkDependent(dep)
	}
}

func (c *Compute) AddCallback(cb *Callback) {
	c.callbacks = append(c.callbacks, cb)
}

// RemoveCallback removes every occurrence of cb. Its log is left untouched.
func (c *Compute) RemoveCallback(cb *Callback) {
	c.callbacks = slices.DeleteFunc(c.callbacks, func(other *Callback) bool {
		return other == cb
	})
}

func (c *Compute) Callbacks() int {
	return len(c.callbacks)
}

func (c *Compute) saveValue() {
	c.prev = c.Value()
}

func (c *Compute) onInputUpdate() {
	prev := c.prev
	c.prev = nil

	if isEqual(prev, c.Value()) {
		return
	}

	c.graph.observer.ComputeChanged(c.graph.Label())

	// cloning so callbacks can (un)subscribe while being notified
	callbacks := slices.Clone(c.callbacks)
	if glog.V(2) {
		glog.Infof("[cells]%s compute %d changed (%d callbacks)\n", c.graph.Label(), c.id, len(callbacks))
	}

	for _, cb := range callbacks {
		cb.receive(c)
		c.graph.observer.CallbackNotified(c.graph.Label())
	}
}
