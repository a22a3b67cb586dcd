package internal

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"
)

type Config struct {
	// Name labels the graph in logs and metrics. Defaults to the graph id.
	Name string

	// Observer is notified of engine events. May be nil.
	Observer Observer
}

// Graph is the arena owning every input and compute cell created in it.
// A graph is not safe for concurrent use.
type Graph struct {
	id   ulid.ULID
	name string

	inputs   []*Input
	computes []*Compute

	observer Observer

	// set while a SetValue cascade is running
	// sets issued meanwhile are queued and applied once it completes
	updating bool
	pending  *SetQueue
}

func NewGraph(cfg Config) *Graph {
	g := &Graph{
		id:       ulid.Make(),
		name:     cfg.Name,
		observer: cfg.Observer,
		pending:  NewSetQueue(),
	}
	if g.observer == nil {
		g.observer = nopObserver{}
	}

	return g
}

func (g *Graph) ID() ulid.ULID { return g.id }

func (g *Graph) Name() string { return g.name }

// Label returns the name of the graph, or its id if it has none.
func (g *Graph) Label() string {
	if g.name != "" {
		return g.name
	}

	return g.id.String()
}

func (g *Graph) Input(id InputID) *Input { return g.inputs[id] }

func (g *Graph) Compute(id ComputeID) *Compute { return g.computes[id] }

func (g *Graph) Inputs() int { return len(g.inputs) }

func (g *Graph) Computes() int { return len(g.computes) }

// IsUpdating reports whether a cascade is currently running.
func (g *Graph) IsUpdating() bool { return g.updating }

// set runs the full snapshot/apply/notify cycle for in, then drains any set
// issued by a callback while the cycle was running.
func (g *Graph) set(in *Input, v any) {
	if g.updating {
		g.pending.Enqueue(in, v)
		g.observer.SetDeferred(g.Label())
		if glog.V(2) {
			glog.Infof("[cells]%s deferred set of input %d (%d pending)\n", g.Label(), in.id, g.pending.Len())
		}
		return
	}

	g.updating = true
	defer func() {
		// a panicking cell function aborts the update and everything queued behind it
		g.updating = false
		g.pending.Clear()
	}()

	g.cascade(in, v)
	for {
		next, ok := g.pending.Dequeue()
		if !ok {
			break
		}
		g.cascade(next.input, next.value)
	}
}

func (g *Graph) cascade(in *Input, v any) {
	g.observer.InputSet(g.Label())
	if glog.V(2) {
		glog.Infof("[cells]%s set input %d (%d dependents)\n", g.Label(), in.id, len(in.dependents))
	}

	for _, id := range in.dependents {
		g.computes[id].saveValue()
	}

	in.value = v

	for _, id := range in.dependents {
		g.computes[id].onInputUpdate()
	}
}

func (g *Graph) checkOwns(s Source) {
	if s.Graph() != g {
		panic(fmt.Errorf("%w: %s is not %s", ErrForeignCell, s.Graph().Label(), g.Label()))
	}
}
