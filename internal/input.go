package internal

import "slices"

type Input struct {
	graph *Graph
	id    InputID

	value any

	// compute cells to snapshot and notify on set, direct or transitive,
	// in registration order
	dependents []ComputeID
}

func (g *Graph) NewInput(initial any) *Input {
	in := &Input{
		graph: g,
		id:    InputID(len(g.inputs)),
		value: initial,
	}
	g.inputs = append(g.inputs, in)

	g.observer.CellCreated(g.Label(), KindInput)

	return in
}

func (in *Input) Graph() *Graph { return in.graph }

func (in *Input) ID() InputID { return in.id }

func (in *Input) Value() any { return in.value }

// SetValue stores v and propagates it to every dependent compute cell.
// Called from a callback during a running cascade, the write is deferred
// until that cascade completes.
func (in *Input) SetValue(v any) {
	in.graph.set(in, v)
}

func (in *Input) LinkDependent(dep ComputeID) {
	in.RegisterDependent(dep)
}

// RegisterDependent adds dep to the dependents, unless it's already there.
func (in *Input) RegisterDependent(dep ComputeID) {
	if slices.Contains(in.dependents, dep) {
		return
	}

	in.dependents = append(in.dependents, dep)
}

// Dependents returns a copy of the registered compute cells.
func (in *Input) Dependents() []ComputeID {
	return slices.Clone(in.dependents)
}
