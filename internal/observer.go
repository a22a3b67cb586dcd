package internal

// Observer receives engine events synchronously, on the goroutine driving the graph.
// The graph argument is the graph's label (its name, or its id when unnamed).
type Observer interface {
	CellCreated(graph string, kind Kind)
	InputSet(graph string)
	SetDeferred(graph string)
	ComputeChanged(graph string)
	CallbackNotified(graph string)
}

type nopObserver struct{}

func (nopObserver) CellCreated(string, Kind) {}
func (nopObserver) InputSet(string)          {}
func (nopObserver) SetDeferred(string)       {}
func (nopObserver) ComputeChanged(string)    {}
func (nopObserver) CallbackNotified(string)  {}
