package internal

type Kind int

const (
	KindInput Kind = iota
	KindCompute
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// InputID and ComputeID index into the owning graph's arena.
type InputID int
type ComputeID int

// Source is anything a compute cell can derive its value from.
// Input and compute cells both satisfy it, so a compute cell never has to
// inspect what kind of source it was given.
type Source interface {
	Graph() *Graph

	// Value returns the current value of the source.
	Value() any

	// LinkDependent registers dep on every input cell reachable from this source.
	LinkDependent(dep ComputeID)
}
