//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var graphs sync.Map

// GetGraph returns the default graph of the calling goroutine.
func GetGraph() *Graph {
	gid := getGID()

	if g, ok := graphs.Load(gid); ok {
		return g.(*Graph)
	}

	g := NewGraph(Config{})
	graphs.Store(gid, g)
	return g
}

func getGID() int64 {
	return goid.Get()
}
