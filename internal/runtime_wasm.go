//go:build wasm

package internal

import "sync"

var once sync.Once
var globalGraph *Graph

// GetGraph returns the default graph. goid has no wasm support, so every
// goroutine shares this one.
func GetGraph() *Graph {
	once.Do(func() {
		globalGraph = NewGraph(Config{})
	})

	return globalGraph
}
