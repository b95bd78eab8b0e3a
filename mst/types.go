// Package mst: sentinel errors shared by Kruskal and Prim.
package mst

import "errors"

var (
	// ErrInvalidGraph is returned when the input graph is nil or not
	// weighted.
	ErrInvalidGraph = errors.New("mst: graph must be non-nil and weighted")

	// ErrEmptyRoot is returned when Prim receives an empty root ID.
	ErrEmptyRoot = errors.New("mst: root must not be empty")

	// ErrDisconnected is returned when the graph has no spanning tree:
	// it is empty or not fully connected.
	ErrDisconnected = errors.New("mst: graph is not fully connected")
)
