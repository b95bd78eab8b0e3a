// Package spantree: sentinel errors.
package spantree

import "errors"

var (
	// ErrNilBase is returned when a constructor receives a nil base graph.
	ErrNilBase = errors.New("spantree: base graph is nil")

	// ErrNotATree is returned when a structure fails the spanning-tree
	// invariants: wrong edge count, unreachable vertices, or a missing
	// path between vertices that must be connected.
	ErrNotATree = errors.New("spantree: structure is not a spanning tree")

	// ErrEdgePresent is returned when adding an edge already in the tree.
	ErrEdgePresent = errors.New("spantree: edge already in tree")

	// ErrEdgeMissing is returned when removing an edge not in the tree.
	ErrEdgeMissing = errors.New("spantree: edge not in tree")

	// ErrNotBaseEdge is returned when a tree edge is not an edge of the
	// base graph.
	ErrNotBaseEdge = errors.New("spantree: edge not in base graph")
)
