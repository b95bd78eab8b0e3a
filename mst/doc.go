// Package mst computes minimum spanning trees of weighted core graphs.
//
// Two classic algorithms are provided:
//
//   - Kruskal: global edge sort plus union-find. The default seeder for
//     sampling chains, and (over a lattice with i.i.d. random weights)
//     the classic randomized-Kruskal maze generator.
//   - Prim: min-heap growth from a root vertex. Same output weight on
//     connected inputs, different tree texture; over random weights it
//     is the randomized-Prim maze generator.
//
// Both return the tree as a deterministic edge slice together with the
// summed weight. Determinism follows from core.Graph's sorted listings
// and stable sorting: equal-weight edges keep canonical order.
//
// Error conditions are sentinel-based: ErrInvalidGraph for nil or
// unweighted inputs, ErrDisconnected when no spanning tree exists,
// ErrEmptyRoot / core.ErrVertexNotFound for bad Prim roots.
package mst
