// Package mcmc: energy functions over spanning trees.
package mcmc

import (
	"fmt"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/spantree"
)

// Kind tags the energy variant. Dispatch is a switch over Kind in pure
// functions; there is no energy interface to implement.
type Kind int

const (
	// KindBoundedDegree penalizes vertices of degree ≥ DegreeBound.
	KindBoundedDegree Kind = iota
	// KindBoundedDepth penalizes vertices deeper than DepthBound below Root.
	KindBoundedDepth
)

// String names the kind for traces and logs.
func (k Kind) String() string {
	switch k {
	case KindBoundedDegree:
		return "bounded-degree"
	case KindBoundedDepth:
		return "bounded-depth"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Energy is a tagged variant describing the target distribution's
// log-probability, E(T) = -β·violations(T). The fields used depend on
// Kind; constructors fill the right ones.
type Energy struct {
	// Kind selects the variant.
	Kind Kind
	// DegreeBound is the degree threshold d (bounded-degree only).
	DegreeBound int
	// DepthBound is the depth threshold k (bounded-depth only).
	DepthBound int
	// Root anchors depth measurement (bounded-depth only).
	Root string
}

// BoundedDegree returns the energy penalizing vertices of tree degree
// ≥ d. A maze sampled under it favors long corridors: degree-2 chains.
func BoundedDegree(d int) Energy {
	return Energy{Kind: KindBoundedDegree, DegreeBound: d}
}

// BoundedDepth returns the energy penalizing vertices more than k tree
// edges below root.
func BoundedDepth(root string, k int) Energy {
	return Energy{Kind: KindBoundedDepth, DepthBound: k, Root: root}
}

// Observation is one full evaluation of a tree under an energy.
type Observation struct {
	// Energy is the unnormalized log-probability at the β of the call.
	Energy float64
	// Violations counts vertices violating the structural bound.
	Violations int
	// MaxDepth is the deepest vertex below Root; meaningful only for
	// KindBoundedDepth, zero otherwise.
	MaxDepth int
}

// validate checks the energy parameters against a concrete tree.
// Called once at sampler construction so runs cannot start misbound.
func (e Energy) validate(t *spantree.Tree) error {
	switch e.Kind {
	case KindBoundedDegree:
		if e.DegreeBound < 1 {
			return fmt.Errorf("mcmc: degree bound %d must be >= 1: %w", e.DegreeBound, ErrOptionViolation)
		}
	case KindBoundedDepth:
		if e.DepthBound < 0 {
			return fmt.Errorf("mcmc: depth bound %d must be >= 0: %w", e.DepthBound, ErrOptionViolation)
		}
		if e.Root == "" {
			return fmt.Errorf("mcmc: depth root must not be empty: %w", ErrOptionViolation)
		}
		if _, err := t.Degree(e.Root); err != nil {
			return fmt.Errorf("mcmc: depth root %q: %w", e.Root, core.ErrVertexNotFound)
		}
	default:
		return fmt.Errorf("mcmc: kind %d: %w", int(e.Kind), ErrUnknownKind)
	}
	return nil
}

// Violations counts the vertices violating the bound. The evaluation
// is a full recompute over the tree, with no incremental caching, and
// it refuses structures that are not spanning trees.
//
// Complexity: O(V).
func (e Energy) Violations(t *spantree.Tree) (int, error) {
	obs, err := e.observe(t)
	if err != nil {
		return 0, err
	}
	return obs.Violations, nil
}

// LogProb evaluates the unnormalized log-probability -β·violations.
//
// Complexity: O(V).
func (e Energy) LogProb(t *spantree.Tree, beta float64) (float64, error) {
	obs, err := e.observe(t)
	if err != nil {
		return 0, err
	}
	return -beta * float64(obs.Violations), nil
}

// Observe evaluates energy, violation count and (for bounded-depth)
// max depth in one pass.
//
// Complexity: O(V).
func (e Energy) Observe(t *spantree.Tree, beta float64) (Observation, error) {
	obs, err := e.observe(t)
	if err != nil {
		return Observation{}, err
	}
	obs.Energy = -beta * float64(obs.Violations)
	return obs, nil
}

// observe dispatches on Kind. The β-independent part of Observe.
func (e Energy) observe(t *spantree.Tree) (Observation, error) {
	if t == nil {
		return Observation{}, ErrNilTree
	}
	// Evaluating a non-tree is a programming error, never tolerated
	// silently. The count check catches mid-swap states cheaply; the
	// depth walk below also catches disconnection for KindBoundedDepth.
	if n := t.VertexCount(); t.EdgeCount() != n-1 {
		return Observation{}, fmt.Errorf("mcmc: %d edges for %d vertices: %w",
			t.EdgeCount(), n, spantree.ErrNotATree)
	}

	switch e.Kind {
	case KindBoundedDegree:
		violations := 0
		for deg, count := range t.DegreeCounts() {
			if deg >= e.DegreeBound {
				violations += count
			}
		}
		return Observation{Violations: violations}, nil

	case KindBoundedDepth:
		depth, err := t.DepthFrom(e.Root)
		if err != nil {
			return Observation{}, fmt.Errorf("mcmc: observe: %w", err)
		}
		violations, maxDepth := 0, 0
		for _, d := range depth {
			if d > e.DepthBound {
				violations++
			}
			if d > maxDepth {
				maxDepth = d
			}
		}
		return Observation{Violations: violations, MaxDepth: maxDepth}, nil

	default:
		return Observation{}, fmt.Errorf("mcmc: kind %d: %w", int(e.Kind), ErrUnknownKind)
	}
}
