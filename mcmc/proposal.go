// Package mcmc: the edge-swap proposal engine.
package mcmc

import (
	"fmt"
	"math/rand"

	"github.com/mazespan/mazespan/spantree"
)

// Record captures one edge swap so it can be undone exactly. Records
// travel on the call path between Propose and Revert and are never
// stored on the tree.
type Record struct {
	// UNew, VNew is the base edge added to the tree.
	UNew, VNew string
	// UOld, VOld is the tree edge removed.
	UOld, VOld string
	// Path is the tree path from UNew to VNew before the swap; the
	// removed edge is Path[i]-Path[i+1] for the drawn index i.
	Path []string
}

// Proposer performs edge-swap proposals on one tree. It snapshots the
// base edge list at construction; the base graph must stay immutable
// for the proposer's lifetime, which is the standing assumption of the
// whole chain.
type Proposer struct {
	tree        *spantree.Tree
	edges       [][2]string
	rng         *rand.Rand
	maxAttempts int
}

// NewProposer returns a stand-alone proposer with its own seeded
// stream. Samplers build theirs internally so that one chain consumes
// one stream; the exported constructor serves direct experimentation
// with the proposal kernel.
func NewProposer(t *spantree.Tree, seed int64) (*Proposer, error) {
	return newProposer(t, rngFromSeed(seed))
}

// newProposer validates the tree and snapshots the base edges.
// A base with no non-tree edge cannot propose anything: that fails
// here, not on the first draw.
func newProposer(t *spantree.Tree, rng *rand.Rand) (*Proposer, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("mcmc: proposer: %w", err)
	}

	baseEdges := t.Base().Edges()
	edges := make([][2]string, len(baseEdges))
	for i, e := range baseEdges {
		edges[i] = [2]string{e.From, e.To}
	}
	if len(edges) <= t.VertexCount()-1 {
		return nil, fmt.Errorf("mcmc: base graph has no swappable edge: %w", ErrProposalExhausted)
	}

	attempts := proposalAttemptsFactor * len(edges)
	if attempts < minProposalAttempts {
		attempts = minProposalAttempts
	}
	return &Proposer{tree: t, edges: edges, rng: rng, maxAttempts: attempts}, nil
}

// Propose performs one edge swap, mutating the tree in place:
//
//  1. Draw uniformly from the full base edge list, redrawing until the
//     edge is not in the tree. The construction guard makes success
//     near-certain; the attempt bound turns astronomically unlucky
//     streams into ErrProposalExhausted instead of a spin.
//  2. Find the tree path between the drawn endpoints (pre-mutation).
//  3. Draw i uniformly from [0, len(path)-2] and cut path[i]-path[i+1].
//  4. Add the drawn edge.
//
// Complexity: O(V) per proposal, dominated by the path walk.
func (p *Proposer) Propose() (Record, error) {
	// 1. Bounded uniform resampling over the full edge list.
	var uNew, vNew string
	found := false
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		e := p.edges[p.rng.Intn(len(p.edges))]
		if !p.tree.HasEdge(e[0], e[1]) {
			uNew, vNew = e[0], e[1]
			found = true
			break
		}
	}
	if !found {
		return Record{}, fmt.Errorf("mcmc: %d resampling attempts: %w", p.maxAttempts, ErrProposalExhausted)
	}

	// 2. The unique tree cycle closed by (uNew,vNew) is path + the new
	// edge; locate the path before touching anything.
	path, err := p.tree.Path(uNew, vNew)
	if err != nil {
		return Record{}, fmt.Errorf("mcmc: proposal path: %w", err)
	}
	if len(path) < 2 {
		return Record{}, fmt.Errorf("mcmc: path %s-%s has %d vertices: %w",
			uNew, vNew, len(path), spantree.ErrNotATree)
	}

	// 3. Cut one path edge, chosen uniformly.
	i := p.rng.Intn(len(path) - 1)
	uOld, vOld := path[i], path[i+1]
	if err := p.tree.RemoveEdge(uOld, vOld); err != nil {
		return Record{}, fmt.Errorf("mcmc: cut %s-%s: %w", uOld, vOld, err)
	}

	// 4. Splice in the drawn edge; on failure restore before reporting.
	if err := p.tree.AddEdge(uNew, vNew); err != nil {
		if restoreErr := p.tree.AddEdge(uOld, vOld); restoreErr != nil {
			return Record{}, fmt.Errorf("mcmc: splice %s-%s failed and restore failed (%v): %w",
				uNew, vNew, restoreErr, err)
		}
		return Record{}, fmt.Errorf("mcmc: splice %s-%s: %w", uNew, vNew, err)
	}

	return Record{UNew: uNew, VNew: vNew, UOld: uOld, VOld: vOld, Path: path}, nil
}

// Revert undoes a swap exactly: the removed edge returns, the added
// edge leaves. Reverting the most recent Propose restores the previous
// state bit for bit.
func (p *Proposer) Revert(rec Record) error {
	if err := p.tree.AddEdge(rec.UOld, rec.VOld); err != nil {
		return fmt.Errorf("mcmc: revert add %s-%s: %w", rec.UOld, rec.VOld, err)
	}
	if err := p.tree.RemoveEdge(rec.UNew, rec.VNew); err != nil {
		return fmt.Errorf("mcmc: revert remove %s-%s: %w", rec.UNew, rec.VNew, err)
	}
	return nil
}

// Tree returns the tree this proposer mutates.
func (p *Proposer) Tree() *spantree.Tree { return p.tree }
