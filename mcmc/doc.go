// Package mcmc samples random spanning trees with a Metropolis Markov
// chain, optionally driven through a simulated-annealing schedule.
//
// # Model
//
// The state space is the set of spanning trees of a fixed base graph.
// An Energy assigns each tree an unnormalized log-probability at
// inverse temperature β (higher is better):
//
//	bounded-degree:  E(T) = -β · #{v : deg_T(v) ≥ d}
//	bounded-depth:   E(T) = -β · #{v : depth_T(root, v) > k}
//
// At β = 0 every tree is equally likely; as β grows, trees violating
// the structural bound fade out of the distribution. Low-degree trees
// make long-corridor mazes; depth-bounded trees keep every cell close
// to the root.
//
// # Proposal
//
// One move is an edge swap. A base edge is drawn uniformly, resampled
// (bounded) until it is not a tree edge; the unique tree path between
// its endpoints is located; one path edge is chosen uniformly and
// removed; the drawn edge is added. The swap mutates the tree in place
// and returns a Record that Revert undoes exactly, so a rejected
// proposal restores the previous state bit for bit.
//
// The chain uses the plain Metropolis acceptance min(1, exp(ΔE)) with
// one uniform draw per iteration. The proposal is not symmetric (cycle
// lengths vary) and no Hastings correction is applied: the kernel
// trades exactness of the stationary distribution for speed, which is
// fine for annealed runs that only care about low-energy end states.
//
// # Sampling and annealing
//
//	t, _ := spantree.New(g)
//	s, _ := mcmc.NewSampler(t, mcmc.BoundedDegree(3),
//		mcmc.WithBeta(10), mcmc.WithSeed(42), mcmc.WithBurn(99))
//	res, _ := s.Run(100)
//
// Anneal runs the same chain through phases p = 0,1,… at β = p·step
// (or an explicit WithBetas schedule), collecting per-phase statistics
// and a combined trace:
//
//	ar, _ := mcmc.Anneal(t, mcmc.BoundedDepth(root, 5),
//		mcmc.WithPhases(10), mcmc.WithIters(1000), mcmc.WithSeed(42))
//
// # Determinism
//
// Exactly one *rand.Rand, seeded via WithSeed, drives edge draws, path
// index draws and acceptance draws. A fixed seed reproduces the entire
// chain: every proposal, every decision, the final tree and the trace.
// The chain is one logical thread; samplers are not goroutine-safe.
//
// # Errors
//
// Construction fails fast: nil or invalid trees, malformed options
// (ErrOptionViolation), energies referencing missing roots, and base
// graphs with no swappable edge (ErrProposalExhausted). During a run
// the only failures are invariant violations (spantree.ErrNotATree),
// exhausted resampling (ErrProposalExhausted) and context
// cancellation.
package mcmc
