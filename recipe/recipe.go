package recipe

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mazespan/mazespan/maze"
)

// Load reads and parses a recipe file.
//
// Errors: file errors from os.ReadFile, decode errors from the TOML
// parser, validation errors from Validate.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML document and validates the result.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("recipe: decode: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks every field against the bounds the pipeline
// enforces. Parse calls it on every decode; hand-built recipes should
// call it before Bake (Bake calls it again regardless).
//
// Errors: ErrUnknownVariant, ErrBadRecipe.
func (r *Recipe) Validate() error {
	if r.Rows < 1 || r.Cols < 1 {
		return fmt.Errorf("recipe: grid %dx%d: %w", r.Rows, r.Cols, ErrBadRecipe)
	}
	switch r.variant() {
	case VariantMST, VariantLowDegree, VariantBoundedDepth:
	default:
		return fmt.Errorf("recipe: variant %q: %w", r.Variant, ErrUnknownVariant)
	}
	switch r.SeedMethod {
	case "", "kruskal", "prim":
	default:
		return fmt.Errorf("recipe: seed_method %q: %w", r.SeedMethod, ErrBadRecipe)
	}
	if r.DegreeBound < 0 {
		return fmt.Errorf("recipe: degree_bound %d: %w", r.DegreeBound, ErrBadRecipe)
	}
	if r.DepthBound < 0 {
		return fmt.Errorf("recipe: depth_bound %d: %w", r.DepthBound, ErrBadRecipe)
	}
	if r.Beta < 0 {
		return fmt.Errorf("recipe: beta %g: %w", r.Beta, ErrBadRecipe)
	}
	for _, b := range r.Betas {
		if b < 0 {
			return fmt.Errorf("recipe: betas entry %g: %w", b, ErrBadRecipe)
		}
	}
	if r.BetaStep < 0 {
		return fmt.Errorf("recipe: beta_step %g: %w", r.BetaStep, ErrBadRecipe)
	}
	if r.Phases < 0 {
		return fmt.Errorf("recipe: phases %d: %w", r.Phases, ErrBadRecipe)
	}
	if r.Iters < 0 {
		return fmt.Errorf("recipe: iters %d: %w", r.Iters, ErrBadRecipe)
	}
	if r.Burn != nil && *r.Burn < 0 {
		return fmt.Errorf("recipe: burn %d: %w", *r.Burn, ErrBadRecipe)
	}
	if r.Thin != nil && *r.Thin < 1 {
		return fmt.Errorf("recipe: thin %d: %w", *r.Thin, ErrBadRecipe)
	}

	fixed := r.Beta != 0
	ladder := len(r.Betas) > 0
	linear := r.Phases != 0 || r.BetaStep != 0
	if (fixed && ladder) || (fixed && linear) || (ladder && linear) {
		return fmt.Errorf("recipe: beta, betas and phases/beta_step are mutually exclusive: %w", ErrBadRecipe)
	}
	return nil
}

// Bake validates the recipe and runs the matching generator. Extra
// options are applied after the recipe's own, so callers can override
// any field or attach a context. A Logger on the recipe is handed
// through to the annealing phases.
func (r *Recipe) Bake(opts ...maze.Option) (*maze.Maze, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	all := r.options()
	if r.Logger != nil {
		r.Logger.Info("baking maze",
			"variant", r.variant(), "rows", r.Rows, "cols", r.Cols, "seed", r.Seed)
		all = append(all, maze.WithLogger(r.Logger))
	}
	all = append(all, opts...)

	switch r.variant() {
	case VariantLowDegree:
		return maze.GenerateLowDegree(r.Rows, r.Cols, all...)
	case VariantBoundedDepth:
		return maze.GenerateBoundedDepth(r.Rows, r.Cols, all...)
	default:
		return maze.Generate(r.Rows, r.Cols, all...)
	}
}

// options translates the set fields into generator options. Zero
// values emit nothing so the variant defaults stay in charge.
func (r *Recipe) options() []maze.Option {
	var opts []maze.Option
	if r.Seed != 0 {
		opts = append(opts, maze.WithSeed(r.Seed))
	}
	if r.Boundary {
		opts = append(opts, maze.WithBoundary())
	}
	switch r.SeedMethod {
	case "kruskal":
		opts = append(opts, maze.WithSeedMethod(maze.MethodKruskal))
	case "prim":
		opts = append(opts, maze.WithSeedMethod(maze.MethodPrim))
	}
	if r.DegreeBound != 0 {
		opts = append(opts, maze.WithDegreeBound(r.DegreeBound))
	}
	if r.DepthBound != 0 {
		opts = append(opts, maze.WithDepthBound(r.DepthBound))
	}
	if r.Root != "" {
		opts = append(opts, maze.WithRoot(r.Root))
	}
	if len(r.Betas) > 0 {
		opts = append(opts, maze.WithBetas(r.Betas))
	} else if r.Beta != 0 {
		opts = append(opts, maze.WithBeta(r.Beta))
	}
	if r.Phases != 0 {
		opts = append(opts, maze.WithPhases(r.Phases))
	}
	if r.BetaStep != 0 {
		opts = append(opts, maze.WithBetaStep(r.BetaStep))
	}
	if r.Iters != 0 {
		opts = append(opts, maze.WithIters(r.Iters))
	}
	if r.Burn != nil {
		opts = append(opts, maze.WithBurn(*r.Burn))
	}
	if r.Thin != nil {
		opts = append(opts, maze.WithThin(*r.Thin))
	}
	return opts
}
