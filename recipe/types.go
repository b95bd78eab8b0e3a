package recipe

import (
	"errors"

	"github.com/charmbracelet/log"
)

var (
	// ErrUnknownVariant flags a variant string outside the known set.
	ErrUnknownVariant = errors.New("recipe: unknown variant")

	// ErrBadRecipe flags a field value the pipeline cannot honor.
	ErrBadRecipe = errors.New("recipe: invalid field")
)

// Generation variants. The zero value of Recipe.Variant means
// VariantMST.
const (
	VariantMST          = "mst"
	VariantLowDegree    = "low-degree"
	VariantBoundedDepth = "bounded-depth"
)

// Recipe is the TOML surface of the maze pipeline. Rows and Cols are
// required; every other field defaults per variant when left at its
// zero value.
//
// The temperature schedule comes from exactly one of three groups:
// beta (a single fixed-temperature phase), betas (an explicit
// ladder), or phases plus beta_step (a linear ladder). Mixing groups
// fails validation.
type Recipe struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	// Variant picks the generator: "mst", "low-degree" or
	// "bounded-depth".
	Variant string `toml:"variant"`

	// Seed drives both the grid weights and the chain. Zero aliases
	// the package default.
	Seed int64 `toml:"seed"`

	// Boundary adds the perimeter walls with entry and exit gaps.
	Boundary bool `toml:"boundary"`

	// SeedMethod picks the spanning-tree seeding algorithm,
	// "kruskal" or "prim".
	SeedMethod string `toml:"seed_method"`

	DegreeBound int    `toml:"degree_bound"`
	DepthBound  int    `toml:"depth_bound"`
	Root        string `toml:"root"`

	Beta     float64   `toml:"beta"`
	Betas    []float64 `toml:"betas"`
	BetaStep float64   `toml:"beta_step"`
	Phases   int       `toml:"phases"`
	Iters    int       `toml:"iters"`

	// Burn and Thin are optional so an explicit burn of zero or thin
	// of one overrides the variant default instead of vanishing into
	// the zero value.
	Burn *int `toml:"burn"`
	Thin *int `toml:"thin"`

	// Logger receives baking and annealing progress. Not part of the
	// TOML surface.
	Logger *log.Logger `toml:"-"`
}

// variant returns the effective generation variant.
func (r *Recipe) variant() string {
	if r.Variant == "" {
		return VariantMST
	}
	return r.Variant
}
