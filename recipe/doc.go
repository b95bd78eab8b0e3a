// Package recipe turns TOML documents into baked mazes.
//
// A recipe names a grid, a generation variant, and the knobs the
// variant cares about. Everything is optional except the dimensions;
// unset fields fall back to the variant defaults, so the smallest
// useful recipe is two lines:
//
//	rows = 8
//	cols = 8
//
// A fuller one pins the whole pipeline down:
//
//	rows        = 12
//	cols        = 12
//	variant     = "bounded-depth"
//	depth_bound = 6
//	root        = "5,5"
//	phases      = 8
//	iters       = 200
//	thin        = 20
//	seed        = 42
//	boundary    = true
//
// Load and Parse decode and validate; Bake runs the matching
// generator from package maze. Chain fields (beta, phases, iters and
// friends) only apply to the annealed variants and are ignored by
// "mst". Numeric zero means "use the default" except for burn and
// thin, which are optional fields so that an explicit zero or one
// survives decoding.
package recipe
