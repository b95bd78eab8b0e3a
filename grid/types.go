// Package grid: sentinel errors, weight functions and build options.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors returned by Build and the ID helpers.
var (
	// ErrBadDims is returned when rows or cols is below 1.
	ErrBadDims = errors.New("grid: rows and cols must be >= 1")

	// ErrBadID is returned when an ID does not parse as "r,c".
	ErrBadID = errors.New("grid: malformed cell ID")

	// ErrNilWeightFn is returned when a nil WeightFn reaches Build.
	ErrNilWeightFn = errors.New("grid: nil weight function")
)

const (
	// idFmt is the fixed cell ID scheme, row-major "r,c".
	idFmt = "%d,%d"

	// defaultSeed seeds the weight stream when the caller passes seed 0.
	defaultSeed int64 = 1

	minDim = 1
)

// WeightFn produces one edge weight from the build's random source.
// Implementations must be deterministic for a fixed generator state.
type WeightFn func(rng *rand.Rand) float64

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min; configuration panics indicate
// programmer error, never runtime state.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("grid.UniformWeightFn: require 0 <= min <= max, got min=%g, max=%g", min, max))
	}
	span := max - min
	return func(rng *rand.Rand) float64 {
		if span == 0 {
			return min
		}
		return min + rng.Float64()*span
	}
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("grid.ConstantWeightFn: value must be >= 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// buildConfig collects Build options; the err field defers option
// validation to Build so constructors stay panic-free at runtime.
type buildConfig struct {
	seed     int64
	weightFn WeightFn
	err      error
}

// Option configures Build.
type Option func(*buildConfig)

// WithSeed fixes the weight stream. Seed 0 selects the package default,
// so the zero Option set still builds deterministically.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) { c.seed = seed }
}

// WithWeightFn replaces the default Uniform[0,1) weight function.
func WithWeightFn(fn WeightFn) Option {
	return func(c *buildConfig) {
		if fn == nil {
			c.err = ErrNilWeightFn
			return
		}
		c.weightFn = fn
	}
}

// WithConstWeight makes every lattice edge weigh w.
// Panics if w < 0 (via ConstantWeightFn).
func WithConstWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights from Uniform[min, max).
// Panics on a malformed interval (via UniformWeightFn).
func WithUniformWeight(min, max float64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// defaultConfig returns the baseline configuration: default seed,
// Uniform[0,1) weights.
func defaultConfig() buildConfig {
	return buildConfig{
		seed:     defaultSeed,
		weightFn: UniformWeightFn(0, 1),
	}
}
