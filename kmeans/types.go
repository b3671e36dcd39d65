// Package kmeans provides tunable options and error definitions for the
// K-Means trainer built on the la kernel.
package kmeans

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for training and prediction.
var (
	// ErrNoData is returned when Train receives an empty dataset.
	ErrNoData = errors.New("kmeans: no training data")

	// ErrTooFewPoints is returned when the dataset holds fewer points than
	// requested centroids.
	ErrTooFewPoints = errors.New("kmeans: fewer points than centroids")

	// ErrDimensionMismatch is returned when the dataset rows (or a query
	// vector) disagree on dimensionality.
	ErrDimensionMismatch = errors.New("kmeans: dimension mismatch")

	// ErrNilVector is returned if a nil vector appears in the dataset or as
	// a query.
	ErrNilVector = errors.New("kmeans: nil vector")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmeans: invalid option supplied")
)

// Distance selects the metric used for assignment and prediction.
//
//   - DistanceEuclidean — the l2 metric; the classic K-Means objective.
//   - DistanceL1        — the Manhattan metric; more robust to outliers.
//   - DistanceCosine    — 1 minus the cosine similarity; angle-driven
//     clustering for direction-dominated data.
type Distance int

const (
	// DistanceEuclidean selects the l2 metric.
	DistanceEuclidean Distance = iota

	// DistanceL1 selects the Manhattan metric.
	DistanceL1

	// DistanceCosine selects 1 - cosine similarity.
	DistanceCosine
)

// Init selects the centroid seeding strategy.
//
//   - InitRandom   — sample K distinct points uniformly from the dataset.
//   - InitPlusPlus — k-means++: sample subsequent centroids with
//     probability proportional to the squared distance from the nearest
//     centroid already chosen. Slower to seed, usually faster to converge.
type Init int

const (
	// InitRandom samples K distinct dataset points uniformly.
	InitRandom Init = iota

	// InitPlusPlus applies the k-means++ seeding scheme.
	InitPlusPlus
)

// Defaults applied by DefaultOptions.
const (
	// DefaultK is the default centroid count.
	DefaultK = 2

	// DefaultMaxIterations caps the Lloyd iterations when convergence is
	// not reached earlier.
	DefaultMaxIterations = 100

	// DefaultWorkers is the default e-step parallelism.
	DefaultWorkers = 4

	// DefaultSeed keeps training deterministic unless overridden.
	DefaultSeed int64 = 1
)

// Option configures training via functional arguments. An invalid Option
// (e.g. non-positive K) is recorded internally and surfaced as
// ErrOptionViolation when Train is invoked.
type Option func(*Options)

// Options holds the trainer parameters.
type Options struct {
	// K is the number of centroids to fit.
	K int

	// MaxIterations bounds the Lloyd loop; convergence may stop earlier.
	MaxIterations int

	// Distance is the assignment metric.
	Distance Distance

	// Init is the centroid seeding strategy.
	Init Init

	// Workers is the number of goroutines sharing the e-step.
	Workers int

	// Seed drives centroid seeding; fixed seeds give repeatable models.
	Seed int64

	// Logger receives per-iteration diagnostics. Defaults to a no-op.
	Logger *zap.Logger

	// Progress enables a terminal progress bar over the iteration budget.
	Progress bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: K=2, 100 iterations,
// Euclidean assignment, k-means++ seeding, 4 workers, seed 1, no-op
// logger, no progress bar.
func DefaultOptions() Options {
	return Options{
		K:             DefaultK,
		MaxIterations: DefaultMaxIterations,
		Distance:      DistanceEuclidean,
		Init:          InitPlusPlus,
		Workers:       DefaultWorkers,
		Seed:          DefaultSeed,
		Logger:        zap.NewNop(),
		Progress:      false,
	}
}

// WithK sets the centroid count; values below 1 are rejected.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.K = k
	}
}

// WithMaxIterations bounds the Lloyd loop; values below 1 are rejected.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxIterations = n
	}
}

// WithDistance selects the assignment metric.
func WithDistance(d Distance) Option {
	return func(o *Options) {
		if d < DistanceEuclidean || d > DistanceCosine {
			o.err = ErrOptionViolation

			return
		}
		o.Distance = d
	}
}

// WithInit selects the seeding strategy.
func WithInit(init Init) Option {
	return func(o *Options) {
		if init < InitRandom || init > InitPlusPlus {
			o.err = ErrOptionViolation

			return
		}
		o.Init = init
	}
}

// WithWorkers sets the e-step parallelism; values below 1 are rejected.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.Workers = n
	}
}

// WithSeed fixes the seeding randomness.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger attaches a structured logger; nil is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithProgress renders a terminal progress bar across the iteration
// budget.
func WithProgress() Option {
	return func(o *Options) {
		o.Progress = true
	}
}
