// Package kmeans: Lloyd's algorithm over la vectors.
//
// MAIN DESCRIPTION:
//   Train fits K centroids to a dataset by alternating assignment and
//   update steps until no point changes cluster or the iteration budget
//   runs out.
//
// Implementation:
//   Stage 1 — validation: non-empty data, consistent dimensions, at least
//   K points, options well-formed.
//   Stage 2 — seeding: uniform sampling of K distinct points, or
//   k-means++ (subsequent centroids drawn with probability proportional
//   to the squared distance from the nearest chosen centroid).
//   Stage 3 — Lloyd loop. The assignment step is partitioned across
//   Workers goroutines in an errgroup; each worker owns a disjoint slice
//   of the dataset, so no synchronization is needed beyond the join. The
//   update step runs sequentially: centroids become the mean of their
//   assigned points, and a cluster left empty keeps its previous
//   centroid.
//
// Behavior highlights:
//   - Sparse input vectors are accepted anywhere; centroids are always
//     dense.
//   - Cancelling the context aborts between assignment batches.
//
// Determinism: a fixed Seed yields an identical model on identical data,
// regardless of Workers.
// Complexity: O(iterations · n · K · dim) for the Euclidean and L1
// metrics.
package kmeans

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/linalg/la"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Trainer fits K-Means models. Construct with NewTrainer; the zero value
// is not usable.
type Trainer struct {
	opts Options
}

// NewTrainer builds a trainer from functional options applied over
// DefaultOptions.
//
// Errors: ErrOptionViolation when any option is invalid.
func NewTrainer(options ...Option) (*Trainer, error) {
	opts := DefaultOptions()
	var i int
	for i = 0; i < len(options); i++ {
		options[i](&opts)
	}
	if opts.err != nil {
		return nil, opts.err
	}

	return &Trainer{opts: opts}, nil
}

// Model is an immutable trained clustering. Accessors copy.
type Model struct {
	centroids   []*la.DenseVector
	assignments []int
	distance    Distance
	dim         int
	iterations  int
	converged   bool
}

// Train fits the configured number of centroids to data.
//
// Inputs: a cancellable context and at least K same-dimension vectors.
// Returns: the trained model, or an error.
// Errors: ErrNoData, ErrNilVector, ErrDimensionMismatch, ErrTooFewPoints,
// plus ctx.Err() on cancellation.
func (t *Trainer) Train(ctx context.Context, data []la.Vector) (*Model, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	var i int
	for i = 0; i < len(data); i++ {
		if data[i] == nil {
			return nil, ErrNilVector
		}
	}
	dim := data[0].Size()
	for i = 1; i < len(data); i++ {
		if data[i].Size() != dim {
			return nil, ErrDimensionMismatch
		}
	}
	if len(data) < t.opts.K {
		return nil, ErrTooFewPoints
	}

	rng := rand.New(rand.NewSource(t.opts.Seed))
	centroids, err := t.seed(rng, data)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if t.opts.Progress {
		bar = progressbar.NewOptions(t.opts.MaxIterations,
			progressbar.OptionSetDescription("kmeans"),
			progressbar.OptionClearOnFinish(),
		)
	}

	assignments := make([]int, len(data))
	for i = 0; i < len(data); i++ {
		assignments[i] = -1 // force a change on the first pass
	}

	model := &Model{distance: t.opts.Distance, dim: dim}
	var iteration int
	for iteration = 0; iteration < t.opts.MaxIterations; iteration++ {
		changed, err := t.assignStep(ctx, data, centroids, assignments)
		if err != nil {
			return nil, err
		}
		t.opts.Logger.Debug("kmeans iteration",
			zap.Int("iteration", iteration),
			zap.Int("reassigned", changed),
		)
		if bar != nil {
			_ = bar.Add(1)
		}
		if changed == 0 {
			model.converged = true
			break
		}

		t.updateStep(data, centroids, assignments)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	model.centroids = centroids
	model.assignments = assignments
	model.iterations = iteration
	if model.converged {
		model.iterations = iteration + 1
	}
	t.opts.Logger.Info("kmeans training finished",
		zap.Int("k", t.opts.K),
		zap.Int("points", len(data)),
		zap.Int("iterations", model.iterations),
		zap.Bool("converged", model.converged),
	)

	return model, nil
}

// seed produces the initial centroids per the configured strategy.
func (t *Trainer) seed(rng *rand.Rand, data []la.Vector) ([]*la.DenseVector, error) {
	centroids := make([]*la.DenseVector, t.opts.K)
	var i int

	if t.opts.Init == InitRandom {
		perm := rng.Perm(len(data))
		for i = 0; i < t.opts.K; i++ {
			centroids[i] = densify(data[perm[i]])
		}

		return centroids, nil
	}

	// k-means++: first centroid uniform, the rest distance-weighted
	centroids[0] = densify(data[rng.Intn(len(data))])
	weights := make([]float64, len(data))
	var c, p int
	for c = 1; c < t.opts.K; c++ {
		var total float64
		for p = 0; p < len(data); p++ {
			best, err := t.nearest(data[p], centroids[:c])
			if err != nil {
				return nil, err
			}
			d, err := t.metric(data[p], centroids[best])
			if err != nil {
				return nil, err
			}
			weights[p] = d * d
			total += weights[p]
		}
		if total == 0 {
			// all points coincide with chosen centroids; fall back to uniform
			centroids[c] = densify(data[rng.Intn(len(data))])
			continue
		}
		target := rng.Float64() * total
		var cumulative float64
		chosen := len(data) - 1
		for p = 0; p < len(data); p++ {
			cumulative += weights[p]
			if cumulative >= target {
				chosen = p
				break
			}
		}
		centroids[c] = densify(data[chosen])
	}

	return centroids, nil
}

// assignStep relabels every point with its nearest centroid, sharing the
// dataset across Workers goroutines, and returns the number of points
// that changed cluster.
func (t *Trainer) assignStep(ctx context.Context, data []la.Vector, centroids []*la.DenseVector, assignments []int) (int, error) {
	workers := t.opts.Workers
	if workers > len(data) {
		workers = len(data)
	}
	chunk := (len(data) + workers - 1) / workers
	changes := make([]int, workers)

	g, gctx := errgroup.WithContext(ctx)
	var w int
	for w = 0; w < workers; w++ {
		worker := w
		lo := worker * chunk
		hi := lo + chunk
		if hi > len(data) {
			hi = len(data)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var p int
			for p = lo; p < hi; p++ {
				best, err := t.nearest(data[p], centroids)
				if err != nil {
					return err
				}
				if best != assignments[p] {
					assignments[p] = best
					changes[worker]++
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for w = 0; w < workers; w++ {
		total += changes[w]
	}

	return total, nil
}

// updateStep recomputes each centroid as the mean of its assigned points.
// A cluster with no points keeps its previous centroid.
func (t *Trainer) updateStep(data []la.Vector, centroids []*la.DenseVector, assignments []int) {
	dim := centroids[0].Size()
	sums := make([]*la.DenseVector, len(centroids))
	counts := make([]int, len(centroids))
	var i int
	for i = 0; i < len(sums); i++ {
		sums[i], _ = la.NewDenseVector(dim)
	}

	for i = 0; i < len(data); i++ {
		counts[assignments[i]]++
		// accumulate the point's entries into the cluster sum
		_ = sums[assignments[i]].IntersectAddInPlace(data[i], func(x float64) float64 { return x })
	}

	for i = 0; i < len(centroids); i++ {
		if counts[i] == 0 {
			continue
		}
		sums[i].ScaleInPlace(1 / float64(counts[i]))
		centroids[i] = sums[i]
	}
}

// nearest returns the index of the centroid closest to v under the
// configured metric; ties resolve to the lowest index.
func (t *Trainer) nearest(v la.Vector, centroids []*la.DenseVector) (int, error) {
	best := 0
	bestDistance, err := t.metric(v, centroids[0])
	if err != nil {
		return 0, err
	}
	var c int
	for c = 1; c < len(centroids); c++ {
		d, err := t.metric(v, centroids[c])
		if err != nil {
			return 0, err
		}
		if d < bestDistance {
			best = c
			bestDistance = d
		}
	}

	return best, nil
}

// metric evaluates the configured distance between a point and a
// centroid.
func (t *Trainer) metric(a la.Vector, b *la.DenseVector) (float64, error) {
	return evalMetric(t.opts.Distance, a, b)
}

// cosineDistance returns 1 - cos(a, b); a zero-norm operand counts as
// maximally distant.
func cosineDistance(a, b la.Vector) (float64, error) {
	dot, err := la.Dot(a, b)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	na, nb := a.TwoNorm(), b.TwoNorm()
	if na == 0 || nb == 0 {
		return 1, nil
	}

	return 1 - dot/(na*nb), nil
}

// densify materializes any vector kind as an owned dense copy.
func densify(v la.Vector) *la.DenseVector {
	switch x := v.(type) {
	case *la.DenseVector:
		return x.Clone().(*la.DenseVector)
	case *la.SparseVector:
		return x.Densify()
	default:
		out, _ := la.NewDenseVector(v.Size())
		cur := v.Cursor()
		for cur.Next() {
			e := cur.Entry()
			_ = out.Set(e.Index, e.Value)
		}

		return out
	}
}

// K returns the number of centroids.
func (m *Model) K() int { return len(m.centroids) }

// Iterations returns how many Lloyd iterations ran.
func (m *Model) Iterations() int { return m.iterations }

// Converged reports whether training stopped because no assignment
// changed, rather than by exhausting the iteration budget.
func (m *Model) Converged() bool { return m.converged }

// Centroids returns deep copies of the fitted centroids.
func (m *Model) Centroids() []*la.DenseVector {
	out := make([]*la.DenseVector, len(m.centroids))
	var i int
	for i = 0; i < len(m.centroids); i++ {
		out[i] = m.centroids[i].Clone().(*la.DenseVector)
	}

	return out
}

// Assignments returns a copy of the final training-point labels, indexed
// like the training data.
func (m *Model) Assignments() []int {
	out := make([]int, len(m.assignments))
	copy(out, m.assignments)

	return out
}

// Assign returns the nearest-centroid label for a query vector under the
// training metric.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
func (m *Model) Assign(v la.Vector) (int, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	if v.Size() != m.dim {
		return 0, ErrDimensionMismatch
	}

	best := 0
	var bestDistance float64
	var c int
	for c = 0; c < len(m.centroids); c++ {
		d, err := evalMetric(m.distance, v, m.centroids[c])
		if err != nil {
			return 0, err
		}
		if c == 0 || d < bestDistance {
			best = c
			bestDistance = d
		}
	}

	return best, nil
}

// evalMetric dispatches a Distance kind to the la kernels.
func evalMetric(kind Distance, a la.Vector, b *la.DenseVector) (float64, error) {
	switch kind {
	case DistanceL1:
		d, err := la.L1Distance(a, b)
		if err != nil {
			return 0, ErrDimensionMismatch
		}

		return d, nil
	case DistanceCosine:
		return cosineDistance(a, b)
	default:
		d, err := la.EuclideanDistance(a, b)
		if err != nil {
			return 0, ErrDimensionMismatch
		}

		return d, nil
	}
}
