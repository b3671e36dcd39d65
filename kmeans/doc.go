// Package kmeans fits K-Means clusterings over la vectors.
//
// The kmeans package provides:
//
//   - Trainer, configured by functional options: centroid count,
//     iteration budget, distance metric (Euclidean, L1, cosine), seeding
//     strategy (uniform or k-means++), worker count and seed.
//   - A parallel assignment step: the dataset is partitioned across an
//     errgroup of workers, while the centroid update stays sequential
//     and deterministic.
//   - Model, the immutable training result: fitted centroids, training
//     assignments and nearest-centroid prediction for new vectors.
//
// Training accepts any mix of dense and sparse vectors of one dimension;
// centroids are always dense. A fixed seed makes training fully
// repeatable regardless of the worker count.
//
// See the package example and the la package for the underlying kernels.
package kmeans
