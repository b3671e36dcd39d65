package kmeans_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linalg/kmeans"
	"github.com/katalvlaran/linalg/la"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTrainer_Train
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Cluster six 2-D points forming two well-separated blobs around
//	(0, 0) and (10, 10) into K=2 clusters with a fixed seed.
//
// Use case:
//
//	Unsupervised grouping of numeric records; a fixed seed makes the
//	result reproducible across runs and worker counts.
//
// Complexity: O(iterations · n · K · dim) time.
func ExampleTrainer_Train() {
	raw := [][]float64{
		{0, 0}, {0.5, 0}, {0, 0.5},
		{10, 10}, {10.5, 10}, {10, 10.5},
	}
	data := make([]la.Vector, 0, len(raw))
	for _, row := range raw {
		v, err := la.DenseVectorFrom(row)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		data = append(data, v)
	}

	trainer, err := kmeans.NewTrainer(kmeans.WithK(2), kmeans.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	model, err := trainer.Train(context.Background(), data)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	labels := model.Assignments()
	fmt.Printf("k=%d converged=%v\n", model.K(), model.Converged())
	fmt.Printf("blobs separated=%v\n", labels[0] == labels[1] && labels[3] == labels[4] && labels[0] != labels[3])
	// Output:
	// k=2 converged=true
	// blobs separated=true
}
