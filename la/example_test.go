package la_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/la"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDot
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Take the inner product of a sparse vector and a dense all-ones vector.
//	  s = size 5, active {1: 2.0, 3: -1.0}
//	  d = [1, 1, 1, 1, 1]
//
// Use case:
//
//	Scoring a sparse feature vector against a dense weight vector; only
//	the active indices contribute.
//
// Complexity: O(nnz) time.
func ExampleDot() {
	s, err := la.NewSparseVector(5, []int{1, 3}, []float64{2.0, -1.0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d, err := la.DenseVectorFrom([]float64{1, 1, 1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	score, err := la.Dot(s, d)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("dot=%.0f\n", score)
	// Output:
	// dot=1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCholesky
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Factorize the SPD matrix [[2, 1], [1, 2]] and solve A·x = (3, 3).
//
// Use case:
//
//	Solving a symmetric positive-definite system (covariances, normal
//	equations) at a third of the cost of a general LU solve.
//
// Complexity: O(n³/3) factorization, O(n²) per solve.
func ExampleCholesky() {
	a, err := la.DenseMatrixFrom([][]float64{{2, 1}, {1, 2}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	f, err := la.Cholesky(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	b, err := la.DenseVectorFrom([]float64{3, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x, err := f.SolveVec(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("det=%.0f\n", f.Determinant())
	fmt.Printf("x=(%.3f, %.3f)\n", x.ToSlice()[0], x.ToSlice()[1])
	// Output:
	// det=3
	// x=(1.000, 1.000)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEigen
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decompose the SPD matrix [[2, 1], [1, 2]]; its spectrum is {3, 1}.
//
// Use case:
//
//	Spectral analysis of a symmetric matrix: eigenvalues come out sorted
//	descending with matched eigenvector columns.
//
// Complexity: O(n³) time.
func ExampleEigen() {
	a, err := la.DenseMatrixFrom([][]float64{{2, 1}, {1, 2}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	f, err := la.Eigen(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	values := f.Eigenvalues()
	fmt.Printf("eigenvalues=(%.0f, %.0f)\n", values[0], values[1])
	fmt.Printf("positive=%v\n", f.PositiveEigenvalues())
	// Output:
	// eigenvalues=(3, 1)
	// positive=true
}
