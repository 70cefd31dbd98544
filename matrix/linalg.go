// SPDX-License-Identifier: MIT
// Package matrix: least-squares kernels (Gram, TMulVec, AddDiag) and the
// LU-based solvers (LU, Solve, Inverse).
//
// Notes:
//   - No pivoting anywhere. The fitter only factorises symmetric positive
//     (semi-)definite systems, where Doolittle without pivoting is stable
//     enough, and a zero pivot is reported as ErrSingular.
//   - Every kernel allocates its result; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opGram    = "Gram"
	opTMulVec = "TMulVec"
	opAddDiag = "AddDiag"
	opLU      = "LU"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Gram computes G = JᵀJ for an n×k matrix J without forming Jᵀ.
// Implementation:
//   - Stage 1: Validate J non-nil; allocate k×k result.
//   - Stage 2: Accumulate the upper triangle row by row of J, mirror to the lower.
//
// The result is exactly symmetric, which keeps the later LU deterministic.
// Complexity: O(n·k²) time, O(k²) memory.
func Gram(j *Dense) (*Dense, error) {
	if j == nil {
		return nil, matrixErrorf(opGram, ErrNilMatrix)
	}
	k := j.c
	g, err := NewDense(k, k)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var (
		row, a, b int
		base      int
	)
	for row = 0; row < j.r; row++ { // fixed row order → deterministic sums
		base = row * k
		for a = 0; a < k; a++ {
			for b = a; b < k; b++ {
				g.data[a*k+b] += j.data[base+a] * j.data[base+b]
			}
		}
	}
	// Mirror the upper triangle
	for a = 0; a < k; a++ {
		for b = a + 1; b < k; b++ {
			g.data[b*k+a] = g.data[a*k+b]
		}
	}

	return g, nil
}

// TMulVec computes Jᵀv for an n×k matrix J and a length-n vector v.
// Returns ErrDimensionMismatch when len(v) != J.Rows().
// Complexity: O(n·k).
func TMulVec(j *Dense, v []float64) ([]float64, error) {
	if j == nil {
		return nil, matrixErrorf(opTMulVec, ErrNilMatrix)
	}
	if len(v) != j.r {
		return nil, matrixErrorf(opTMulVec, fmt.Errorf("len(v)=%d, rows=%d: %w", len(v), j.r, ErrDimensionMismatch))
	}
	out := make([]float64, j.c)
	for row := 0; row < j.r; row++ {
		base := row * j.c
		for col := 0; col < j.c; col++ {
			out[col] += j.data[base+col] * v[row]
		}
	}

	return out, nil
}

// AddDiag returns a copy of the square matrix m with d[i] added to m[i,i].
// This is the damping step A + λ·D of Levenberg–Marquardt.
func AddDiag(m *Dense, d []float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAddDiag, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opAddDiag, ErrNonSquare)
	}
	if len(d) != m.r {
		return nil, matrixErrorf(opAddDiag, ErrDimensionMismatch)
	}
	out := m.Clone()
	for i, v := range d {
		out.data[i*out.c+i] += v
	}

	return out, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square, finite); allocate L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular (if U[i,i]==0).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m *Dense) (*Dense, *Dense, error) {
	// Stage 1: Validate
	if m == nil {
		return nil, nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, nil, matrixErrorf(opLU, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, matrixErrorf(opLU, ErrNaNInf)
		}
	}

	n := m.r
	L, err := Identity(n) // unit lower triangular
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Stage 2: Doolittle on flat slices
	var (
		i, j, k      int
		sum          float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = m.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection)
		if U.data[baseI+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (m.data[baseJ+i] - sum) / U.data[baseI+i]
		}
	}

	return L, U, nil
}

// substitute solves L·U·x = b given Doolittle factors, writing into x.
// y is scratch of length n. Returns ErrSingular on a zero U pivot.
func substitute(L, U *Dense, b, y, x []float64) error {
	n := L.r
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L*y = b
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		pivot := U.data[i*n+i]
		if pivot == ZeroPivot {
			return ErrSingular
		}
		x[i] = (y[i] - sum) / pivot
	}

	return nil
}

// Solve returns x with A·x = b using Doolittle LU and two triangular solves.
// Errors:
//   - everything LU returns; ErrDimensionMismatch when len(b) != A.Rows();
//     ErrNaNInf when the solution is not finite (catastrophic cancellation).
//
// Complexity: O(n^3) for the factorisation, O(n^2) for the solves.
func Solve(a *Dense, b []float64) ([]float64, error) {
	L, U, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if len(b) != a.r {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), a.r, ErrDimensionMismatch))
	}

	y := make([]float64, a.r) // forward substitution workspace
	x := make([]float64, a.r)
	if err = substitute(L, U, b, y, x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opSolve, ErrNaNInf)
		}
	}

	return x, nil
}

// Inverse returns the inverse of the square matrix m.
// Blueprint:
//
//	Stage 1 (Decompose): A = L·U via Doolittle.
//	Stage 2 (Execute): for each identity column eᵢ, solve L·y = eᵢ then U·x = y.
//	Stage 3 (Finalize): assemble columns into the inverse and return.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m *Dense) (*Dense, error) {
	// Stage 1: LU decomposition
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Stage 2: one column at a time
	var (
		e = make([]float64, n) // basis vector
		y = make([]float64, n) // forward substitution workspace
		x = make([]float64, n) // backward substitution workspace
	)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		if err = substitute(L, U, e, y, x); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	// Stage 3: Return computed inverse
	return inv, nil
}
