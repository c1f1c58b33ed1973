// Package assignment solves the minimum-cost bipartite assignment problem
// used by the correspondence engine's Phase 2 (optimal re-assignment of the
// objects carry-over left unmatched).
package assignment

import (
	hungarian "github.com/arthurkushman/go-hungarian"
	"gonum.org/v1/gonum/mat"
)

// Assignment represents a match between two indices of a solved cost matrix.
type Assignment struct {
	RowIdx int
	ColIdx int
}

// profitScale is the constant profit ceiling used to convert the cost
// matrix into a profit matrix for the maximizing Hungarian solver.
const profitScale = 1e6

// Solve finds the minimum-cost assignment over a (possibly non-square) cost
// matrix. Entries greater than or equal to forbidden are never returned; a
// caller fills the cost matrix with forbidden wherever a pairing cannot be
// made at all.
//
// Returns the accepted assignments plus the row and column indices left
// unmatched.
func Solve(cost *mat.Dense, forbidden float64) (matched []Assignment, unmatchedRows, unmatchedCols []int) {
	if cost == nil {
		return nil, nil, nil
	}
	numRows, numCols := cost.Dims()
	if numRows == 0 {
		return nil, nil, nil
	}
	if numCols == 0 {
		unmatchedRows = make([]int, numRows)
		for i := range unmatchedRows {
			unmatchedRows[i] = i
		}
		return nil, unmatchedRows, nil
	}

	// Pad to square matrix and convert cost to profit.
	size := max(numRows, numCols)
	profit := make([][]float64, size)
	for i := range profit {
		profit[i] = make([]float64, size)
		for j := range profit[i] {
			if i < numRows && j < numCols {
				profit[i][j] = profitScale - cost.At(i, j)
			}
			// dummy padding stays at zero profit
		}
	}

	// Solve using Hungarian algorithm (maximizes profit = minimizes cost).
	result := hungarian.SolveMax(profit)

	matchedRows := make(map[int]bool)
	matchedCols := make(map[int]bool)

	for rowIdx, cols := range result {
		for colIdx, p := range cols {
			if rowIdx >= numRows || colIdx >= numCols {
				continue
			}
			c := profitScale - p
			if c >= forbidden {
				continue
			}
			matched = append(matched, Assignment{RowIdx: rowIdx, ColIdx: colIdx})
			matchedRows[rowIdx] = true
			matchedCols[colIdx] = true
		}
	}

	for i := 0; i < numRows; i++ {
		if !matchedRows[i] {
			unmatchedRows = append(unmatchedRows, i)
		}
	}
	for j := 0; j < numCols; j++ {
		if !matchedCols[j] {
			unmatchedCols = append(unmatchedCols, j)
		}
	}

	return matched, unmatchedRows, unmatchedCols
}
