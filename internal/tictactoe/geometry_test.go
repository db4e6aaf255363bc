package tictactoe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations(t *testing.T) {
	t.Run("Classic 3x3 board", func(t *testing.T) {
		// When: combinations are computed for a 3x3 board
		combinations := Combinations(3)

		// Then: rows, columns and both diagonals come out in construction order
		expected := [][]int{
			{0, 1, 2},
			{3, 4, 5},
			{6, 7, 8},
			{0, 3, 6},
			{1, 4, 7},
			{2, 5, 8},
			{0, 4, 8},
			{6, 4, 2},
		}

		require.Equal(t, expected, combinations)
	})

	t.Run("2n+2 combinations of n in-range cells for any board size", func(t *testing.T) {
		for boardSize := 2; boardSize <= 6; boardSize++ {
			t.Run(fmt.Sprintf("board size %d", boardSize), func(t *testing.T) {
				combinations := Combinations(boardSize)

				require.Len(t, combinations, 2*boardSize+2)

				seen := make(map[string]bool, len(combinations))
				for _, combination := range combinations {
					require.Len(t, combination, boardSize)

					for _, cell := range combination {
						assert.GreaterOrEqual(t, cell, 0)
						assert.Less(t, cell, boardSize*boardSize)
					}

					key := fmt.Sprint(combination)
					assert.False(t, seen[key], "duplicate combination %v", combination)
					seen[key] = true
				}
			})
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		// Then: two computations for the same board size are identical
		require.Equal(t, Combinations(4), Combinations(4))
	})
}
