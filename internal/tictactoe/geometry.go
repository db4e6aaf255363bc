package tictactoe

// Combinations - every winning line for a square board with the given side
// length, over the flat row-major cell indexing [0, boardSize²). Returns
// 2*boardSize+2 combinations of boardSize cells each: the rows, the columns,
// the main diagonal and the anti-diagonal, in that order. Pure; computed once
// per game at creation and frozen on the session afterwards.
func Combinations(boardSize int) [][]int {
	rows := make([][]int, boardSize)
	for r := 0; r < boardSize; r++ {
		rows[r] = make([]int, boardSize)
		for c := 0; c < boardSize; c++ {
			rows[r][c] = r*boardSize + c
		}
	}

	columns := make([][]int, boardSize)
	for c := 0; c < boardSize; c++ {
		columns[c] = make([]int, boardSize)
		for r := 0; r < boardSize; r++ {
			columns[c][r] = rows[r][c]
		}
	}

	diagonal := make([]int, boardSize)
	antiDiagonal := make([]int, boardSize)
	for i := 0; i < boardSize; i++ {
		diagonal[i] = rows[i][i]
		antiDiagonal[i] = rows[boardSize-1-i][i]
	}

	combinations := make([][]int, 0, 2*boardSize+2)
	combinations = append(combinations, rows...)
	combinations = append(combinations, columns...)
	combinations = append(combinations, diagonal, antiDiagonal)

	return combinations
}
