package domain

// NewBoard allocates an empty size×size board.
func NewBoard(size int) [][]PlayerID {
	board := make([][]PlayerID, size)
	for i := range board {
		board[i] = make([]PlayerID, size)
	}
	return board
}

func BoardSize(board [][]PlayerID) int {
	return len(board)
}

func InBounds(board [][]PlayerID, row, col int) bool {
	return row >= 0 && row < len(board) && col >= 0 && col < len(board)
}

func IsEmptyCell(board [][]PlayerID, row, col int) bool {
	return InBounds(board, row, col) && board[row][col] == Empty
}

// PlaceStone writes a stone without validation. Callers pair it with
// RemoveStone when the placement is speculative.
func PlaceStone(board [][]PlayerID, c Coordinate, player PlayerID) {
	board[c.Row][c.Col] = player
}

func RemoveStone(board [][]PlayerID, c Coordinate) {
	board[c.Row][c.Col] = Empty
}

func IsBoardFull(board [][]PlayerID) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

func CountEmpty(board [][]PlayerID) int {
	count := 0
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				count++
			}
		}
	}
	return count
}

// this creates a deep copy of the board
func CopyBoard(board [][]PlayerID) [][]PlayerID {
	newBoard := make([][]PlayerID, len(board))
	for i := range board {
		newBoard[i] = make([]PlayerID, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

func BoardsEqual(a, b [][]PlayerID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
