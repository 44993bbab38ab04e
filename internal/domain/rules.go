package domain

var winDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CheckWin reports whether the stone just played at c completes five
// or more in a row for player. It only inspects lines through c.
func CheckWin(board [][]PlayerID, c Coordinate, player PlayerID) bool {
	for _, dir := range winDirections {
		total := 1 +
			CountInDirection(board, c, dir[0], dir[1], player) +
			CountInDirection(board, c, -dir[0], -dir[1], player)
		if total >= ToWin {
			return true
		}
	}
	return false
}

// CountInDirection counts consecutive stones of player starting one
// step away from c, stopping at the first non-matching or out-of-bounds
// cell.
func CountInDirection(board [][]PlayerID, c Coordinate, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, col := c.Row+deltaRow, c.Col+deltaCol
	for r >= 0 && r < len(board) && col >= 0 && col < len(board) && board[r][col] == player {
		count++
		r += deltaRow
		col += deltaCol
	}
	return count
}

func CheckDraw(board [][]PlayerID) bool {
	return IsBoardFull(board)
}
