package tictactoe

// Status is the phase of a game
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusWon
	StatusDraw
)

// Empty marks a free cell
const Empty = ' '

var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid of 'X', 'O' or Empty
type Board [3][3]rune

// NewBoard returns an empty board
func NewBoard() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c] = Empty
		}
	}
	return b
}

// Winner returns the player owning a full line
func (b Board) Winner() (rune, bool) {
	for _, l := range lines {
		p := b[l[0][0]][l[0][1]]
		if p != Empty && p == b[l[1][0]][l[1][1]] && p == b[l[2][0]][l[2][1]] {
			return p, true
		}
	}
	return 0, false
}

// Full reports whether no cell is free
func (b Board) Full() bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Other returns the opponent of p
func Other(p rune) rune {
	if p == 'X' {
		return 'O'
	}
	return 'X'
}

// BestMove returns the free cell with the best minimax score for p. Ties go
// to the first cell in reading order.
func BestMove(b Board, p rune) (int, int, bool) {
	bestR, bestC, best, found := 0, 0, -2, false
	for r := range b {
		for c := range b[r] {
			if b[r][c] != Empty {
				continue
			}
			next := b
			next[r][c] = p
			score := -negamax(next, Other(p))
			if !found || score > best {
				bestR, bestC, best, found = r, c, score, true
			}
		}
	}
	return bestR, bestC, found
}

// negamax scores the board for the player to move: 1 win, 0 draw, -1 loss
func negamax(b Board, toMove rune) int {
	if w, ok := b.Winner(); ok {
		if w == toMove {
			return 1
		}
		return -1
	}
	if b.Full() {
		return 0
	}

	best := -2
	for r := range b {
		for c := range b[r] {
			if b[r][c] != Empty {
				continue
			}
			next := b
			next[r][c] = toMove
			if s := -negamax(next, Other(toMove)); s > best {
				best = s
			}
		}
	}
	return best
}
