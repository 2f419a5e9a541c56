// Package tictactoe is a two-player game with an optional computer player.
package tictactoe

import (
	"fmt"

	"github.com/arthur-debert/grugui/pkg/apps/ui"
	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/cssval"
)

// Game is the application state
type Game struct {
	Status Status
	Board  Board
	Next   rune
	// AI is the player the computer moves for, 0 for none
	AI rune
}

// New creates a game on its start screen
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

func (g *Game) Name() string { return "tictactoe" }

func (g *Game) Description() string { return "Tic-tac-toe with winner and draw detection" }

// Reset goes back to the start screen
func (g *Game) Reset() {
	g.Status = StatusStart
	g.Board = NewBoard()
	g.Next = 'X'
	g.AI = 0
}

// Start leaves the start screen
func (g *Game) Start() {
	g.Status = StatusPlaying
	g.playAI()
}

// Play puts the next player's mark on a free cell
func (g *Game) Play(r, c int) bool {
	if g.Status != StatusPlaying || g.Board[r][c] != Empty {
		return false
	}
	g.place(r, c)
	g.playAI()
	return true
}

func (g *Game) place(r, c int) {
	g.Board[r][c] = g.Next
	g.Next = Other(g.Next)

	switch _, won := g.Board.Winner(); {
	case won:
		g.Status = StatusWon
	case g.Board.Full():
		g.Status = StatusDraw
	}
}

func (g *Game) playAI() {
	if g.Status != StatusPlaying || g.AI == 0 || g.Next != g.AI {
		return
	}
	if r, c, ok := BestMove(g.Board, g.AI); ok {
		g.place(r, c)
	}
}

// Render draws the start screen or the board
func (g *Game) Render(html backend.HTML, css backend.CSS) error {
	b := ui.New(html, css)

	b.El("main", attrs.Of("id", "app", "class", "tictactoe"), func() {
		if g.Status == StatusStart {
			g.renderStart(b)
			return
		}
		g.renderBoard(b)
		g.renderStatus(b)
		if g.Status != StatusPlaying {
			b.El("button", attrs.Attrs{attrs.Str("id", "new-game"), attrs.On("click", g.Reset)}, func() {
				b.Text("New Game")
			})
		}
	})

	cell := cssval.Em(2)
	b.Rule(".tictactoe .cell",
		ui.P("width", cell),
		ui.P("height", cell),
		ui.P("font-family", "monospace"),
	)
	b.Rule(".tictactoe .status",
		ui.P("margin-top", cell.Mul(0.25)),
	)
	return b.Err()
}

func (g *Game) renderStart(b *ui.Builder) {
	radio := func(group, id string, checked bool, pick func()) {
		b.Void("input", attrs.Attrs{
			attrs.Str("type", "radio"),
			attrs.Str("name", group),
			attrs.Str("id", group+"-"+id),
			attrs.Bool("checked", checked),
			attrs.On("click", pick),
		})
		b.El("label", attrs.Of("for", group+"-"+id), func() { b.Text(id) })
	}

	b.El("fieldset", nil, func() {
		b.El("legend", nil, func() { b.Text("Start Player: ") })
		for _, p := range []rune{'X', 'O'} {
			radio("start", string(p), g.Next == p, func() { g.Next = p })
		}
	})

	b.El("fieldset", nil, func() {
		b.El("legend", nil, func() { b.Text("AI Player: ") })
		radio("ai", "None", g.AI == 0, func() { g.AI = 0 })
		for _, p := range []rune{'X', 'O'} {
			radio("ai", string(p), g.AI == p, func() { g.AI = p })
		}
	})

	b.El("button", attrs.Attrs{attrs.Str("id", "start"), attrs.On("click", g.Start)}, func() {
		b.Text("Start Game")
	})
}

func (g *Game) renderBoard(b *ui.Builder) {
	b.El("div", attrs.Of("class", "board"), func() {
		for r := range g.Board {
			b.El("div", attrs.Of("class", "row"), func() {
				for c := range g.Board[r] {
					b.El("button", attrs.Attrs{
						attrs.Str("class", "cell"),
						attrs.Str("id", fmt.Sprintf("cell-%d-%d", r, c)),
						attrs.On("click", func() { g.Play(r, c) }),
					}, func() {
						b.El("code", nil, func() {
							if g.Board[r][c] == Empty {
								b.Raw("&nbsp;")
								return
							}
							b.Text(string(g.Board[r][c]))
						})
					})
				}
			})
		}
	})
}

func (g *Game) renderStatus(b *ui.Builder) {
	b.El("div", attrs.Of("class", "status", "id", "status"), func() {
		switch g.Status {
		case StatusPlaying:
			b.Text(fmt.Sprintf("%c's move", g.Next))
		case StatusWon:
			w, _ := g.Board.Winner()
			if w == g.AI {
				b.Text(fmt.Sprintf("The computer (%c) wins", w))
				return
			}
			b.Text(fmt.Sprintf("%c wins!", w))
		case StatusDraw:
			b.Text("Draw.")
		}
	})
}
