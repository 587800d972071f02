package checkers

import (
	"testing"

	"github.com/avolkov/ledboy/internal/games/gametest"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
)

func clearBoard(g *Game) {
	g.board = [pixel.Height][pixel.Width]int{}
}

func TestInitialSetup(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	p1, p2 := 0, 0
	for y := range pixel.Height {
		for x := range pixel.Width {
			switch g.board[y][x] {
			case p1Man:
				p1++
				if y < 5 {
					t.Errorf("P1 man at (%d,%d) outside rows 5-7", x, y)
				}
			case p2Man:
				p2++
				if y > 2 {
					t.Errorf("P2 man at (%d,%d) outside rows 0-2", x, y)
				}
			}
			if g.board[y][x] != empty && (x+y)%2 != 1 {
				t.Errorf("piece on light square (%d,%d)", x, y)
			}
		}
	}
	if p1 != 12 || p2 != 12 {
		t.Errorf("pieces = %d/%d, expected 12 each", p1, p2)
	}
}

func TestForcedCaptureRestrictsMoves(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())
	clearBoard(g)

	// P1 at (2,5) can capture over (3,4); P1 at (6,5) has only plain
	// moves. With a capture on the board, only the jump is legal.
	g.board[5][2] = p1Man
	g.board[4][3] = p2Man
	g.board[5][6] = p1Man

	legal := g.movesFor(1)
	if len(legal) != 1 {
		t.Fatalf("legal moves = %d, expected only the forced capture", len(legal))
	}
	m := legal[0]
	if !m.capture || m.toX != 4 || m.toY != 3 {
		t.Errorf("move = %+v, expected capture landing at (4,3)", m)
	}
}

func TestCaptureRemovesPieceAndScores(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, twoP: true}
	g.Init(h.Clk.Now())
	clearBoard(g)

	g.board[5][2] = p1Man
	g.board[4][3] = p2Man
	g.board[2][1] = p2Man // P2 keeps a move so the round stays open

	legal := g.movesFor(1)
	g.execute(legal[0])

	if g.board[4][3] != empty {
		t.Error("jumped piece was not removed")
	}
	if g.board[3][4] != p1Man {
		t.Error("capturing piece did not land at (4,3)")
	}
	if h.Round.Score() != captureScore {
		t.Errorf("score = %d after capture, expected %d", h.Round.Score(), captureScore)
	}
}

func TestManPromotesAtFarRow(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())
	clearBoard(g)

	g.board[1][2] = p1Man
	moves := g.pieceMoves(2, 1)

	var toTop *move
	for i := range moves {
		if moves[i].toY == 0 {
			toTop = &moves[i]
			break
		}
	}
	if toTop == nil {
		t.Fatal("no move to the far row")
	}
	g.execute(*toTop)

	if g.board[0][toTop.toX] != p1King {
		t.Errorf("piece = %d at far row, expected promotion to king", g.board[0][toTop.toX])
	}
}

func TestKingMovesBothWays(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())
	clearBoard(g)

	g.board[4][3] = p1King
	moves := g.pieceMoves(3, 4)

	if len(moves) != 4 {
		t.Errorf("king moves = %d from an open center, expected 4", len(moves))
	}
}

func TestOpponentPrefersCapture(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())
	clearBoard(g)

	// P2 at (3,2) can jump P1 at (4,3); another P2 piece has only
	// plain moves. Forced capture leaves one legal move.
	g.board[2][3] = p2Man
	g.board[3][4] = p1Man
	g.board[0][1] = p2Man
	g.board[7][6] = p1Man // P1 keeps a piece so the round stays open
	g.turn = 2

	g.opponentMove()

	if g.board[3][4] != empty {
		t.Error("opponent did not take the capture")
	}
	if g.board[4][5] != p2Man {
		t.Error("opponent did not land at (5,4)")
	}
	if g.turn != 1 {
		t.Errorf("turn = %d after opponent move, expected 1", g.turn)
	}
}

func TestOpponentWithNoMovesLoses(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())
	clearBoard(g)

	// P2's only man is boxed into the bottom-left corner by P1 men it
	// cannot jump (the landing squares are off the board).
	g.board[7][0] = p2Man
	g.board[6][1] = p1Man
	g.board[5][2] = p1Man
	g.turn = 2

	g.opponentMove()

	if !h.Round.Over || !h.Round.Win {
		t.Fatalf("expected a won round, over=%v win=%v", h.Round.Over, h.Round.Win)
	}
	if h.Round.Msg != "P1 Wins" {
		t.Errorf("message = %q, expected %q", h.Round.Msg, "P1 Wins")
	}
}

func TestSelectAndMoveViaCursor(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, twoP: true}
	g.Init(h.Clk.Now())
	clearBoard(g)

	g.board[5][2] = p1Man
	g.board[0][1] = p2Man // P2 stays movable
	g.cx, g.cy = 2, 5

	h.Press(input.Action) // select
	g.Update(h.Clk.Now())
	if !g.selected {
		t.Fatal("piece was not selected")
	}

	h.Press(input.Left)
	g.Update(h.Clk.Now())
	h.Press(input.Up)
	g.Update(h.Clk.Now())
	h.Press(input.Action) // move to (1,4)
	g.Update(h.Clk.Now())

	if g.board[4][1] != p1Man {
		t.Errorf("piece did not move to (1,4), board cell = %d", g.board[4][1])
	}
	if g.turn != 2 {
		t.Errorf("turn = %d after move, expected 2", g.turn)
	}
}
