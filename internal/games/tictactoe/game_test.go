package tictactoe

import (
	"testing"

	"github.com/avolkov/ledboy/internal/games/gametest"
	"github.com/avolkov/ledboy/internal/input"
)

func TestOpponentTakesImmediateWin(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	// Opponent has two on the diagonal; (2,2) wins immediately and
	// must be preferred over blocking or the center.
	g.board = [3][3]int{
		{2, 0, 0},
		{1, 2, 0},
		{1, 0, 0},
	}
	g.opponentMove()

	if g.board[2][2] != 2 {
		t.Fatalf("opponent played elsewhere, board=%v", g.board)
	}
	if g.winner() != outcomeP2 {
		t.Error("winning move did not win")
	}
}

func TestOpponentBlocksWhenNoWin(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	// Player threatens the top row; opponent must block at (2,0).
	g.board = [3][3]int{
		{1, 1, 0},
		{0, 2, 0},
		{0, 0, 0},
	}
	g.opponentMove()

	if g.board[0][2] != 2 {
		t.Errorf("opponent did not block, board=%v", g.board)
	}
}

func TestPlacingOnOccupiedCellIsRejected(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	g.board[1][1] = 2
	h.Press(input.Action)
	g.Update(h.Clk.Now())

	if g.board[1][1] != 2 {
		t.Error("occupied cell was overwritten")
	}
	if g.waiting {
		t.Error("rejected placement handed the turn to the opponent")
	}
}

func TestSinglePlayerWin(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	g.board = [3][3]int{
		{1, 1, 0},
		{2, 2, 0},
		{0, 0, 0},
	}
	g.cx, g.cy = 2, 0
	h.Press(input.Action)
	g.Update(h.Clk.Now())

	if !h.Round.Over || !h.Round.Win {
		t.Fatalf("expected a won round, over=%v win=%v", h.Round.Over, h.Round.Win)
	}
	if h.Round.Msg != "You Win" {
		t.Errorf("message = %q, expected %q", h.Round.Msg, "You Win")
	}
	if h.Round.Score() != 5 {
		t.Errorf("score = %d, expected 5", h.Round.Score())
	}
}

func TestOpponentWaitsBeforeMoving(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	h.Press(input.Action) // place at center
	g.Update(h.Clk.Now())
	if !g.waiting {
		t.Fatal("placement did not start the think delay")
	}

	h.Advance(aiThinkDelay - 50)
	g.Update(h.Clk.Now())
	if !g.waiting {
		t.Error("opponent moved before the think delay elapsed")
	}

	h.Advance(100)
	g.Update(h.Clk.Now())
	if g.waiting {
		t.Error("opponent never moved")
	}

	marks := 0
	for y := range 3 {
		for x := range 3 {
			if g.board[y][x] == 2 {
				marks++
			}
		}
	}
	if marks != 1 {
		t.Errorf("opponent marks = %d, expected 1", marks)
	}
}

func TestTwoPlayerAlternatesAndScoresMoves(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, twoP: true}
	g.Init(h.Clk.Now())

	h.Press(input.Action) // P1 at (1,1)
	g.Update(h.Clk.Now())
	if g.turn != 2 {
		t.Fatalf("turn = %d after P1 move, expected 2", g.turn)
	}

	h.Press(input.Left)
	g.Update(h.Clk.Now())
	h.Press(input.Action) // P2 at (0,1)
	g.Update(h.Clk.Now())

	if g.board[1][1] != 1 || g.board[1][0] != 2 {
		t.Errorf("board = %v, expected alternating marks", g.board)
	}
	if h.Round.Score() != 2 {
		t.Errorf("score = %d, expected 2 (one per move)", h.Round.Score())
	}
}

func TestTwoPlayerWinIsAlwaysWin(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, twoP: true}
	g.Init(h.Clk.Now())

	g.board = [3][3]int{
		{2, 2, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	g.turn = 2
	g.cx, g.cy = 2, 0
	h.Press(input.Action)
	g.Update(h.Clk.Now())

	if !h.Round.Over || !h.Round.Win {
		t.Fatalf("expected a won round, over=%v win=%v", h.Round.Over, h.Round.Win)
	}
	if h.Round.Msg != "P2 Wins" {
		t.Errorf("message = %q, expected %q", h.Round.Msg, "P2 Wins")
	}
}
