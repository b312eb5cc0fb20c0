package ttt

import (
	"math/rand"
	"testing"
)

func TestBestMoveTakesImmediateWin(t *testing.T) {
	// o at 4,8 completes the diagonal at 0
	pos := NewPosition()
	pos.MakeMove(4, Circle)
	pos.MakeMove(8, Circle)
	pos.MakeMove(1, Cross)
	pos.MakeMove(2, Cross)

	eng := NewEngine(Circle)
	if got := eng.BestMove(pos); got != 0 {
		t.Fatalf("BestMove = %d, want 0 (immediate win)", got)
	}
}

func TestBestMovePrefersFasterWin(t *testing.T) {
	// o at 1,4 can win at once on 7, while playing 3 also forces a
	// win (double threat on 5 and 7) but two plies later. Without the
	// depth adjustment both moves score the same and first-seen order
	// would pick 3, so the engine must land on 7.
	pos := NewPosition()
	pos.MakeMove(1, Circle)
	pos.MakeMove(4, Circle)
	pos.MakeMove(0, Cross)
	pos.MakeMove(2, Cross)

	eng := NewEngine(Circle)
	if got := eng.BestMove(pos); got != 7 {
		t.Fatalf("BestMove = %d, want 7, slower forced win must lose the tie-break", got)
	}
}

func TestBestMoveBlocksOpponentWin(t *testing.T) {
	// x at 0,1 threatens row 0-1-2, o holds the center
	pos := NewPosition()
	pos.MakeMove(0, Cross)
	pos.MakeMove(1, Cross)
	pos.MakeMove(4, Circle)

	eng := NewEngine(Circle)
	if got := eng.BestMove(pos); got != 2 {
		t.Fatalf("BestMove = %d, want 2 (block)", got)
	}
}

func TestBestMoveDeterministic(t *testing.T) {
	pos := NewPosition()
	pos.MakeMove(4, Cross)

	eng := NewEngine(Circle)
	first := eng.BestMove(pos)
	for i := 0; i < 5; i++ {
		if got := eng.BestMove(pos); got != first {
			t.Fatalf("BestMove not deterministic: got %d, then %d", first, got)
		}
	}

	// An equal position built independently must give the same move
	other := NewPosition()
	other.MakeMove(4, Cross)
	if got := NewEngine(Circle).BestMove(other); got != first {
		t.Fatalf("equal positions disagree: %d vs %d", got, first)
	}
}

func TestBestMoveEmptyBoard(t *testing.T) {
	pos := NewPosition()
	eng := NewEngine(Circle)

	mv := eng.BestMove(pos)
	if mv >= 9 {
		t.Fatalf("BestMove = %d, want a legal cell", mv)
	}
	// Full-depth search of the empty board visits the whole game tree
	if eng.Nodes() < 100000 {
		t.Fatalf("suspiciously small tree: %d nodes", eng.Nodes())
	}
	// And leaves the board untouched
	if *pos != *NewPosition() {
		t.Fatalf("BestMove mutated the position:\n%v", pos)
	}
}

func TestBestMoveFullBoard(t *testing.T) {
	pos := NewPosition()
	marks := [9]PlayerType{Cross, Circle, Cross, Cross, Circle, Circle, Circle, Cross, Cross}
	for i, m := range marks {
		pos.MakeMove(PosType(i), m)
	}

	if got := NewEngine(Circle).BestMove(pos); got != PosIllegal {
		t.Fatalf("BestMove on full board = %d, want PosIllegal", got)
	}
}

func TestOptimalSelfPlayDraws(t *testing.T) {
	for _, first := range []PlayerType{Cross, Circle} {
		pos := NewPosition()
		engines := map[PlayerType]*Engine{
			Cross:  NewEngine(Cross),
			Circle: NewEngine(Circle),
		}

		side := first
		for !pos.IsTerminated() {
			mv := engines[side].BestMove(pos)
			if mv == PosIllegal {
				t.Fatalf("no move on a non-terminal position:\n%v", pos)
			}
			if err := pos.Place(mv, side); err != nil {
				t.Fatalf("engine played illegal move %d: %v", mv, err)
			}
			side = side.Other()
		}

		if pos.Termination() != TerminationDraw {
			t.Fatalf("optimal self-play (%v first) ended %v, want draw:\n%v",
				first, pos.Termination(), pos)
		}
	}
}

func TestEngineNeverLosesToRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	eng := NewEngine(Circle)

	for _, engineFirst := range []bool{true, false} {
		for game := 0; game < 30; game++ {
			pos := NewPosition()
			engineTurn := engineFirst

			for !pos.IsTerminated() {
				if engineTurn {
					mv := eng.BestMove(pos)
					if err := pos.Place(mv, Circle); err != nil {
						t.Fatalf("game %d: engine move %d rejected: %v", game, mv, err)
					}
				} else {
					moves := pos.GenerateMoves().Slice()
					mv := moves[rng.Intn(len(moves))]
					if err := pos.Place(mv, Cross); err != nil {
						t.Fatalf("game %d: random move %d rejected: %v", game, mv, err)
					}
				}
				engineTurn = !engineTurn
			}

			if pos.Termination() == TerminationCrossWon {
				t.Fatalf("game %d (engineFirst=%v): engine lost:\n%v", game, engineFirst, pos)
			}
		}
	}
}
