package ttt

import "math"

// Exhaustive minimax evaluator for one side. Tic-tac-toe is at most
// 9 plies deep, so the whole game tree is searched, no pruning.
//
// Terminal scores are depth-adjusted: a win found at depth d is worth
// WinScore-d and a loss -WinScore+d, so the engine prefers faster wins
// and slower losses. This is a tie-break, not an optimization.
type Engine struct {
	side  PlayerType
	nodes uint64
}

// Create an engine playing for 'side'
func NewEngine(side PlayerType) *Engine {
	return &Engine{side: side}
}

func (e *Engine) Side() PlayerType {
	return e.side
}

// Number of nodes visited during the last BestMove call
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// BestMove picks the cell with the maximum minimax value for the
// engine's side, first-seen on ties. Returns PosIllegal when the
// position has no empty cell, callers should check IsTerminated
// before asking for a move.
//
// The search works on the passed position with MakeMove/UndoMove
// pairs and always restores it, but no other goroutine may touch the
// position while the search runs. Given equal positions, the result
// is fully deterministic.
func (e *Engine) BestMove(pos *Position) PosType {
	e.nodes = 0
	best := PosIllegal
	bestVal := math.MinInt

	for _, mv := range pos.GenerateMoves().Slice() {
		pos.MakeMove(mv, e.side)
		val := e.minimax(pos, 0, false)
		pos.UndoMove(mv)

		if val > bestVal {
			bestVal = val
			best = mv
		}
	}

	return best
}

// One ply of the search: the engine's side maximizes, the opponent
// minimizes. 'depth' counts plies below the top-level trial move.
func (e *Engine) minimax(pos *Position, depth int, maximizing bool) int {
	e.nodes++

	// Terminal checks
	if score := pos.Evaluate(e.side); score != 0 {
		if score > 0 {
			return score - depth
		}
		return score + depth
	}
	if !pos.MovesLeft() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, mv := range pos.GenerateMoves().Slice() {
			pos.MakeMove(mv, e.side)
			best = max(best, e.minimax(pos, depth+1, false))
			pos.UndoMove(mv)
		}
		return best
	}

	best := math.MaxInt
	for _, mv := range pos.GenerateMoves().Slice() {
		pos.MakeMove(mv, e.side.Other())
		best = min(best, e.minimax(pos, depth+1, true))
		pos.UndoMove(mv)
	}
	return best
}
