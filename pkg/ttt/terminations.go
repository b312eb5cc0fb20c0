package ttt

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCrossWon  Termination = 1
	TerminationCircleWon Termination = 2
	TerminationDraw      Termination = 4
)

// Score magnitude of a completed line, before the search's depth adjustment
const WinScore = 10

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Winner returns the player holding a completed line, or None
func (p *Position) Winner() PlayerType {
	crossbb := p.bitboards[_bitboardCrossIdx]
	circlebb := p.bitboards[_bitboardCircleIdx]

	for i := range _winningBitboardPatterns {
		if crossbb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return Cross
		}
		if circlebb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return Circle
		}
	}
	return None
}

// Evaluate scores the position from 'side's perspective:
// +WinScore if side holds a completed line, -WinScore if the opponent
// does, 0 otherwise (including draws and in-progress positions)
func (p *Position) Evaluate(side PlayerType) int {
	switch p.Winner() {
	case side:
		return WinScore
	case side.Other():
		return -WinScore
	}
	return 0
}

// Termination is recomputed from the board, the position keeps no flag
func (p *Position) Termination() Termination {
	switch p.Winner() {
	case Cross:
		return TerminationCrossWon
	case Circle:
		return TerminationCircleWon
	}
	if !p.MovesLeft() {
		return TerminationDraw
	}
	return TerminationNone
}

func (p *Position) IsTerminated() bool {
	return p.Termination() != TerminationNone
}
