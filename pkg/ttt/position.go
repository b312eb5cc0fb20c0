package ttt

import (
	"errors"
	"strings"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1

	// All 9 cells set
	_fullMask uint16 = 0b111111111
)

var (
	ErrOutOfRange = errors.New("ttt: cell index out of range")
	ErrOccupied   = errors.New("ttt: cell already taken")
)

// 3x3 board state, kept both as a mark array (for lookups and rendering)
// and as one bitboard per player (for win detection and move generation).
// The position does not track whose turn it is, alternation is the
// caller's responsibility.
type Position struct {
	board     [9]PlayerType
	bitboards [2]uint16
}

func NewPosition() *Position {
	return &Position{}
}

func bitboardIndex(player PlayerType) int {
	if player == Circle {
		return _bitboardCircleIdx
	}
	return _bitboardCrossIdx
}

// Place writes a mark into an empty cell, validating the request.
// On ErrOutOfRange or ErrOccupied the position is unchanged and the
// caller should re-prompt.
func (p *Position) Place(mv PosType, player PlayerType) error {
	if mv >= 9 {
		return ErrOutOfRange
	}
	if p.board[mv] != None {
		return ErrOccupied
	}
	p.MakeMove(mv, player)
	return nil
}

// MakeMove is the unchecked write used by the search, paired with UndoMove
func (p *Position) MakeMove(mv PosType, player PlayerType) {
	p.bitboards[bitboardIndex(player)] ^= 1 << mv
	p.board[mv] = player
}

// UndoMove reverts a MakeMove on the given cell
func (p *Position) UndoMove(mv PosType) {
	player := p.board[mv]
	if player == None {
		return
	}
	p.bitboards[bitboardIndex(player)] ^= 1 << mv
	p.board[mv] = None
}

func (p *Position) At(mv PosType) PlayerType {
	return p.board[mv]
}

func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

func (p *Position) occupied() uint16 {
	return p.bitboards[_bitboardCrossIdx] | p.bitboards[_bitboardCircleIdx]
}

// MovesLeft reports whether any empty cell remains
func (p *Position) MovesLeft() bool {
	return p.occupied() != _fullMask
}

func (p *Position) String() string {
	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			builder.WriteString(p.board[row*3+col].String())
			if col < 2 {
				builder.WriteByte('|')
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
