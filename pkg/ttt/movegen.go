package ttt

import (
	"math/bits"
	"strconv"
	"strings"
)

type MoveList struct {
	moves [9]PosType
	size  uint8
}

// Make a new move list struct
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Reset the movelist, simply sets the size to 0
func (ml *MoveList) Clear() {
	ml.size = 0
}

// Get the actual slice of valid moves
func (ml *MoveList) Slice() []PosType {
	return ml.moves[0:ml.size]
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

// Appends a new move to the list of moves
func (ml *MoveList) Append(mv PosType) {
	ml.moves[ml.size] = mv
	ml.size++
}

func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	strMoves := make([]string, 0, ml.size)
	for _, m := range ml.Slice() {
		strMoves = append(strMoves, strconv.Itoa(int(m)+1))
	}
	return strings.Join(strMoves, " ")
}

// Generate all possible moves in given position, in ascending cell order
func (p *Position) GenerateMoves() *MoveList {
	movelist := NewMoveList()

	free := uint(_fullMask ^ p.occupied())
	for free != 0 {
		movelist.Append(PosType(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}
