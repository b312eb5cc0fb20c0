package ttt

// Cell index on the 3x3 board, 0..8 row-major
type PosType uint8
type PlayerType uint8

const (
	None   PlayerType = 0
	Cross  PlayerType = 1
	Circle PlayerType = 2
)

// Sentinel for "no such cell", returned by the engine when the
// position has no legal moves left
const PosIllegal PosType = 0xff

// Get the opposing player
func (p PlayerType) Other() PlayerType {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (p PlayerType) String() string {
	switch p {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return "."
}
