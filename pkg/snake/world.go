package snake

import "math/rand"

const (
	DefaultWidth  = 30
	DefaultHeight = 20

	// Score added per food eaten
	FoodReward = 10

	initialLength = 3
)

// Grid world of the snake game. The body is kept head-first, all
// segments distinct and inside the grid, edges wrap around. The world
// owns its random source, there is no package-level RNG, pass a seeded
// rand for deterministic runs.
type World struct {
	width, height int
	snake         []Point
	food          Point
	dir           Direction
	score         int
	alive         bool
	rng           *rand.Rand
}

func NewWorld(width, height int, rng *rand.Rand) *World {
	w := &World{
		width:  width,
		height: height,
		rng:    rng,
	}
	w.Reset()
	return w
}

// Reset recreates the snake mid-board heading right and relocates the food
func (w *World) Reset() {
	mid := Point{w.width / 2, w.height / 2}
	w.snake = append(w.snake[:0],
		mid,
		Point{mid.X - 1, mid.Y},
		Point{mid.X - 2, mid.Y},
	)
	w.dir = DirRight
	w.score = 0
	w.alive = true
	w.placeFood()
}

func (w *World) Width() int           { return w.width }
func (w *World) Height() int          { return w.height }
func (w *World) Score() int           { return w.score }
func (w *World) Alive() bool          { return w.alive }
func (w *World) Direction() Direction { return w.dir }
func (w *World) Food() Point          { return w.food }
func (w *World) Head() Point          { return w.snake[0] }
func (w *World) Len() int             { return len(w.snake) }

// Body returns the segments head-first. The slice is the world's own,
// callers must not modify it.
func (w *World) Body() []Point {
	return w.snake
}

// SetDirection updates the direction applied on the next tick.
// A request reversing the most recently accepted direction is
// rejected and false is returned. Calls between ticks overwrite each
// other, the last valid one wins.
func (w *World) SetDirection(d Direction) bool {
	if d == w.dir.Opposite() {
		return false
	}
	w.dir = d
	return true
}

// Tick advances the world by one step: move the head one cell in the
// current direction wrapping at the edges, die on any body segment
// (the tail counts, it is still in place when the head arrives), grow
// on food. A tick on a dead world is a no-op.
func (w *World) Tick() {
	if !w.alive {
		return
	}

	head := w.snake[0]
	dx, dy := w.dir.Delta()
	next := Point{
		X: (head.X + dx + w.width) % w.width,
		Y: (head.Y + dy + w.height) % w.height,
	}

	if w.occupied(next) {
		w.alive = false
		return
	}

	// Push the new head
	w.snake = append(w.snake, Point{})
	copy(w.snake[1:], w.snake)
	w.snake[0] = next

	if next == w.food {
		// Tail stays, the snake grows by one segment
		w.score += FoodReward
		w.placeFood()
	} else {
		w.snake = w.snake[:len(w.snake)-1]
	}
}

func (w *World) occupied(p Point) bool {
	for _, s := range w.snake {
		if s == p {
			return true
		}
	}
	return false
}

// Rejection sampling: draw random cells until one is off the snake.
// Unbounded, but the board is never close to full in practice.
func (w *World) placeFood() {
	for {
		p := Point{w.rng.Intn(w.width), w.rng.Intn(w.height)}
		if !w.occupied(p) {
			w.food = p
			return
		}
	}
}
