package snake

import (
	"context"
	"math/rand"
	"testing"
	"time"
)

// Scripted input source for loop tests, pops one event per Poll
type scriptedInput struct {
	events []Event
}

func (s *scriptedInput) Poll() (Event, bool) {
	if len(s.events) == 0 {
		return EventNone, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func TestLoopQuitStopsBeforeTick(t *testing.T) {
	w := NewWorld(10, 8, rand.New(rand.NewSource(1)))
	head := w.Head()

	renders := 0
	loop := NewLoop(w, &scriptedInput{events: []Event{EventQuit}}, func(*World) {
		renders++
	})
	loop.SetInterval(time.Hour) // the tick must never fire

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on quit")
	}

	if w.Head() != head {
		t.Fatal("world ticked after quit")
	}
	if renders != 1 {
		t.Fatalf("got %d renders, want exactly the final one", renders)
	}
}

func TestLoopCancelStopsPromptly(t *testing.T) {
	w := NewWorld(10, 8, rand.New(rand.NewSource(1)))
	loop := NewLoop(w, &scriptedInput{}, nil)
	loop.SetInterval(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop ignored context cancellation")
	}
}

func TestLoopDrainsBufferedInput(t *testing.T) {
	w := NewWorld(10, 8, rand.New(rand.NewSource(1)))
	// Moving right: left is rejected, up accepted, then quit. All
	// three resolve before any tick.
	in := &scriptedInput{events: []Event{EventLeft, EventUp, EventQuit}}

	loop := NewLoop(w, in, nil)
	loop.SetInterval(time.Hour)
	loop.Run(context.Background())

	if w.Direction() != DirUp {
		t.Fatalf("direction = %v, want up (last valid request wins)", w.Direction())
	}
	if len(in.events) != 0 {
		t.Fatalf("%d events left unread", len(in.events))
	}
}

func TestLoopTicksOnInterval(t *testing.T) {
	w := NewWorld(20, 8, rand.New(rand.NewSource(1)))
	w.food = Point{0, 0}
	head := w.Head()

	loop := NewLoop(w, &scriptedInput{}, nil)
	loop.SetInterval(time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	loop.Run(ctx)

	if w.Head() == head {
		t.Fatal("no tick happened within the deadline")
	}
}

func TestLoopRendersOnDeath(t *testing.T) {
	w := NewWorld(10, 8, rand.New(rand.NewSource(1)))
	w.snake = []Point{{2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}
	w.dir = DirDown
	w.food = Point{0, 0}

	renders := 0
	loop := NewLoop(w, &scriptedInput{}, func(*World) { renders++ })
	loop.SetInterval(time.Millisecond)

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after the snake died")
	}

	if w.Alive() {
		t.Fatal("loop returned with a living world and no quit")
	}
	if renders == 0 {
		t.Fatal("no final render after death")
	}
}
