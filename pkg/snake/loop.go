package snake

import (
	"context"
	"time"
)

// Key events delivered by the presentation layer's input source
type Event uint8

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventQuit
)

// Non-blocking input. Poll returns the next pending event, or false
// immediately when nothing is buffered. It must never block.
type EventSource interface {
	Poll() (Event, bool)
}

const (
	// Real time between world ticks, lower = faster
	DefaultTickInterval = 120 * time.Millisecond

	// Sleep between loop passes, to avoid busy-spinning
	pollSleep = 5 * time.Millisecond
)

// Fixed-interval driver: every pass drains all buffered input, then
// runs one Tick + render once the tick interval has elapsed. Ticks are
// strictly sequential. The loop stops on a quit event, on context
// cancellation, or when the world dies, always finishing with one last
// render.
type Loop struct {
	world    *World
	input    EventSource
	render   func(*World)
	interval time.Duration
}

func NewLoop(world *World, input EventSource, render func(*World)) *Loop {
	return &Loop{
		world:    world,
		input:    input,
		render:   render,
		interval: DefaultTickInterval,
	}
}

func (l *Loop) SetInterval(d time.Duration) {
	if d > 0 {
		l.interval = d
	}
}

func (l *Loop) World() *World {
	return l.world
}

type intervalTimer struct {
	start    time.Time
	duration time.Duration
}

// Check if this timer has ended
func (t *intervalTimer) IsEnd() bool {
	return time.Since(t.start) >= t.duration
}

// Set the 'start' as now
func (t *intervalTimer) Reset() {
	t.start = time.Now()
}

func (l *Loop) Run(ctx context.Context) {
	timer := intervalTimer{start: time.Now(), duration: l.interval}
	defer l.draw()

	for l.world.Alive() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !l.drainInput() {
			return
		}

		if timer.IsEnd() {
			l.world.Tick()
			l.draw()
			timer.Reset()
		}

		time.Sleep(pollSleep)
	}
}

// Resolve all buffered input before the next tick. Each direction
// request is checked against the most recently accepted direction, so
// the last valid one wins. Returns false on quit.
func (l *Loop) drainInput() bool {
	for {
		ev, ok := l.input.Poll()
		if !ok {
			return true
		}

		switch ev {
		case EventUp:
			l.world.SetDirection(DirUp)
		case EventDown:
			l.world.SetDirection(DirDown)
		case EventLeft:
			l.world.SetDirection(DirLeft)
		case EventRight:
			l.world.SetDirection(DirRight)
		case EventQuit:
			return false
		}
	}
}

func (l *Loop) draw() {
	if l.render != nil {
		l.render(l.world)
	}
}
