package tui

import (
	"errors"
	"os"
	"sync/atomic"

	"golang.org/x/term"

	"termgames/pkg/snake"
)

var ErrNotTerminal = errors.New("tui: stdin is not an interactive terminal")

// Raw-mode keyboard. A reader goroutine decodes stdin bytes into
// snake events and feeds a buffered channel, Poll takes from it
// without blocking, so the keyboard satisfies snake.EventSource.
// Close restores the terminal state.
type Keyboard struct {
	events   chan snake.Event
	restore  *term.State
	stopping atomic.Bool
}

// OpenKeyboard switches stdin to raw mode. Fails fast with
// ErrNotTerminal when stdin is not a tty (piped input, CI).
func OpenKeyboard() (*Keyboard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	kb := &Keyboard{
		events:  make(chan snake.Event, 32),
		restore: state,
	}
	go kb.readLoop()
	return kb, nil
}

func (kb *Keyboard) Close() error {
	kb.stopping.Store(true)
	return term.Restore(int(os.Stdin.Fd()), kb.restore)
}

// Poll implements snake.EventSource
func (kb *Keyboard) Poll() (snake.Event, bool) {
	select {
	case ev := <-kb.events:
		return ev, true
	default:
		return snake.EventNone, false
	}
}

func (kb *Keyboard) readLoop() {
	// 3 bytes so an arrow escape sequence arrives in one read
	buf := make([]byte, 3)
	for !kb.stopping.Load() {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			// Input source closed: tell the loop to stop
			kb.send(snake.EventQuit)
			return
		}
		for _, ev := range decodeKeys(buf[:n]) {
			kb.send(ev)
		}
	}
}

// Drop events when the buffer is full instead of blocking the reader
func (kb *Keyboard) send(ev snake.Event) {
	select {
	case kb.events <- ev:
	default:
	}
}

// decodeKeys maps raw bytes to events: WASD, arrow escape sequences
// (ESC [ A/B/C/D) and q / ctrl-c for quit. Unknown bytes are ignored.
func decodeKeys(b []byte) []snake.Event {
	var events []snake.Event
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case 0x1b:
			if i+2 < len(b) && b[i+1] == '[' {
				switch b[i+2] {
				case 'A':
					events = append(events, snake.EventUp)
				case 'B':
					events = append(events, snake.EventDown)
				case 'C':
					events = append(events, snake.EventRight)
				case 'D':
					events = append(events, snake.EventLeft)
				}
				i += 2
			}
		case 'w', 'W':
			events = append(events, snake.EventUp)
		case 's', 'S':
			events = append(events, snake.EventDown)
		case 'a', 'A':
			events = append(events, snake.EventLeft)
		case 'd', 'D':
			events = append(events, snake.EventRight)
		case 'q', 'Q', 0x03:
			events = append(events, snake.EventQuit)
		}
	}
	return events
}
