// Package tui holds the terminal collaborators of the games: a
// termenv-backed screen and a raw-mode keyboard. The game cores in
// pkg/ttt and pkg/snake never touch the terminal themselves.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

type Screen struct {
	out *termenv.Output
}

func NewScreen() *Screen {
	return &Screen{out: termenv.NewOutput(os.Stdout)}
}

// Clear the screen and move the cursor home
func (s *Screen) Clear() {
	s.out.ClearScreen()
}

func (s *Screen) HideCursor() {
	s.out.HideCursor()
}

func (s *Screen) ShowCursor() {
	s.out.ShowCursor()
}

func (s *Screen) Print(a ...any) {
	fmt.Print(a...)
}

func (s *Screen) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Colored returns 'text' wrapped in the escape codes for the color,
// degrading to plain text on dumb terminals (termenv handles that)
func (s *Screen) Colored(text string, color termenv.Color) string {
	return s.out.String(text).Foreground(color).String()
}

func (s *Screen) Bold(text string) string {
	return s.out.String(text).Bold().String()
}

// Centered prints 'text' padded to the middle of 'width' columns
func (s *Screen) Centered(text string, width int) {
	pad := (width - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Print(strings.Repeat(" ", pad), text, "\n")
}

// Typewriter prints text character by character, the intro animation
func (s *Screen) Typewriter(text string, perChar time.Duration) {
	for _, r := range text {
		fmt.Print(string(r))
		time.Sleep(perChar)
	}
}
