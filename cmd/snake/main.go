package main

/*

Console snake. Wrap-around 30x20 board, WASD or arrow keys to steer,
'q' to quit. The world and the fixed-interval loop live in pkg/snake,
this binary only wires up the terminal.

*/

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"termgames/pkg/snake"
	"termgames/pkg/tui"
)

const statusLine = "Controls: WASD or Arrow keys. Press 'q' to quit."

func main() {
	scr := tui.NewScreen()
	name := showIntro(scr)

	kb, err := tui.OpenKeyboard()
	if err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
	defer kb.Close()

	scr.HideCursor()
	defer scr.ShowCursor()

	world := snake.NewWorld(snake.DefaultWidth, snake.DefaultHeight,
		rand.New(rand.NewSource(time.Now().UnixNano())))
	loop := snake.NewLoop(world, kb, func(w *snake.World) {
		draw(scr, w, name)
	})
	loop.Run(context.Background())

	scr.ShowCursor()
	scr.Printf("\r\nGame Over! %s's Score: %d\r\n", name, world.Score())
}

// Start screen: banner, name prompt and the typewriter animation.
// Runs before raw mode, so plain line input works here.
func showIntro(scr *tui.Screen) string {
	const width = snake.DefaultWidth + 2

	scr.Clear()
	scr.Print("\n")
	scr.Centered("+-------------------------------------------+", width)
	scr.Centered("|                                           |", width)
	scr.Centered("|               S N A K E   G A M E         |", width)
	scr.Centered("|                                           |", width)
	scr.Centered("+-------------------------------------------+", width)
	scr.Print("\n")
	scr.Centered("A console game. "+statusLine, width)
	scr.Print("\n")

	scr.Print("Enter your name (press Enter to accept): ")
	name := "Player"
	in := bufio.NewScanner(os.Stdin)
	if in.Scan() {
		if text := strings.TrimSpace(in.Text()); text != "" {
			name = text
		}
	}

	scr.Print("\n")
	scr.Centered("Preparing game...", width)
	time.Sleep(400 * time.Millisecond)

	code := []string{
		"func main() {",
		"    // initializing game engine",
		"    game := snake.NewWorld(30, 20, rng)",
		"    snake.NewLoop(game, keys, draw).Run(ctx)",
		"}",
	}
	scr.Print("\n")
	for _, line := range code {
		scr.Print("    ")
		scr.Typewriter(line, 25*time.Millisecond)
		scr.Print("\n")
		time.Sleep(220 * time.Millisecond)
	}

	scr.Print("\n")
	scr.Centered("Press Enter to start...", width)
	in.Scan()
	scr.Clear()
	return name
}

func draw(scr *tui.Screen, w *snake.World, name string) {
	builder := strings.Builder{}
	border := "+" + strings.Repeat("-", w.Width()) + "+\r\n"

	grid := make([][]byte, w.Height())
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", w.Width()))
	}
	for _, s := range w.Body() {
		grid[s.Y][s.X] = 'O'
	}
	food := w.Food()
	grid[food.Y][food.X] = '*'

	builder.WriteString(border)
	for _, row := range grid {
		builder.WriteString("|")
		for _, c := range row {
			switch c {
			case 'O':
				builder.WriteString(scr.Colored("O", termenv.ANSIGreen))
			case '*':
				builder.WriteString(scr.Colored("*", termenv.ANSIRed))
			default:
				builder.WriteByte(c)
			}
		}
		builder.WriteString("|\r\n")
	}
	builder.WriteString(border)

	scr.Clear()
	scr.Print(builder.String())
	scr.Printf("%s   Score: %d   %s\r\n", name, w.Score(), statusLine)
}
