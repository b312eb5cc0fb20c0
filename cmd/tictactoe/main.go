package main

/*

Console tic-tac-toe: two-player, or human against the exhaustive
minimax engine from pkg/ttt. The human is always X, the computer O.
Cells are prompted 1-9, row-major.

*/

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"termgames/pkg/ttt"
)

type console struct {
	out *termenv.Output
	in  *bufio.Scanner
}

func main() {
	c := &console{
		out: termenv.NewOutput(os.Stdout),
		in:  bufio.NewScanner(os.Stdin),
	}

	c.separator()
	fmt.Println(c.out.String("          === Tic-Tac-Toe Game ===").Bold())
	c.separator()
	fmt.Print("1) Two players\n2) Play vs Computer (AI)\nChoose mode (1 or 2): ")

	switch c.readLine() {
	case "1":
		c.twoPlayerGame()
	case "2":
		c.humanVsComputer()
	default:
		fmt.Println("Unknown mode. Exiting.")
	}
}

func (c *console) readLine() string {
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) separator() {
	fmt.Println("############################################")
}

func (c *console) mark(p ttt.PlayerType) string {
	switch p {
	case ttt.Cross:
		return c.out.String("X").Foreground(termenv.ANSIRed).Bold().String()
	case ttt.Circle:
		return c.out.String("O").Foreground(termenv.ANSIBlue).Bold().String()
	}
	return " "
}

func (c *console) printBoard(pos *ttt.Position) {
	fmt.Println()
	c.separator()
	for row := 0; row < 3; row++ {
		fmt.Printf(" %s | %s | %s \n",
			c.mark(pos.At(ttt.PosType(row*3))),
			c.mark(pos.At(ttt.PosType(row*3+1))),
			c.mark(pos.At(ttt.PosType(row*3+2))))
		if row < 2 {
			fmt.Println("---+---+---")
		}
	}
	c.separator()
	fmt.Println()
}

// Prompt for a 1-based cell until the placement succeeds. Returns
// false only when stdin is closed.
func (c *console) promptMove(pos *ttt.Position, player ttt.PlayerType) bool {
	for {
		fmt.Print("Enter your move (1-9): ")
		if !c.in.Scan() {
			return false
		}

		n, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil {
			fmt.Println("Invalid input. Please enter a number 1-9.")
			continue
		}
		if n < 1 || n > 9 {
			fmt.Println("Position must be 1..9.")
			continue
		}
		if err := pos.Place(ttt.PosType(n-1), player); err != nil {
			fmt.Println("Cell already taken. Choose another.")
			continue
		}
		return true
	}
}

// Announce a decided game, returns false while the game is running
func (c *console) announce(pos *ttt.Position, vsComputer bool) bool {
	var msg string
	switch pos.Termination() {
	case ttt.TerminationCrossWon:
		msg = " X (Player 1) wins!"
		if vsComputer {
			msg = " You (X) win! Congrats!"
		}
	case ttt.TerminationCircleWon:
		msg = " O (Player 2) wins!"
		if vsComputer {
			msg = " Computer (O) wins!"
		}
	case ttt.TerminationDraw:
		msg = " It's a draw!"
	default:
		return false
	}

	c.separator()
	fmt.Println(msg)
	c.separator()
	return true
}

func (c *console) twoPlayerGame() {
	pos := ttt.NewPosition()
	turn := ttt.Cross

	c.separator()
	fmt.Println(" Two-player mode. X = Player1, O = Player2")
	c.separator()
	c.printBoard(pos)

	for {
		c.separator()
		fmt.Printf(" Player %s's turn.\n", strings.ToUpper(turn.String()))
		c.separator()

		if !c.promptMove(pos, turn) {
			return
		}
		c.printBoard(pos)

		if c.announce(pos, false) {
			return
		}
		turn = turn.Other()
	}
}

func (c *console) humanVsComputer() {
	pos := ttt.NewPosition()
	engine := ttt.NewEngine(ttt.Circle)

	c.separator()
	fmt.Println(" Human vs Computer\n You are X. Computer is O.")
	c.separator()
	c.printBoard(pos)

	fmt.Print("Do you want to go first? (y/n): ")
	answer := strings.ToLower(c.readLine())
	humanTurn := answer == "y" || answer == "yes"

	for {
		if humanTurn {
			c.separator()
			fmt.Println(" Your move (X):")
			c.separator()
			if !c.promptMove(pos, ttt.Cross) {
				return
			}
		} else {
			c.separator()
			fmt.Println(" Computer is thinking...")
			c.separator()

			best := engine.BestMove(pos)
			if best == ttt.PosIllegal {
				// Only happens on a full board, announce the draw
				if c.announce(pos, true) {
					return
				}
				continue
			}
			if err := pos.Place(best, ttt.Circle); err != nil {
				fmt.Fprintln(os.Stderr, "tictactoe: engine played an illegal move:", err)
				return
			}
			fmt.Printf(" Computer chose position %d.\n", best+1)
		}

		c.printBoard(pos)
		if c.announce(pos, true) {
			return
		}
		humanTurn = !humanTurn
	}
}
