package tictactoe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type IPolicy interface {
	BestAction(input []float64, legal []int) (int, error)
}

var errQuit = errors.New("quit")

// Play runs games on the console until the input ends or "quit" is entered.
// The human moves first.
func Play(in io.Reader, out io.Writer, policy IPolicy) error {
	var scanner = bufio.NewScanner(in)
	for {
		var err = playGame(scanner, out, policy)
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func playGame(scanner *bufio.Scanner, out io.Writer, policy IPolicy) error {
	var board Board
	var player = Human
	fmt.Fprintln(out, "Game is starting...")
	for !board.Full() && board.Winner() == Empty {
		if player == Human {
			fmt.Fprintf(out, "\n%v\n", board.String())
			var pos, err = readMove(scanner, out)
			if err != nil {
				return err
			}
			if !board.Place(pos, Human) {
				fmt.Fprintln(out, "Invalid move. Try again.")
				continue
			}
		} else {
			var pos, err = policy.BestAction(board.Input(), board.LegalMoves())
			if err != nil {
				return err
			}
			if !board.Place(pos, AI) {
				continue
			}
			fmt.Fprintln(out, "AI plays", pos)
		}
		player = -player
	}
	fmt.Fprintf(out, "%v\n", board.String())
	switch board.Winner() {
	case AI:
		fmt.Fprintln(out, "AI WON.")
	case Human:
		fmt.Fprintln(out, "HUMAN WON.")
	default:
		fmt.Fprintln(out, "DRAW.")
	}
	return nil
}

func readMove(scanner *bufio.Scanner, out io.Writer) (int, error) {
	fmt.Fprint(out, "Enter your move (0-8): ")
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, errQuit
	}
	var commandLine = strings.TrimSpace(scanner.Text())
	if commandLine == "quit" {
		return 0, errQuit
	}
	var pos, err = strconv.Atoi(commandLine)
	if err != nil {
		return -1, nil
	}
	return pos, nil
}
