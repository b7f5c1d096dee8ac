package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"minesweeper/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// Maps known commands to number of arguments; -1 takes any.
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"n": -1,
	"r": 0,
	"p": 0,
}

const helpText = `commands:
  o X Y   open a cell
  f X Y   flag or unflag a cell
  c X Y   chord an open numbered cell
  n       start over (n width=9 height=9 mines=10 changes the setup)
  r       resign and reveal the mines
  p       print the field
  h       show this help
  q       quit
field:  - hidden  F flag  * mine  X wrong flag  . empty
`

type session struct {
	board *mines.Board
	rnd   *rand.Rand
	in    io.Reader
	out   io.Writer
}

func (s *session) run() error {
	fmt.Fprintf(s.out, "minesweeper, %s (h for help)\n%s", s.board.GameParams, s.printout())
	scanner := bufio.NewScanner(s.in)
	for s.prompt(); scanner.Scan(); s.prompt() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q":
			return nil
		case "h":
			fmt.Fprint(s.out, helpText)
			continue
		}
		if err := s.executeCommand(line); err != nil {
			fmt.Fprintln(s.out, "error:", err)
			continue
		}
		fmt.Fprint(s.out, s.printout())
	}
	return scanner.Err()
}

func (s *session) prompt() {
	fmt.Fprint(s.out, "> ")
}

func (s *session) printout() string {
	var sb strings.Builder
	sb.WriteString(s.board.String())
	switch {
	case s.board.Victory():
		sb.WriteString("you win! (n to play again)\n")
	case s.board.GameOver():
		sb.WriteString("game over (n to play again)\n")
	default:
		fmt.Fprintf(&sb, "%d mines remaining\n", s.board.MinesRemaining())
	}
	return sb.String()
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// parseParams folds key=value arguments over the current game
// parameters.
func parseParams(current mines.GameParams, args []string) (mines.GameParams, error) {
	params := current
	values := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return params, fmt.Errorf("expected key=value, got %q", arg)
		}
		values.Set(key, value)
	}
	if err := decoder.Decode(&params, values); err != nil {
		return params, err
	}
	return params, nil
}

func (s *session) executeCommand(line string) error {
	parts := strings.Fields(line)
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command (h for help)")
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return err
		} else {
			return s.board.Reveal(x, y)
		}
	case "f":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return err
		} else {
			return s.board.ToggleFlag(x, y)
		}
	case "c":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return err
		} else {
			return s.board.Chord(x, y)
		}
	case "n":
		params, err := parseParams(s.board.GameParams, parts[1:])
		if err != nil {
			return err
		}
		board, err := mines.New(params, s.rnd)
		if err != nil {
			return err
		}
		s.board = board
		fmt.Fprintf(s.out, "new game, %s\n", params)
		return nil
	case "r":
		s.board.Forfeit()
		return nil
	case "p":
		return nil
	}
	return errors.New("invalid command")
}
