package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	VerbQuit     = "quit"
	VerbDebug    = "debug"
	VerbNew      = "n"
	VerbReveal   = "r"
	VerbFlag     = "f"
	VerbQuestion = "q"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid command arguments")
)

// Maps known command verbs to number of arguments
var commandNargs = map[string]int{
	VerbQuit:     0,
	VerbDebug:    0,
	VerbNew:      2,
	VerbReveal:   2,
	VerbFlag:     2,
	VerbQuestion: 2,
}

type Command struct {
	Verb string
	Row  int
	Col  int
}

// Parse turns a space separated command line into a [Command]. Coordinates
// must be non-negative; whether they fit a particular board is for the
// caller to check.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	verb := parts[0]
	nargs, ok := commandNargs[verb]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}
	if len(parts)-1 != nargs {
		return Command{}, fmt.Errorf(
			"%w: %q takes %d argument(s), got %d",
			ErrBadArguments, verb, nargs, len(parts)-1,
		)
	}
	cmd := Command{Verb: verb}
	if nargs == 2 {
		var err error
		if cmd.Row, cmd.Col, err = parseRowCol(parts[1:]); err != nil {
			return Command{}, err
		}
	}
	return cmd, nil
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil || row < 0 {
		return 0, 0, fmt.Errorf("%w: row must be a non-negative int", ErrBadArguments)
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil || col < 0 {
		return 0, 0, fmt.Errorf("%w: col must be a non-negative int", ErrBadArguments)
	}
	return row, col, nil
}
