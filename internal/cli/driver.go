package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/strohs/minesweeper/internal/mines"
)

// Driver plays an interactive game over a line-based reader and writer.
type Driver struct {
	game *mines.Board
	in   *bufio.Scanner
	out  io.Writer
	log  *logrus.Logger
	rnd  *rand.Rand
}

// NewDriver starts a rows x cols game. The n command can later swap in a
// fresh board of any size.
func NewDriver(
	rows, cols int,
	in io.Reader, out io.Writer,
	log *logrus.Logger, rnd *rand.Rand,
) (*Driver, error) {
	game, err := mines.New(rows, cols, rnd)
	if err != nil {
		return nil, err
	}
	return &Driver{
		game: game,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
		rnd:  rnd,
	}, nil
}

// Run loops over input until the player quits, wins, hits a mine, or input
// runs out. Bad commands are reported and play continues.
func (d *Driver) Run() error {
	fmt.Fprint(d.out, Render(d.game))
	for {
		fmt.Fprintln(d.out, "make a move:")
		if !d.in.Scan() {
			return d.in.Err()
		}
		if cmd, err := Parse(d.in.Text()); err != nil {
			fmt.Fprintln(d.out, err)
		} else if cmd.Verb == VerbQuit {
			d.log.Info("player quit")
			return nil
		} else if err := d.execute(cmd); err != nil {
			fmt.Fprintln(d.out, err)
		}
		if d.game.Lost() {
			fmt.Fprintln(d.out, "you hit a mine!")
			fmt.Fprint(d.out, DebugRender(d.game))
			d.log.Info("game lost")
			return nil
		}
		if d.game.Won() {
			fmt.Fprintln(d.out, "you win!!")
			fmt.Fprint(d.out, DebugRender(d.game))
			d.log.Info("game won")
			return nil
		}
		fmt.Fprint(d.out, Render(d.game))
	}
}

func (d *Driver) execute(cmd Command) error {
	d.log.WithFields(logrus.Fields{
		"verb": cmd.Verb,
		"row":  cmd.Row,
		"col":  cmd.Col,
	}).Debug("command")

	switch cmd.Verb {
	case VerbDebug:
		fmt.Fprint(d.out, DebugRender(d.game))
		return nil
	case VerbNew:
		game, err := mines.New(cmd.Row, cmd.Col, d.rnd)
		if err != nil {
			return err
		}
		d.game = game
		return nil
	}

	if !d.game.InBounds(cmd.Row, cmd.Col) {
		rows, cols := d.game.Dimensions()
		return fmt.Errorf("(%d, %d) is outside the %dx%d board", cmd.Row, cmd.Col, rows, cols)
	}
	switch cmd.Verb {
	case VerbReveal:
		return d.game.RevealCell(cmd.Row, cmd.Col)
	case VerbFlag:
		return d.game.ToggleMark(cmd.Row, cmd.Col, mines.Flagged)
	case VerbQuestion:
		return d.game.ToggleMark(cmd.Row, cmd.Col, mines.Questioned)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Verb)
}
