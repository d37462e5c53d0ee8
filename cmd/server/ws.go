package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/strohs/minesweeper/internal/cli"
	"github.com/strohs/minesweeper/internal/mines"
	"github.com/strohs/minesweeper/internal/session"
)

// errQuit signals a clean, client-requested close.
var errQuit = errors.New("quit")

type wsError struct {
	Error string `json:"error"`
}

// wsConnect speaks the same line protocol as the terminal game: each text
// message holds newline separated commands, and every message is answered
// with either the full game state or an error.
func (app *application) wsConnect(w http.ResponseWriter, r *http.Request) {
	s, err := app.sessions.Get(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	c, err := app.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				app.logger.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		var (
			reply    any
			quitting bool
		)
		s.Lock()
		for line := range byLine(strings.TrimSpace(string(message))) {
			if err := app.executeLine(s, line); errors.Is(err, errQuit) {
				quitting = true
				break
			} else if err != nil {
				reply = wsError{Error: err.Error()}
				break
			}
		}
		if reply == nil {
			reply = gameStateJSON(s)
		}
		s.Unlock()

		if quitting {
			break
		}
		if err := c.WriteJSON(reply); err != nil {
			app.logger.Error("write: ", err)
			break
		}
	}
}

// executeLine applies one command line to a locked session.
func (app *application) executeLine(s *session.Session, line string) error {
	cmd, err := cli.Parse(line)
	if err != nil {
		return err
	}
	switch cmd.Verb {
	case cli.VerbQuit:
		return errQuit
	case cli.VerbDebug:
		return errors.New("debug is not available over the wire")
	case cli.VerbNew:
		board, err := app.newBoard(cmd.Row, cmd.Col)
		if err != nil {
			return err
		}
		s.Swap(board)
		return nil
	}

	if !s.Board.InBounds(cmd.Row, cmd.Col) {
		rows, cols := s.Board.Dimensions()
		return fmt.Errorf("(%d, %d) is outside the %dx%d board", cmd.Row, cmd.Col, rows, cols)
	}
	return app.applyMove(s, func(b *mines.Board) error {
		switch cmd.Verb {
		case cli.VerbReveal:
			return b.RevealCell(cmd.Row, cmd.Col)
		case cli.VerbFlag:
			return b.ToggleMark(cmd.Row, cmd.Col, mines.Flagged)
		case cli.VerbQuestion:
			return b.ToggleMark(cmd.Row, cmd.Col, mines.Questioned)
		}
		return fmt.Errorf("%w: %q", cli.ErrUnknownCommand, cmd.Verb)
	})
}
