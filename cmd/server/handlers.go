package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/strohs/minesweeper/internal/mines"
	"github.com/strohs/minesweeper/internal/session"
)

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	app.replyWith(w, map[string]any{
		"status": "ok",
		"games":  app.sessions.Count(),
	})
}

func (app *application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var params BoardParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		app.badRequest(w, "rows and cols are required")
		return
	}
	board, err := app.newBoard(params.Rows, params.Cols)
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}
	s := session.New(board)
	app.sessions.Set(s)
	app.logger.WithFields(logrus.Fields{
		"session_id": s.ID,
		"rows":       params.Rows,
		"cols":       params.Cols,
		"mines":      board.TotalMines(),
	}).Info("new game")

	s.Lock()
	defer s.Unlock()
	app.replyWith(w, gameStateJSON(s))
}

func (app *application) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	s, err := app.sessions.Get(r.PathValue("id"))
	if err != nil {
		app.notFound(w)
		return
	}
	s.Lock()
	defer s.Unlock()
	app.replyWith(w, gameStateJSON(s))
}

// applyMove runs one engine operation against a locked session, freezing
// the session once the game ends. Moves on a finished game change nothing.
func (app *application) applyMove(s *session.Session, move func(*mines.Board) error) error {
	if s.Finished() {
		return nil
	}
	if err := move(s.Board); err != nil {
		return err
	}
	if s.Board.Won() || s.Board.Lost() {
		s.Finish()
	}
	return nil
}

func (app *application) handleMove(
	w http.ResponseWriter, r *http.Request,
	move func(b *mines.Board, row, col int) error,
) {
	var params CellParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		app.badRequest(w, "row and col are required")
		return
	}
	s, err := app.sessions.Get(r.PathValue("id"))
	if err != nil {
		app.notFound(w)
		return
	}
	s.Lock()
	defer s.Unlock()
	if !s.Board.InBounds(params.Row, params.Col) {
		app.badRequest(w, "cell position out of bounds")
		return
	}
	if err := app.applyMove(s, func(b *mines.Board) error {
		return move(b, params.Row, params.Col)
	}); err != nil {
		app.badRequest(w, err.Error())
		return
	}
	app.replyWith(w, gameStateJSON(s))
}

func (app *application) handleReveal(w http.ResponseWriter, r *http.Request) {
	app.handleMove(w, r, func(b *mines.Board, row, col int) error {
		return b.RevealCell(row, col)
	})
}

func (app *application) handleFlag(w http.ResponseWriter, r *http.Request) {
	app.handleMove(w, r, func(b *mines.Board, row, col int) error {
		return b.ToggleMark(row, col, mines.Flagged)
	})
}

func (app *application) handleQuestion(w http.ResponseWriter, r *http.Request) {
	app.handleMove(w, r, func(b *mines.Board, row, col int) error {
		return b.ToggleMark(row, col, mines.Questioned)
	})
}

func (app *application) handleUnmark(w http.ResponseWriter, r *http.Request) {
	app.handleMove(w, r, func(b *mines.Board, row, col int) error {
		return b.UnmarkCell(row, col)
	})
}

func (app *application) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := app.sessions.Get(id); err != nil {
		app.notFound(w)
		return
	}
	app.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}
