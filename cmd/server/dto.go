package main

import (
	"github.com/gorilla/schema"
	"github.com/strohs/minesweeper/internal/cli"
	"github.com/strohs/minesweeper/internal/session"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type BoardParams struct {
	Rows int `schema:"rows,required"`
	Cols int `schema:"cols,required"`
}

type CellParams struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

type GameStateJSON struct {
	SessionID string   `json:"session_id"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	MineCount int      `json:"mine_count"`
	Won       bool     `json:"won"`
	Lost      bool     `json:"lost"`
	Grid      []string `json:"grid"`
	StartedAt int64    `json:"started_at"`
	EndedAt   *int64   `json:"ended_at,omitempty"`
}

// gameStateJSON builds the wire shape of a session. Callers hold the
// session lock.
func gameStateJSON(s *session.Session) GameStateJSON {
	rows, cols := s.Board.Dimensions()
	var endedAt *int64
	if s.Finished() {
		e := s.EndedAt.Unix()
		endedAt = &e
	}
	return GameStateJSON{
		SessionID: s.ID,
		Rows:      rows,
		Cols:      cols,
		MineCount: s.Board.TotalMines(),
		Won:       s.Board.Won(),
		Lost:      s.Board.Lost(),
		Grid:      cli.Rows(s.Board),
		StartedAt: s.StartedAt.Unix(),
		EndedAt:   endedAt,
	}
}
