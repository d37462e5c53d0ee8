package session

import (
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/strohs/minesweeper/internal/mines"
)

// Session is one live game. The board does no locking of its own, so every
// access to it goes through the session mutex.
type Session struct {
	sync.Mutex
	ID        string
	Board     *mines.Board
	StartedAt time.Time
	EndedAt   time.Time
}

func New(board *mines.Board) *Session {
	u := [16]byte(uuid.New())
	return &Session{
		ID:        base64.RawURLEncoding.EncodeToString(u[:]),
		Board:     board,
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the end time once; later calls keep the first stamp.
func (s *Session) Finish() {
	if s.EndedAt.IsZero() {
		s.EndedAt = time.Now().UTC()
	}
}

// Finished reports whether the game has ended.
func (s *Session) Finished() bool {
	return !s.EndedAt.IsZero()
}

// Swap replaces the board wholesale and restarts the session clock.
func (s *Session) Swap(board *mines.Board) {
	s.Board = board
	s.StartedAt = time.Now().UTC()
	s.EndedAt = time.Time{}
}
