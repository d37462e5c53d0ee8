package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strohs/minesweeper/internal/mines"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	board, err := mines.New(4, 4, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return New(board)
}

func TestStoreGetEmpty(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, err := s.Get("some key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSetAndGet(t *testing.T) {
	t.Parallel()

	s := NewStore()
	session := testSession(t)
	s.Set(session)

	got, err := s.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Delete("never existed")

	session := testSession(t)
	s.Set(session)
	s.Delete(session.ID)

	_, err := s.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCountAndKeys(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Keys())

	first := testSession(t)
	second := testSession(t)
	s.Set(first)
	s.Set(second)

	assert.Equal(t, 2, s.Count())
	assert.ElementsMatch(t, []string{first.ID, second.ID}, s.Keys())

	// setting the same session again is an update, not an insert
	s.Set(first)
	assert.Equal(t, 2, s.Count())
}

func TestStoreSweep(t *testing.T) {
	t.Parallel()

	s := NewStore()

	stale := testSession(t)
	stale.EndedAt = time.Now().UTC().Add(-2 * time.Hour)
	s.Set(stale)

	fresh := testSession(t)
	fresh.Finish()
	s.Set(fresh)

	running := testSession(t)
	s.Set(running)

	assert.Equal(t, 1, s.Sweep(time.Hour))
	assert.Equal(t, 2, s.Count())

	_, err := s.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(running.ID)
	assert.NoError(t, err)
}

func TestSessionIDs(t *testing.T) {
	t.Parallel()

	first := testSession(t)
	second := testSession(t)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotContains(t, first.ID, "=")
	assert.NotContains(t, first.ID, "/")
}

func TestSessionFinish(t *testing.T) {
	t.Parallel()

	session := testSession(t)
	assert.False(t, session.Finished())

	session.Finish()
	require.True(t, session.Finished())
	stamp := session.EndedAt

	session.Finish()
	assert.Equal(t, stamp, session.EndedAt)
}

func TestSessionSwap(t *testing.T) {
	t.Parallel()

	session := testSession(t)
	session.Finish()

	board, err := mines.New(2, 3, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	session.Swap(board)

	assert.Same(t, board, session.Board)
	assert.False(t, session.Finished())
}
