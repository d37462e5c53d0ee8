package main

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/strohs/minesweeper/internal/config"
	"github.com/strohs/minesweeper/internal/mines"
	"github.com/strohs/minesweeper/internal/session"
)

type application struct {
	logger   *logrus.Logger
	sessions *session.Store
	ws       *config.WebSocket
	rndMu    sync.Mutex
	rnd      *rand.Rand
}

func (app *application) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/status", app.handleStatus)
	mux.HandleFunc("POST /v1/game", app.handleNewGame)
	mux.HandleFunc("GET /v1/game/{id}", app.handleFetchGame)
	mux.HandleFunc("POST /v1/game/{id}/reveal", app.handleReveal)
	mux.HandleFunc("POST /v1/game/{id}/flag", app.handleFlag)
	mux.HandleFunc("POST /v1/game/{id}/question", app.handleQuestion)
	mux.HandleFunc("POST /v1/game/{id}/unmark", app.handleUnmark)
	mux.HandleFunc("DELETE /v1/game/{id}", app.handleDeleteGame)
	mux.HandleFunc("/v1/game/{id}/connect", app.wsConnect)
	return mux
}

// newBoard serializes access to the shared rng, which is not safe for
// concurrent handlers on its own.
func (app *application) newBoard(rows, cols int) (*mines.Board, error) {
	app.rndMu.Lock()
	defer app.rndMu.Unlock()
	return mines.New(rows, cols, app.rnd)
}

func (app *application) badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}

func (app *application) notFound(w http.ResponseWriter) {
	http.Error(w, "game not found", http.StatusNotFound)
}

func (app *application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		app.logger.Error("failed to marshal json: ", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(payload); err != nil {
		app.logger.Error("failed to send data: ", err)
	}
}
