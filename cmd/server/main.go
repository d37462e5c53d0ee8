package main

import (
	"context"
	"hash/maphash"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/strohs/minesweeper/internal/config"
	"github.com/strohs/minesweeper/internal/logging"
	"github.com/strohs/minesweeper/internal/middleware"
	"github.com/strohs/minesweeper/internal/session"
	"golang.org/x/sync/errgroup"
)

// finished games stay fetchable this long before the sweeper drops them
const sessionTTL = time.Hour

var log = logrus.New()

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := logging.Setup(log, config.Development(), config.LogFile()); err != nil {
		log.Fatal("unable to configure logging: ", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		log.Fatal("unable to configure websocket: ", err)
	}

	app := &application{
		logger:   log,
		sessions: session.NewStore(),
		ws:       ws,
		rnd:      createRand(),
	}

	handler := middleware.Wrap(app.Router(),
		middleware.Cors(),
		middleware.Logging(log),
	)

	addr := net.JoinHostPort("", config.Port())
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})
	g.Go(func() error {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				if n := app.sessions.Sweep(sessionTTL); n > 0 {
					log.Infof("swept %d finished game(s)", n)
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
