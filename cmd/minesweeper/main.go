package main

import (
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/strohs/minesweeper/internal/cli"
	"github.com/strohs/minesweeper/internal/config"
	"github.com/strohs/minesweeper/internal/logging"
)

var (
	log = logrus.New()

	rows int
	cols int
)

func init() {
	flag.IntVar(&rows, "rows", 9, "board rows")
	flag.IntVar(&cols, "cols", 9, "board columns")
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()

	if err := logging.Setup(log, config.Development(), config.LogFile()); err != nil {
		log.Fatal("unable to configure logging: ", err)
	}

	driver, err := cli.NewDriver(rows, cols, os.Stdin, os.Stdout, log, createRand())
	if err != nil {
		log.Fatal(err)
	}
	if err := driver.Run(); err != nil {
		log.Fatal(err)
	}
}
