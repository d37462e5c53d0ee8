package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("MINESWEEPER_DEV")
	if !ok {
		return false
	}
	return development != "0"
}
