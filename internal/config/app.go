package config

import "os"

// Port is the TCP port the server listens on.
func Port() string {
	port, ok := os.LookupEnv("MINESWEEPER_PORT")
	if !ok {
		return "8080"
	}
	return port
}

// LogFile is the path logs are copied to for rotation. Empty disables the
// file sink.
func LogFile() string {
	return os.Getenv("MINESWEEPER_LOG_FILE")
}
