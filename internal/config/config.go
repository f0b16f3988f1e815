package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/Milover/isbnref/internal/fetch"
)

// Config captures process level configuration. Command line flags take
// precedence over it.
type Config struct {
	// Addr is the HTTP listen address of the server.
	Addr string
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// RangesFile replaces the embedded ISBN range database if set.
	RangesFile string
	// RangeURLs are the range message download locations.
	RangeURLs []string
	// Jobs limits the number of numbers processed concurrently.
	Jobs int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:       ":8080",
		LogLevel:   "warn",
		RangesFile: os.Getenv("ISBNREF_RANGES"),
		RangeURLs:  fetch.RangeMessageURLs,
		Jobs:       runtime.GOMAXPROCS(0),
	}
	if addr := os.Getenv("ISBNREF_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if level := os.Getenv("ISBNREF_LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if urls := os.Getenv("ISBNREF_RANGE_URL"); urls != "" {
		cfg.RangeURLs = strings.Split(urls, ",")
	}
	if jobs, err := strconv.Atoi(os.Getenv("ISBNREF_JOBS")); err == nil && jobs > 0 {
		cfg.Jobs = jobs
	}
	return cfg
}
