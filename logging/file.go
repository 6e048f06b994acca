// SPDX-License-Identifier: MIT

package logging

import (
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

// Config selects where and how much a front end logs.
// An empty Logfile sends messages to stderr.
type Config struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
	Level   string `toml:"level"`
}

// Open builds the Logger described by c. The returned io.Closer releases the
// log file and must be closed by the caller; for stderr it is a no-op.
func (c *Config) Open() (Logger, io.Closer, error) {
	var cfg Config
	if c != nil {
		cfg = *c
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Logfile == "" {
		return New(log.New(os.Stderr, "", log.LstdFlags), level), nopCloser{}, nil
	}
	lj := &lumberjack.Logger{
		Filename: cfg.Logfile,
		MaxSize:  cfg.MaxSize,
		MaxAge:   cfg.MaxAge,
	}
	return New(log.New(lj, "", log.LstdFlags), level), lj, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
