// Package logging routes the standard logger for the commands.
//
// Log output never goes to stdout or stderr: the sandbox owns the terminal and the headless
// runner's stdout carries results.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	Dir     = "logs"
	MaxSize = 10 * 1024 * 1024
)

// Path is the active log file for a command
func Path(name string) string {
	return filepath.Join(Dir, name+".log")
}

// Setup points the standard logger at logs/<name>.log when debug is set, io.Discard otherwise
// An oversized previous log is renamed with a timestamp before the new one is opened
func Setup(debug bool, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(Dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := Path(name)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		rotated := filepath.Join(Dir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
