package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir keeps the logs directory out of the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupDiscardsWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := Setup(false, "fixphys"); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(Dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupWritesFile(t *testing.T) {
	inTempDir(t)

	f := Setup(true, "fixphys")
	if f == nil {
		t.Fatal("Expected log file with debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Expected log output off the terminal")
	}

	log.Printf("resolver: wedged")

	data, err := os.ReadFile(Path("fixphys"))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "resolver: wedged") {
		t.Errorf("Expected message in log, got %q", data)
	}
}

func TestSetupRotatesOversizedLog(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(Dir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := Path("fixphys")
	if err := os.WriteFile(logPath, make([]byte, MaxSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := Setup(true, "fixphys")
	if f == nil {
		t.Fatal("Expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(Dir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated string
	for _, e := range entries {
		if e.Name() != "fixphys.log" && filepath.Ext(e.Name()) == ".log" {
			rotated = e.Name()
		}
	}
	if rotated == "" {
		t.Fatal("Expected a rotated log file")
	}
	if info, err := os.Stat(filepath.Join(Dir, rotated)); err != nil || info.Size() != MaxSize+1 {
		t.Errorf("Expected rotated file to keep the old contents")
	}
	if info, err := os.Stat(logPath); err != nil || info.Size() > MaxSize {
		t.Errorf("Expected fresh log file, got %v", info)
	}
}
