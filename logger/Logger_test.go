package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"Trace": logrus.TraceLevel,
		"Info":  logrus.InfoLevel,
		"Warn":  logrus.WarnLevel,
		"Error": logrus.ErrorLevel,
		"Fatal": logrus.FatalLevel,
		"":      logrus.DebugLevel,
		"Loud":  logrus.DebugLevel,
	}
	for name, want := range tests {
		if got := parseLevel(name); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")
	l := New()
	l.Init(Config{Filename: path, MaxSize: "1", Level: "Info"})

	l.Debug("hidden")
	l.Info("visible")
	l.WithField("winner", 2).Warn("done")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("line %q is not JSON: %v", scanner.Text(), err)
		}
		lines = append(lines, entry)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (debug filtered)", len(lines))
	}
	if lines[0]["msg"] != "visible" || lines[1]["msg"] != "done" {
		t.Errorf("messages = %v, %v", lines[0]["msg"], lines[1]["msg"])
	}
	if lines[1]["winner"] != float64(2) {
		t.Errorf("winner field = %v", lines[1]["winner"])
	}
	session, _ := lines[0]["session"].(string)
	if session == "" || session != lines[1]["session"] {
		t.Errorf("session ids = %v, %v", lines[0]["session"], lines[1]["session"])
	}
}

func TestNewDiscards(t *testing.T) {
	l := New()
	l.Info("nowhere")
	if err := l.Close(); err != nil {
		t.Fatalf("Close without file: %v", err)
	}
}
