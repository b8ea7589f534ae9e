package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func defaultOptions() Options {
	return Options{
		TabStop:        KILO_TAB_STOP,
		QuitTimes:      KILO_QUIT_TIMES,
		MessageTimeout: KILO_MSG_TIMEOUT,
	}
}

// newTestEditor returns an editor for a rows x cols terminal that reads
// keys from input and draws into the returned buffer.
func newTestEditor(t *testing.T, rows, cols int, input string, lines ...string) (*EditorConfig, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cfg := initEditor(defaultOptions(), newKeyReader(strings.NewReader(input)), out, rows, cols)
	cfg.now = func() time.Time { return testNow }

	for _, line := range lines {
		editorInsertRow(cfg, len(cfg.rows), []byte(line))
	}
	cfg.dirty = 0
	return cfg, out
}

func rowStrings(cfg *EditorConfig) []string {
	var lines []string
	for _, row := range cfg.rows {
		lines = append(lines, string(row.chars))
	}
	return lines
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Options
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: defaultOptions(),
		},
		{
			name: "file and flags",
			args: []string{"-tabstop", "4", "-quit-times", "1", "-message-timeout", "2s", "-log", "kilo.log", "main.c"},
			want: Options{FileName: "main.c", TabStop: 4, QuitTimes: 1, MessageTimeout: 2 * time.Second, LogFile: "kilo.log"},
		},
		{
			name:    "two files",
			args:    []string{"a.txt", "b.txt"},
			wantErr: true,
		},
		{
			name:    "zero tab stop",
			args:    []string{"-tabstop", "0"},
			wantErr: true,
		},
		{
			name:    "negative quit times",
			args:    []string{"-quit-times", "-1"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptionsQuiet(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOptions(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseOptions(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseOptionsHelp(t *testing.T) {
	_, err := parseOptionsQuiet([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseOptions(-h) error = %v, want flag.ErrHelp", err)
	}
}

// parseOptionsQuiet keeps usage output out of the test log.
func parseOptionsQuiet(args []string) (Options, error) {
	return parseOptions(args, io.Discard)
}

func TestInitEditorReservesBars(t *testing.T) {
	cfg, _ := newTestEditor(t, 24, 80, "")
	if cfg.screenRows != 22 || cfg.screenCols != 80 {
		t.Errorf("screen = %dx%d, want 22x80", cfg.screenRows, cfg.screenCols)
	}
	if cfg.quitKeyPresses != KILO_QUIT_TIMES {
		t.Errorf("quitKeyPresses = %d, want %d", cfg.quitKeyPresses, KILO_QUIT_TIMES)
	}
}

func TestEditorLoopQuits(t *testing.T) {
	// the buffer is dirty, so three Ctrl-Q presses only warn
	cfg, out := newTestEditor(t, 10, 40, "hi\x11\x11\x11\x11")

	if err := editorLoop(cfg); err != nil {
		t.Fatalf("editorLoop() error = %v", err)
	}
	if got := rowStrings(cfg); len(got) != 1 || got[0] != "hi" {
		t.Errorf("rows = %q, want [hi]", got)
	}
	if !strings.Contains(out.String(), "\x1b[?25h") {
		t.Errorf("no frame was drawn")
	}
}
