package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// *** file i/o

// editorOpen loads fileName, one row per line. A file that does not exist
// yet leaves the buffer empty; it is created on the first save.
func editorOpen(cfg *EditorConfig, fileName string) error {
	cfg.fileName = fileName

	file, err := os.Open(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		cfg.logger.Printf("opening %s: new file", fileName)
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimRight(line, "\r\n")
			editorInsertRow(cfg, len(cfg.rows), line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading file %s: %w", fileName, err)
		}
	}

	cfg.dirty = 0
	cfg.logger.Printf("opened %s: %d lines", fileName, len(cfg.rows))
	return nil
}

// editorSave writes the buffer with LF line endings. Problems are reported
// in the message bar; only a broken terminal is returned as an error.
func editorSave(cfg *EditorConfig) error {
	if cfg.fileName == "" {
		name, ok, err := editorPrompt(cfg, "Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return fmt.Errorf("saving: %w", err)
		}
		if !ok {
			editorSetStatusMessage(cfg, "Save aborted")
			return nil
		}
		cfg.fileName = name
	}

	contents := editorRowsToBytes(cfg)
	if err := os.WriteFile(cfg.fileName, contents, 0644); err != nil {
		cfg.logger.Printf("saving %s: %v", cfg.fileName, err)
		editorSetStatusMessage(cfg, "Can't save! I/O error: %s", err.Error())
		return nil
	}

	cfg.dirty = 0
	cfg.logger.Printf("saved %s: %d bytes", cfg.fileName, len(contents))
	editorSetStatusMessage(cfg, "%d bytes written to disk", len(contents))
	return nil
}
