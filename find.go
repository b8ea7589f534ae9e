package main

import (
	"bytes"
	"fmt"
)

// promptCallback is told about every key pressed while a prompt is open,
// together with what has been typed so far.
type promptCallback func(cfg *EditorConfig, query []byte, key int)

type searchState struct {
	lastMatch int
	direction int

	// highlight of the row that currently shows a match, restored on the
	// next key press
	savedHLLine int
	savedHL     []uint8
}

// editorPrompt shows prompt in the message bar, with %s replaced by the
// input, until the user commits with Enter or cancels with Escape. ok is
// false when the prompt was cancelled.
func editorPrompt(cfg *EditorConfig, prompt string, cb promptCallback) (input string, ok bool, err error) {
	var buf []byte

	for {
		editorSetStatusMessage(cfg, prompt, buf)
		if err := editorRefreshScreen(cfg); err != nil {
			return "", false, err
		}

		c, err := cfg.keys.readKey()
		if err != nil {
			return "", false, err
		}

		switch {
		case c == DEL_KEY || c == Ctrl_H || c == BACKSPACE:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case c == Esc:
			editorSetStatusMessage(cfg, "")
			if cb != nil {
				cb(cfg, buf, c)
			}
			return "", false, nil
		case c == ENTER:
			if len(buf) > 0 {
				editorSetStatusMessage(cfg, "")
				if cb != nil {
					cb(cfg, buf, c)
				}
				return string(buf), true, nil
			}
		case c < 128 && !isControl(c):
			buf = append(buf, byte(c))
		}

		if cb != nil {
			cb(cfg, buf, c)
		}
	}
}

func editorFindCallback(cfg *EditorConfig, query []byte, key int) {
	s := &cfg.search

	if s.savedHL != nil {
		if s.savedHLLine < len(cfg.rows) && len(cfg.rows[s.savedHLLine].hl) == len(s.savedHL) {
			copy(cfg.rows[s.savedHLLine].hl, s.savedHL)
		}
		s.savedHL = nil
	}

	switch key {
	case ENTER, Esc:
		s.lastMatch = -1
		s.direction = 1
		return
	case ARROW_RIGHT, ARROW_DOWN:
		s.direction = 1
	case ARROW_LEFT, ARROW_UP:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if len(query) == 0 {
		return
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}

	current := s.lastMatch
	for range len(cfg.rows) {
		current += s.direction
		if current == -1 {
			current = len(cfg.rows) - 1
		} else if current == len(cfg.rows) {
			current = 0
		}

		row := &cfg.rows[current]
		index := bytes.Index(row.render, query)
		if index == -1 {
			continue
		}

		s.lastMatch = current
		cfg.cursorY = current
		cfg.cursorX = editorRowRxToCx(row, index, cfg.tabStop)
		// scroll so the match ends up on the top line of the screen
		cfg.rowOff = len(cfg.rows)

		s.savedHLLine = current
		s.savedHL = bytes.Clone(row.hl)
		for i := range query {
			row.hl[index+i] = HL_MATCH
		}
		break
	}
}

// editorFind runs an incremental search. Cancelling puts the cursor and
// the viewport back where they were.
func editorFind(cfg *EditorConfig) error {
	savedCursorX := cfg.cursorX
	savedCursorY := cfg.cursorY
	savedColOff := cfg.colOff
	savedRowOff := cfg.rowOff

	_, ok, err := editorPrompt(cfg, "Search: %s (Use ESC/Arrows/Enter)", editorFindCallback)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	if !ok {
		cfg.cursorX = savedCursorX
		cfg.cursorY = savedCursorY
		cfg.colOff = savedColOff
		cfg.rowOff = savedRowOff
	}
	return nil
}
