package main

import "fmt"

// *** Editor operations

func editorInsertChar(cfg *EditorConfig, c byte) {
	if cfg.cursorY == len(cfg.rows) {
		editorInsertRow(cfg, len(cfg.rows), nil)
	}
	editorRowInsertChar(cfg, &cfg.rows[cfg.cursorY], cfg.cursorX, c)
	cfg.cursorX++
}

func editorInsertNewLine(cfg *EditorConfig) {
	if cfg.cursorX == 0 {
		editorInsertRow(cfg, cfg.cursorY, nil)
	} else {
		editorSplitRow(cfg, cfg.cursorY, cfg.cursorX)
	}
	cfg.cursorY++
	cfg.cursorX = 0
}

func editorDelChar(cfg *EditorConfig) {
	if cfg.cursorY == len(cfg.rows) {
		return
	}
	if cfg.cursorX == 0 && cfg.cursorY == 0 {
		return
	}

	if cfg.cursorX > 0 {
		editorRowDelChar(cfg, &cfg.rows[cfg.cursorY], cfg.cursorX-1)
		cfg.cursorX--
		return
	}

	// join the current line onto the end of the previous one
	prevRow := &cfg.rows[cfg.cursorY-1]
	cfg.cursorX = len(prevRow.chars)
	editorRowAppendString(cfg, prevRow, cfg.rows[cfg.cursorY].chars)
	editorDelRow(cfg, cfg.cursorY)
	cfg.cursorY--
}

func editorMoveCursor(cfg *EditorConfig, key int) {
	var row *eRow
	if cfg.cursorY < len(cfg.rows) {
		row = &cfg.rows[cfg.cursorY]
	}

	switch key {
	case ARROW_UP:
		if cfg.cursorY > 0 {
			cfg.cursorY--
		}
	case ARROW_DOWN:
		if cfg.cursorY < len(cfg.rows) {
			cfg.cursorY++
		}
	case ARROW_LEFT:
		if cfg.cursorX > 0 {
			cfg.cursorX--
		} else if cfg.cursorY > 0 {
			cfg.cursorY--
			cfg.cursorX = len(cfg.rows[cfg.cursorY].chars)
		}
	case ARROW_RIGHT:
		if row != nil && cfg.cursorX < len(row.chars) {
			cfg.cursorX++
		} else if row != nil && cfg.cursorX == len(row.chars) {
			cfg.cursorY++
			cfg.cursorX = 0
		}
	}

	// the row may have changed, snap the cursor to the end of the new one
	rowLen := 0
	if cfg.cursorY < len(cfg.rows) {
		rowLen = len(cfg.rows[cfg.cursorY].chars)
	}
	if cfg.cursorX > rowLen {
		cfg.cursorX = rowLen
	}
}

// *** process key presses

func editorProcessKeyPress(cfg *EditorConfig) error {
	key, err := cfg.keys.readKey()
	if err != nil {
		return fmt.Errorf("processing key press: %w", err)
	}

	switch key {
	case ENTER:
		editorInsertNewLine(cfg)

	case Ctrl_Q:
		if cfg.dirty > 0 && cfg.quitKeyPresses > 0 {
			editorSetStatusMessage(cfg, "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", cfg.quitKeyPresses)
			cfg.quitKeyPresses--
			return nil
		}
		return ErrExitTerminal

	case Ctrl_S:
		if err := editorSave(cfg); err != nil {
			return err
		}

	case Ctrl_F:
		if err := editorFind(cfg); err != nil {
			return err
		}

	case HOME_KEY:
		cfg.cursorX = 0

	case END_KEY:
		if cfg.cursorY < len(cfg.rows) {
			cfg.cursorX = len(cfg.rows[cfg.cursorY].chars)
		}

	case BACKSPACE, Ctrl_H, DEL_KEY:
		if key == DEL_KEY {
			editorMoveCursor(cfg, ARROW_RIGHT)
		}
		editorDelChar(cfg)

	case PAGE_UP, PAGE_DOWN:
		if key == PAGE_UP {
			cfg.cursorY = cfg.rowOff
		} else {
			cfg.cursorY = cfg.rowOff + cfg.screenRows - 1
			if cfg.cursorY > len(cfg.rows) {
				cfg.cursorY = len(cfg.rows)
			}
		}

		move := ARROW_DOWN
		if key == PAGE_UP {
			move = ARROW_UP
		}
		for range cfg.screenRows {
			editorMoveCursor(cfg, move)
		}

	case ARROW_UP, ARROW_DOWN, ARROW_LEFT, ARROW_RIGHT:
		editorMoveCursor(cfg, key)

	case Ctrl_L, Esc:

	default:
		if key == TAB || (key < 256 && !isControl(key)) {
			editorInsertChar(cfg, byte(key))
		}
	}

	cfg.quitKeyPresses = cfg.quitTimes
	return nil
}
