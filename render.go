package main

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
)

const (
	// ANSI Color Codes
	ColorRed   = 31
	ColorBlue  = 34
	ColorWhite = 37
)

func editorScroll(cfg *EditorConfig) {
	cfg.rowX = 0
	if cfg.cursorY < len(cfg.rows) {
		cfg.rowX = editorRowCxToRx(&cfg.rows[cfg.cursorY], cfg.cursorX, cfg.tabStop)
	}

	if cfg.cursorY < cfg.rowOff {
		cfg.rowOff = cfg.cursorY
	}
	if cfg.cursorY >= cfg.rowOff+cfg.screenRows {
		cfg.rowOff = cfg.cursorY - cfg.screenRows + 1
	}

	if cfg.rowX < cfg.colOff {
		cfg.colOff = cfg.rowX
	}
	if cfg.rowX >= cfg.colOff+cfg.screenCols {
		cfg.colOff = cfg.rowX - cfg.screenCols + 1
	}
}

// editorRefreshScreen draws a whole frame into one buffer and hands it to
// the terminal in a single write, so a half drawn screen is never visible.
func editorRefreshScreen(cfg *EditorConfig) error {
	editorScroll(cfg)

	var buf bytes.Buffer

	// hide cursor
	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	editorDrawRows(cfg, &buf)
	editorDrawStatusBar(cfg, &buf)
	editorDrawMessageBar(cfg, &buf)

	// move cursor
	fmt.Fprintf(&buf, "\x1b[%d;%dH", (cfg.cursorY-cfg.rowOff)+1, (cfg.rowX-cfg.colOff)+1)

	// show cursor
	buf.WriteString("\x1b[?25h")

	if _, err := cfg.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("refreshing screen: %w", err)
	}
	return nil
}

func editorDrawRows(cfg *EditorConfig, buf *bytes.Buffer) {
	for y := 0; y < cfg.screenRows; y++ {
		fileRow := y + cfg.rowOff
		if fileRow >= len(cfg.rows) {
			switch {
			case len(cfg.rows) == 0 && y == cfg.screenRows/3:
				editorDrawCentered(cfg, buf, fmt.Sprintf("Kilo editor -- version %s", KILO_VERSION))
			case len(cfg.rows) == 0 && y == cfg.screenRows/3+2:
				editorDrawCentered(cfg, buf, KILO_ATTRIBUTION)
			default:
				buf.WriteByte('~')
			}
		} else {
			editorDrawRow(cfg, buf, &cfg.rows[fileRow])
		}

		buf.WriteString("\x1b[K")
		buf.WriteString("\r\n")
	}
}

func editorDrawCentered(cfg *EditorConfig, buf *bytes.Buffer, message string) {
	// try not to go past the screen
	if len(message) > cfg.screenCols {
		message = message[:cfg.screenCols]
	}

	padding := (cfg.screenCols - len(message)) / 2
	if padding > 0 {
		buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(message)
}

func editorDrawRow(cfg *EditorConfig, buf *bytes.Buffer, row *eRow) {
	start := min(cfg.colOff, len(row.render))
	end := min(start+cfg.screenCols, len(row.render))

	currentColor := -1
	for i := start; i < end; i++ {
		if row.hl[i] == HL_NORMAL {
			if currentColor != -1 {
				buf.WriteString("\x1b[39m")
				currentColor = -1
			}
			buf.WriteByte(row.render[i])
			continue
		}

		color := editorSyntaxToColor(row.hl[i])
		if color != currentColor {
			fmt.Fprintf(buf, "\x1b[%dm", color)
			currentColor = color
		}
		buf.WriteByte(row.render[i])
	}
	buf.WriteString("\x1b[39m")
}

func editorDrawStatusBar(cfg *EditorConfig, buf *bytes.Buffer) {
	// To make the status bar stand out, we're going to display it with
	// inverted colors. The escape sequence <esc>[7m switches to inverted
	// colors, and <esc>[m switches back to normal formatting
	buf.WriteString("\x1b[7m")

	name := runewidth.Truncate(cmp.Or(cfg.fileName, "[No Name]"), 20, "")
	status := fmt.Sprintf("%s - %d lines", name, len(cfg.rows))
	if cfg.dirty > 0 {
		status += " (modified)"
	}
	rStatus := strconv.Itoa(cfg.cursorY+1) + "/" + strconv.Itoa(len(cfg.rows)) + " " + strconv.Itoa(cfg.cursorX)

	status = runewidth.Truncate(status, cfg.screenCols, "")
	buf.WriteString(status)

	length := runewidth.StringWidth(status)
	for length < cfg.screenCols {
		if cfg.screenCols-length == len(rStatus) {
			buf.WriteString(rStatus)
			break
		}
		buf.WriteByte(' ')
		length++
	}

	buf.WriteString("\x1b[m")
	buf.WriteString("\r\n")
}

func editorDrawMessageBar(cfg *EditorConfig, buf *bytes.Buffer) {
	buf.WriteString("\x1b[K")
	if cfg.statusMsg == "" || cfg.now().Sub(cfg.statusMsgTime) >= cfg.msgTimeout {
		return
	}
	buf.WriteString(runewidth.Truncate(cfg.statusMsg, cfg.screenCols, ""))
}
