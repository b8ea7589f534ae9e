package main

import (
	"bytes"
	"slices"
)

// syntax highlighting classes, one per rendered byte
const (
	HL_NORMAL uint8 = iota
	HL_NUMBER
	HL_MATCH
)

type eRow struct {
	// Original content of the line, without the line terminator
	chars []byte

	// Rendered content of the line (with tabs expanded).
	// Regenerated by editorUpdateRow every time chars changes.
	render []byte

	// highlight class of every byte in render
	hl []uint8
}

// editorUpdateRow rebuilds render and hl from chars.
func editorUpdateRow(row *eRow, tabStop int) {
	tabs := bytes.Count(row.chars, []byte{'\t'})

	render := make([]byte, 0, len(row.chars)+tabs*(tabStop-1))
	for _, c := range row.chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%tabStop != 0 {
			render = append(render, ' ')
		}
	}

	row.render = render
	row.hl = make([]uint8, len(render))
	editorUpdateSyntax(row)
}

func editorUpdateSyntax(row *eRow) {
	for i, c := range row.render {
		if c >= '0' && c <= '9' {
			row.hl[i] = HL_NUMBER
		}
	}
}

func editorSyntaxToColor(hl uint8) int {
	switch hl {
	case HL_NUMBER:
		return ColorRed
	case HL_MATCH:
		return ColorBlue
	default:
		return ColorWhite
	}
}

// editorRowCxToRx maps a column in chars to the matching column in render.
func editorRowCxToRx(row *eRow, cursorX, tabStop int) int {
	rx := 0
	for j := 0; j < cursorX && j < len(row.chars); j++ {
		if row.chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// editorRowRxToCx is the inverse of editorRowCxToRx. A render column that
// falls inside an expanded tab maps to the tab itself.
func editorRowRxToCx(row *eRow, rx, tabStop int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

// *** Row operations

func editorInsertRow(cfg *EditorConfig, at int, text []byte) {
	if at < 0 || at > len(cfg.rows) {
		return
	}

	row := eRow{chars: slices.Clone(text)}
	if row.chars == nil {
		row.chars = []byte{}
	}
	editorUpdateRow(&row, cfg.tabStop)

	cfg.rows = slices.Insert(cfg.rows, at, row)
	cfg.dirty++
}

func editorDelRow(cfg *EditorConfig, at int) {
	if at < 0 || at >= len(cfg.rows) {
		return
	}
	cfg.rows = slices.Delete(cfg.rows, at, at+1)
	cfg.dirty++
}

func editorRowInsertChar(cfg *EditorConfig, row *eRow, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = slices.Insert(row.chars, at, c)
	editorUpdateRow(row, cfg.tabStop)
	cfg.dirty++
}

func editorRowAppendString(cfg *EditorConfig, row *eRow, text []byte) {
	row.chars = append(row.chars, text...)
	editorUpdateRow(row, cfg.tabStop)
	cfg.dirty++
}

func editorRowDelChar(cfg *EditorConfig, row *eRow, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = slices.Delete(row.chars, at, at+1)
	editorUpdateRow(row, cfg.tabStop)
	cfg.dirty++
}

// editorSplitRow moves everything from column at onwards into a new row
// below row index y.
func editorSplitRow(cfg *EditorConfig, y, at int) {
	if y < 0 || y >= len(cfg.rows) {
		return
	}
	if at < 0 {
		at = 0
	}
	if at > len(cfg.rows[y].chars) {
		at = len(cfg.rows[y].chars)
	}

	editorInsertRow(cfg, y+1, cfg.rows[y].chars[at:])

	// the insert may have moved the rows, so take the pointer afterwards
	row := &cfg.rows[y]
	row.chars = row.chars[:at:at]
	editorUpdateRow(row, cfg.tabStop)
}

func editorRowsToBytes(cfg *EditorConfig) []byte {
	size := 0
	for _, row := range cfg.rows {
		size += len(row.chars) + 1
	}

	buf := make([]byte, 0, size)
	for _, row := range cfg.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}
