package main

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

const (
	// SPECIAL CHARACTERS
	Ctrl_F    = 6
	Ctrl_H    = 8
	TAB       = 9
	Ctrl_L    = 12
	ENTER     = 13
	Ctrl_Q    = 17
	Ctrl_S    = 19
	Esc       = 27
	BACKSPACE = 127
)

// EDITOR KEYS live above the byte range so they never collide with input.
const (
	ARROW_UP = iota + 1000
	ARROW_DOWN
	ARROW_LEFT
	ARROW_RIGHT
	PAGE_UP
	PAGE_DOWN
	HOME_KEY
	END_KEY
	DEL_KEY
)

// keyReader decodes the raw byte stream coming from the terminal.
type keyReader struct {
	r   io.Reader
	buf [1]byte
}

func newKeyReader(r io.Reader) *keyReader {
	return &keyReader{r: r}
}

// readByte does a single read. ok is false when the read timed out with
// nothing available, which in raw mode shows up as a zero length read.
func (k *keyReader) readByte() (b byte, ok bool, err error) {
	n, err := k.r.Read(k.buf[:])
	if n == 1 {
		return k.buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, syscall.EAGAIN) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("reading key: %w", err)
}

// readKey waits for the next key press and returns either the byte itself or
// one of the editor key codes.
func (k *keyReader) readKey() (int, error) {
	var c byte
	for {
		b, ok, err := k.readByte()
		if err != nil {
			return 0, err
		}
		if ok {
			c = b
			break
		}
	}

	if c == BACKSPACE {
		return BACKSPACE, nil
	}
	if c != Esc {
		return int(c), nil
	}

	// if the rest of the sequence does not show up in time the user
	// pressed the escape key on its own
	seq0, ok, err := k.readByte()
	if err != nil || !ok {
		return Esc, err
	}
	seq1, ok, err := k.readByte()
	if err != nil || !ok {
		return Esc, err
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok, err := k.readByte()
			if err != nil || !ok {
				return Esc, err
			}
			if seq2 != '~' {
				return Esc, nil
			}
			switch seq1 {
			case '1', '7':
				return HOME_KEY, nil
			case '3':
				return DEL_KEY, nil
			case '4', '8':
				return END_KEY, nil
			case '5':
				return PAGE_UP, nil
			case '6':
				return PAGE_DOWN, nil
			}
			return Esc, nil
		}

		switch seq1 {
		case 'A':
			return ARROW_UP, nil
		case 'B':
			return ARROW_DOWN, nil
		case 'C':
			return ARROW_RIGHT, nil
		case 'D':
			return ARROW_LEFT, nil
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	case 'O':
		switch seq1 {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}

	return Esc, nil
}

func isControl(key int) bool {
	return key >= 0 && (key < 32 || key == 127)
}
