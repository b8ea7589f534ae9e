package main

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// rawTerminal remembers the attributes a terminal had before raw mode was
// switched on so they can be put back on exit.
type rawTerminal struct {
	fd       int
	orig     unix.Termios
	restored bool
}

// enableRawMode turns off canonical input, echo, signal keys, extended input
// processing, output post-processing, flow control and parity stripping.
// Reads return after at most a tenth of a second even when no byte arrived.
func enableRawMode(fd int) (*rawTerminal, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	t := &rawTerminal{fd: fd, orig: *termios}

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}

	return t, nil
}

// restore puts the original attributes back. Calling it twice is harmless.
func (t *rawTerminal) restore() error {
	if t == nil || t.restored {
		return nil
	}
	t.restored = true
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &t.orig); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// getWindowSize asks the kernel for the terminal size and, when that is not
// available, moves the cursor to the bottom right corner and asks the
// terminal where it ended up.
func getWindowSize(fd int, in *keyReader, out io.Writer) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}

	// C [Cursor Forward] and B [Cursor Down] stop at the screen edge
	if _, err := io.WriteString(out, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}

	rows, cols, err = getCursorPosition(in, out)
	if err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}
	return rows, cols, nil
}

// getCursorPosition sends a Device Status Report request and parses the
// reply, which looks like `\x1b[24;80R`.
func getCursorPosition(in *keyReader, out io.Writer) (rows, cols int, err error) {
	if _, err := io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var reply []byte
	for len(reply) < 31 {
		b, ok, err := in.readByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		reply = append(reply, b)
	}

	if len(reply) < 2 || reply[0] != Esc || reply[1] != '[' {
		return 0, 0, errors.New("malformed cursor position report")
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor position report: %w", err)
	}
	return rows, cols, nil
}
