package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"
)

var (
	ErrExitTerminal = errors.New("exit terminal")
)

const (
	KILO_VERSION     = "0.0.1"
	KILO_ATTRIBUTION = "a kilo-style editor written in Go"
	KILO_TAB_STOP    = 8
	KILO_QUIT_TIMES  = 3
	KILO_MSG_TIMEOUT = 5 * time.Second
)

// Options holds everything that can be set from the command line.
type Options struct {
	FileName       string
	TabStop        int
	QuitTimes      int
	MessageTimeout time.Duration
	LogFile        string
}

type EditorConfig struct {
	// Original terminal settings to restore on exit. nil when the editor
	// is not attached to a real terminal.
	term *rawTerminal

	keys   *keyReader
	out    io.Writer
	logger *log.Logger
	now    func() time.Time

	tabStop    int
	quitTimes  int
	msgTimeout time.Duration

	// Visible text area, the status and message bars are not included
	screenRows int
	screenCols int

	// Current cursor position in chars
	cursorX int
	cursorY int

	// Current render X position (accounts for tabs)
	// Updated in editorScroll
	rowX int

	// Top left corner of the viewport in render coordinates
	rowOff int
	colOff int

	rows []eRow

	// Incremented by every change to the rows, reset by open and save
	dirty int

	fileName string

	statusMsg     string
	statusMsgTime time.Time

	// Ctrl-Q presses still needed to quit with unsaved changes
	quitKeyPresses int

	search searchState
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseOptions(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := log.New(io.Discard, "kilo: ", log.LstdFlags)
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "kilo: standard input is not a terminal")
		return 1
	}

	rawTerm, err := enableRawMode(fd)
	if err != nil {
		die(nil, os.Stdout, logger, err)
		return 1
	}
	defer rawTerm.restore()

	keys := newKeyReader(os.Stdin)
	rows, cols, err := getWindowSize(int(os.Stdout.Fd()), keys, os.Stdout)
	if err != nil {
		die(rawTerm, os.Stdout, logger, err)
		return 1
	}

	cfg := initEditor(opts, keys, os.Stdout, rows, cols)
	cfg.term = rawTerm
	cfg.logger = logger

	if opts.FileName != "" {
		if err := editorOpen(cfg, opts.FileName); err != nil {
			die(cfg.term, os.Stdout, logger, err)
			return 1
		}
	}

	editorSetStatusMessage(cfg, "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	if err := editorLoop(cfg); err != nil {
		die(cfg.term, os.Stdout, logger, err)
		return 1
	}

	io.WriteString(os.Stdout, "\x1b[2J\x1b[H")
	return 0
}

func parseOptions(args []string, output io.Writer) (Options, error) {
	opts := Options{}

	fs := flag.NewFlagSet("kilo", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: kilo [flags] [filename]\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&opts.TabStop, "tabstop", KILO_TAB_STOP, "columns per tab stop")
	fs.IntVar(&opts.QuitTimes, "quit-times", KILO_QUIT_TIMES, "extra Ctrl-Q presses needed to quit with unsaved changes")
	fs.DurationVar(&opts.MessageTimeout, "message-timeout", KILO_MSG_TIMEOUT, "how long status messages stay visible")
	fs.StringVar(&opts.LogFile, "log", "", "write a debug log to this file")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	var err error
	switch {
	case fs.NArg() > 1:
		err = fmt.Errorf("expected at most one file, got %d", fs.NArg())
	case opts.TabStop < 1:
		err = fmt.Errorf("tabstop must be at least 1, got %d", opts.TabStop)
	case opts.QuitTimes < 0:
		err = fmt.Errorf("quit-times must not be negative, got %d", opts.QuitTimes)
	}
	if err != nil {
		fmt.Fprintln(fs.Output(), err)
		fs.Usage()
		return Options{}, err
	}

	opts.FileName = fs.Arg(0)
	return opts, nil
}

//*** Editor Setup

// initEditor builds an editor for a terminal of rows x cols cells.
func initEditor(opts Options, keys *keyReader, out io.Writer, rows, cols int) *EditorConfig {
	cfg := &EditorConfig{
		keys:           keys,
		out:            out,
		logger:         log.New(io.Discard, "", 0),
		now:            time.Now,
		tabStop:        opts.TabStop,
		quitTimes:      opts.QuitTimes,
		msgTimeout:     opts.MessageTimeout,
		screenCols:     cols,
		quitKeyPresses: opts.QuitTimes,
		search:         searchState{lastMatch: -1, direction: 1},
	}

	// leave room for the status bar and the message bar
	cfg.screenRows = max(rows-2, 1)

	return cfg
}

func editorLoop(cfg *EditorConfig) error {
	for {
		if err := editorRefreshScreen(cfg); err != nil {
			return err
		}

		err := editorProcessKeyPress(cfg)
		if errors.Is(err, ErrExitTerminal) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func editorSetStatusMessage(cfg *EditorConfig, format string, args ...any) {
	cfg.statusMsg = fmt.Sprintf(format, args...)
	cfg.statusMsgTime = cfg.now()
}

// *** Utils

// die clears the screen, gives the terminal back its original settings and
// reports err.
func die(t *rawTerminal, out io.Writer, logger *log.Logger, err error) {
	io.WriteString(out, "\x1b[2J\x1b[H")
	if rerr := t.restore(); rerr != nil {
		err = errors.Join(err, rerr)
	}
	logger.Print(err)
	fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
}
