package tui

import "errors"

// ErrNotTerminal is returned when the interactive menu is started without a
// terminal on stdin.
var ErrNotTerminal = errors.New("interactive mode requires a terminal")
