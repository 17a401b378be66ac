package utils

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// TerminalSize returns the columns and lines of the terminal attached to f
func TerminalSize(f *os.File) (cols, lines int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.Errorf("[TerminalSize] %s is not a terminal", f.Name())
	}
	cols, lines, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, errors.Wrap(err, "[TerminalSize] failed to query size")
	}
	return cols, lines, nil
}
