package controller

import (
	"io"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// NewUI picks the output for a run: the live Bubble Tea display when
// interactive is true, plain text on the command's output otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if !interactive {
		return NewSimpleUI(cmd)
	}

	return NewTUI(cmd.OutOrStdout())
}

// IsTTY reports whether w is an interactive terminal. Files, pipes and
// device files such as the null device are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
