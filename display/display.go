package display

import (
	"fmt"
	"io"
	"os"

	"github.com/kbukum/seqkit/seq"
)

// Separator is written before and after every rendered sequence.
const Separator = "--------------------"

// Write renders s to w.
func Write[T any](w io.Writer, s seq.Sequence[T]) error {
	if _, err := fmt.Fprintln(w, Separator); err != nil {
		return err
	}
	for i, v := range s.All() {
		if _, err := fmt.Fprintf(w, "%d => %v\n", i, v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Separator)
	return err
}

// Labeled writes label on its own line, then renders s.
func Labeled[T any](w io.Writer, label string, s seq.Sequence[T]) error {
	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}
	return Write(w, s)
}

// Print renders s to stdout.
func Print[T any](s seq.Sequence[T]) error {
	return Write(os.Stdout, s)
}
