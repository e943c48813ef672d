package diagfmt

import (
	"fmt"
	"io"

	"ruse/internal/diag"
	"ruse/internal/source"
)

// Short writes one stable line per diagnostic. This is the format
// golden tests compare against.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	if _, err := io.WriteString(w, diag.FormatShortAll(fs, bag.Items())); err != nil {
		return err
	}
	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "... and %d more diagnostics not shown\n", n); err != nil {
			return err
		}
	}
	return nil
}
