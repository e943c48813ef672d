package diag

import (
	"fmt"
	"strings"

	"ruse/internal/source"
)

// FormatShort renders one diagnostic as a stable single line:
//
//	path:line:col: SEVERITY CODE message
//
// Suitable for golden tests and the plain text formatter.
func FormatShort(fs *source.FileSet, d Diagnostic) string {
	f := fs.Get(d.Primary.File)
	if f == nil {
		return fmt.Sprintf("<unknown file>: %s %s %s", d.Severity, d.Code.ID(), d.Message)
	}
	start, _ := fs.Resolve(d.Primary)
	return fmt.Sprintf("%s:%d:%d: %s %s %s",
		f.FormatPath("auto", fs.BaseDir()), start.Line, start.Col,
		d.Severity, d.Code.ID(), d.Message)
}

// FormatShortAll renders each diagnostic on its own line, ending with
// a trailing newline when non-empty.
func FormatShortAll(fs *source.FileSet, ds []Diagnostic) string {
	if len(ds) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range ds {
		sb.WriteString(FormatShort(fs, d))
		sb.WriteByte('\n')
	}
	return sb.String()
}
