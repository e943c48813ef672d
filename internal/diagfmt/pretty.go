package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ruse/internal/diag"
	"ruse/internal/source"
)

type palette struct {
	severity map[diag.Severity]*color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
	fix      *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		severity: map[diag.Severity]*color.Color{
			diag.SevError:       color.New(color.FgRed, color.Bold),
			diag.SevWarning:     color.New(color.FgYellow, color.Bold),
			diag.SevWeakWarning: color.New(color.FgCyan),
		},
		location: color.New(color.FgBlue),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgRed, color.Bold),
		fix:      color.New(color.FgGreen),
	}
	for _, c := range p.severity {
		setColor(c, enabled)
	}
	setColor(p.location, enabled)
	setColor(p.gutter, enabled)
	setColor(p.caret, enabled)
	setColor(p.fix, enabled)
	return p
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Pretty renders diagnostics with source context and caret underline:
//
//	WEAK_WARNING[LNT3001] Unnecessary braces in use statement
//	  --> main.rs:1:8
//	   |
//	 1 | use a::{b};
//	   |        ^^^
//	   = fix: Remove unnecessary braces
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "\n... and %d more diagnostics not shown\n", n); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal *palette) error {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	head := fmt.Sprintf("%s %s",
		pal.severity[d.Severity].Sprintf("%s[%s]", d.Severity, d.Code.ID()),
		d.Message)
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}

	loc := fmt.Sprintf("%s:%d:%d", f.FormatPath(opts.PathMode.key(), fs.BaseDir()), start.Line, start.Col)
	if _, err := fmt.Fprintf(w, "  %s %s\n", pal.location.Sprint("-->"), loc); err != nil {
		return err
	}

	firstLine := int(start.Line) - opts.Context
	if firstLine < 1 {
		firstLine = 1
	}
	lastLine := int(start.Line) + opts.Context
	gutter := len(fmt.Sprintf("%d", lastLine))

	blank := pal.gutter.Sprintf("%s |", strings.Repeat(" ", gutter))
	if _, err := fmt.Fprintf(w, "%s\n", blank); err != nil {
		return err
	}

	for ln := firstLine; ln <= lastLine; ln++ {
		text := f.GetLine(uint32(ln)) // #nosec G115 -- ln >= 1
		if text == "" && ln != int(start.Line) {
			continue
		}
		shown := text
		if opts.Width > 0 {
			shown = runewidth.Truncate(shown, opts.Width, "…")
		}
		prefix := pal.gutter.Sprintf("%*d |", gutter, ln)
		if _, err := fmt.Fprintf(w, "%s %s\n", prefix, shown); err != nil {
			return err
		}
		if ln == int(start.Line) {
			if err := caretLine(w, text, start, end, gutter, pal); err != nil {
				return err
			}
		}
	}

	if opts.ShowFixes {
		for _, fx := range d.Fixes {
			line := pal.fix.Sprintf("= fix: %s", fx.Title)
			if fx.ID != "" {
				line += pal.gutter.Sprintf(" (%s)", fx.ID)
			}
			if _, err := fmt.Fprintf(w, "%s %s\n", strings.Repeat(" ", gutter+2), line); err != nil {
				return err
			}
		}
	}
	return nil
}

// caretLine underlines the diagnosed columns of the primary line. A
// span that continues past the line underlines to the line's end.
func caretLine(w io.Writer, lineText string, start, end source.LineCol, gutter int, pal *palette) error {
	startCol := int(start.Col)
	if startCol < 1 {
		startCol = 1
	}
	if startCol > len(lineText)+1 {
		startCol = len(lineText) + 1
	}

	endCol := len(lineText) + 1
	if end.Line == start.Line && int(end.Col) >= startCol {
		endCol = int(end.Col)
	}

	pad := runewidth.StringWidth(lineText[:startCol-1])
	width := runewidth.StringWidth(lineText[startCol-1 : min(endCol-1, len(lineText))])
	if width < 1 {
		width = 1
	}

	prefix := pal.gutter.Sprintf("%s |", strings.Repeat(" ", gutter))
	carets := pal.caret.Sprint(strings.Repeat("^", width))
	_, err := fmt.Fprintf(w, "%s %s%s\n", prefix, strings.Repeat(" ", pad), carets)
	return err
}
