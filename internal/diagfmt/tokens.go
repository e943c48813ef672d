package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ruse/internal/source"
	"ruse/internal/token"
)

// FormatTokensPretty writes one token per line with its position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d:%-3d %-12s %q\n",
			start.Line, start.Col, tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Text  string `json:"text"`
}

// FormatTokensJSON writes the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tokenJSON{
			Kind:  tok.Kind.String(),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
