package lint

// Entry pairs a check with its stable configuration name.
type Entry struct {
	Name  string
	Check Check
}

// Registry lists every built-in check in reporting order.
func Registry() []Entry {
	return []Entry{
		{Name: "use-braces", Check: CheckUseBraces},
		{Name: "field-shorthand", Check: CheckFieldShorthand},
		{Name: "ident-nfc", Check: CheckIdentNFC},
	}
}

// Select returns the registered checks minus the disabled names.
// Unknown names are ignored.
func Select(disable []string) []Check {
	off := make(map[string]bool, len(disable))
	for _, name := range disable {
		off[name] = true
	}
	var out []Check
	for _, e := range Registry() {
		if !off[e.Name] {
			out = append(out, e.Check)
		}
	}
	return out
}
