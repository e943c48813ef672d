package diag

import "sort"

// Bag collects diagnostics up to an optional cap. A cap of 0 means
// unbounded. Order of insertion is preserved until Sort is called.
type Bag struct {
	items   []Diagnostic
	cap     int
	dropped int
}

// NewBag creates a bag with the given cap. Use 0 for no limit.
func NewBag(cap int) *Bag {
	return &Bag{cap: cap}
}

// Add appends a diagnostic. Once the cap is reached further additions
// are counted but not stored.
func (b *Bag) Add(d Diagnostic) {
	if b.cap > 0 && len(b.items) >= b.cap {
		b.dropped++
		return
	}
	b.items = append(b.items, d)
}

// AddAll appends a batch in order.
func (b *Bag) AddAll(ds []Diagnostic) {
	for _, d := range ds {
		b.Add(d)
	}
}

// Merge moves everything from other into b.
func (b *Bag) Merge(other *Bag) {
	b.AddAll(other.items)
	b.dropped += other.dropped
}

func (b *Bag) Len() int { return len(b.items) }

// Dropped reports how many diagnostics hit the cap.
func (b *Bag) Dropped() int { return b.dropped }

// Items returns the collected diagnostics. The slice is owned by the
// bag; callers must not mutate it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// HasErrors reports whether any diagnostic is severity Error.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic is at least a warning.
func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if d.Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by file, then start offset, then descending
// severity, then code. The sort is stable so equal keys keep their
// registration order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
