package diag

// Bag accumulates diagnostics for one pass, in first-encountered order.
// Entries are never reordered or deduplicated. A max of zero or below means
// the Bag is unbounded.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add appends a diagnostic, respecting the limit.
// Returns false if the diagnostic was not added (limit reached).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap reports the limit; zero means unbounded.
func (b *Bag) Cap() int {
	return b.max
}

// HasErrors returns true if at least one diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only slice of diagnostics.
// Do not modify the returned slice: it aliases the Bag's internal array.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends diagnostics from another Bag, growing max if needed.
func (b *Bag) Merge(other *Bag) {
	if b.max > 0 {
		if newTotal := len(b.items) + len(other.items); newTotal > b.max {
			b.max = newTotal
		}
	}
	b.items = append(b.items, other.items...)
}
