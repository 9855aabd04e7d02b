package game

// Survivor is a growing hunter. Survivors are never removed.
type Survivor struct {
	Pos   Vec
	Speed float64
	Size  float64 // kill radius and draw size, grows over time
}

// Population is the ordered live collection of one kind of agent.
type Population[T any] struct {
	items []T
}

// NewPopulation returns a population holding items in order.
func NewPopulation[T any](items ...T) *Population[T] {
	return &Population[T]{items: append([]T(nil), items...)}
}

// Len returns the member count.
func (p *Population[T]) Len() int {
	return len(p.items)
}

// Add appends a member.
func (p *Population[T]) Add(v T) {
	p.items = append(p.items, v)
}

// At returns the i-th member.
func (p *Population[T]) At(i int) T {
	return p.items[i]
}

// Items exposes the backing slice. Callers must not retain it across mutations.
func (p *Population[T]) Items() []T {
	return p.items
}

// Snapshot returns a copy of the current members.
func (p *Population[T]) Snapshot() []T {
	return append([]T(nil), p.items...)
}

// Each calls fn for every member, in order, with a pointer for in-place updates.
func (p *Population[T]) Each(fn func(i int, v *T)) {
	for i := range p.items {
		fn(i, &p.items[i])
	}
}

// RemoveIf drops every member matching pred, preserving order, and returns
// how many were removed.
func (p *Population[T]) RemoveIf(pred func(T) bool) int {
	kept := p.items[:0]
	for _, v := range p.items {
		if !pred(v) {
			kept = append(kept, v)
		}
	}
	removed := len(p.items) - len(kept)
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
	return removed
}

// removeMarked compacts away every index flagged in dead.
func (p *Population[T]) removeMarked(dead []bool) int {
	kept := p.items[:0]
	for i, v := range p.items {
		if !dead[i] {
			kept = append(kept, v)
		}
	}
	removed := len(p.items) - len(kept)
	p.items = kept
	return removed
}
