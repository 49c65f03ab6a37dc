package screentext

import (
	"log"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Manager owns one insertion-ordered queue of entries per category.
// It is not safe for concurrent use; the game loop goroutine owns it.
type Manager struct {
	queues map[Category][]Entry
	order  []Category // Registration order, so Tick visits queues deterministically
}

// NewManager returns a manager with the Big, HighPriority and Help queues.
func NewManager() *Manager {
	m := &Manager{
		queues: make(map[Category][]Entry),
	}
	m.RegisterCategory(Big)
	m.RegisterCategory(HighPriority)
	m.RegisterCategory(Help)
	return m
}

// RegisterCategory adds an empty queue for cat. Registering twice is a no-op.
func (m *Manager) RegisterCategory(cat Category) {
	if _, ok := m.queues[cat]; ok {
		return
	}
	m.queues[cat] = nil
	m.order = append(m.order, cat)
}

// Categories returns the registered categories in registration order.
func (m *Manager) Categories() []Category {
	out := make([]Category, len(m.order))
	copy(out, m.order)
	return out
}

// AddText appends entry to the queue for cat. Entries with the same ID coexist.
func (m *Manager) AddText(cat Category, entry Entry) {
	m.RegisterCategory(cat)
	m.queues[cat] = append(m.queues[cat], entry)
}

// Text returns the live entries of cat in insertion order. The slice aliases the
// queue and is only valid until the next AddText, Remove, Clear or Tick.
// Callers must not write to its elements; appending to it never reaches the
// queue.
func (m *Manager) Text(cat Category) []Entry {
	return slices.Clip(m.queues[cat])
}

// Len returns the number of entries queued for cat.
func (m *Manager) Len(cat Category) int {
	return len(m.queues[cat])
}

// Remove drops every entry of cat whose ID is id.
func (m *Manager) Remove(cat Category, id string) {
	m.filter(cat, func(e *Entry) bool { return e.ID != id })
}

// RemoveAny drops every entry of cat whose ID is one of ids.
func (m *Manager) RemoveAny(cat Category, ids ...string) {
	if len(ids) == 0 {
		return
	}
	set := mapset.New[string]()
	for _, id := range ids {
		set.Put(id)
	}
	m.filter(cat, func(e *Entry) bool { return !set.Has(e.ID) })
}

// Clear empties the queue for cat.
func (m *Manager) Clear(cat Category) {
	if _, ok := m.queues[cat]; ok {
		m.queues[cat] = nil
	}
}

// ClearAll empties every queue.
func (m *Manager) ClearAll() {
	for _, cat := range m.order {
		m.Clear(cat)
	}
}

// Tick ages every entry in every queue by deltaSeconds, rounded to the nearest
// millisecond, then evicts the entries that have expired.
func (m *Manager) Tick(deltaSeconds float64) {
	if deltaSeconds < 0 || math.IsNaN(deltaSeconds) {
		if strictContracts {
			panic("screentext: Tick called with negative delta")
		}
		log.Printf("screentext: negative tick delta %v clamped to 0", deltaSeconds)
		deltaSeconds = 0
	}
	ms := DeltaMS(deltaSeconds)

	for _, cat := range m.order {
		m.filter(cat, func(e *Entry) bool {
			if e.DisplayedMS > math.MaxInt-ms {
				e.DisplayedMS = math.MaxInt
			} else {
				e.DisplayedMS += ms
			}
			return !e.Expired()
		})
	}
}

// DeltaMS converts a frame delta in seconds to whole milliseconds. Deltas too
// large for an int saturate at math.MaxInt.
func DeltaMS(deltaSeconds float64) int {
	if math.IsInf(deltaSeconds, 1) || deltaSeconds >= float64(math.MaxInt/1000) {
		return math.MaxInt
	}
	return int(math.Round(deltaSeconds * 1000))
}

// filter keeps the entries of cat for which keep returns true, preserving
// order. keep may modify the entry.
func (m *Manager) filter(cat Category, keep func(e *Entry) bool) {
	q, ok := m.queues[cat]
	if !ok {
		return
	}
	kept := q[:0]
	for i := range q {
		e := q[i]
		if keep(&e) {
			kept = append(kept, e)
		}
	}
	// Zero the tail so dropped strings are not retained by the backing array
	for i := len(kept); i < len(q); i++ {
		q[i] = Entry{}
	}
	m.queues[cat] = kept
}
