package filing

import (
	"sort"
	"sync"

	"filings-gateway/internal/entity"
)

// Entry is one filing component selected for the transaction being composed.
// Entries are keyed by filing type code; the accumulator never holds two
// entries with the same code.
type Entry struct {
	FilingTypeCode string      `json:"filingTypeCode"`
	EntityType     entity.Type `json:"entityType"`
	Priority       bool        `json:"priority"`
	WaiveFees      bool        `json:"waiveFees"`
}

// UpdateAction selects what Update does with the targeted entries.
type UpdateAction string

const (
	ActionAdd    UpdateAction = "add"
	ActionRemove UpdateAction = "remove"
)

// Accumulator maintains the set of filing components for one in-progress
// transaction. Update is the sole mutation path; the internal lock makes the
// remove-then-add step atomic to observers.
type Accumulator struct {
	mu         sync.RWMutex
	entityType entity.Type
	entries    []Entry
}

// NewAccumulator creates an empty accumulator for the given entity type.
// New entries inherit the type.
func NewAccumulator(entityType entity.Type) *Accumulator {
	return &Accumulator{entityType: entityType}
}

// Update applies one mutation.
//
// With a filing code: any existing entry with that code is removed first
// (idempotent), then for ActionAdd a fresh entry is inserted with the given
// flags (nil means false). Removing an absent code is a no-op.
//
// Without a filing code: the action applies to every existing entry. For each
// entry, a non-nil priority sets Priority to (action == ActionAdd); waiveFees
// behaves the same, independently. Nil flags leave the field untouched.
func (a *Accumulator) Update(action UpdateAction, filingCode string, priority, waiveFees *bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if filingCode == "" {
		on := action == ActionAdd
		for i := range a.entries {
			if priority != nil {
				a.entries[i].Priority = on
			}
			if waiveFees != nil {
				a.entries[i].WaiveFees = on
			}
		}
		return
	}

	a.removeLocked(filingCode)
	if action == ActionAdd {
		a.entries = append(a.entries, Entry{
			FilingTypeCode: filingCode,
			EntityType:     a.entityType,
			Priority:       priority != nil && *priority,
			WaiveFees:      waiveFees != nil && *waiveFees,
		})
	}
}

// Has reports whether an entry with the given filing code exists.
func (a *Accumulator) Has(filingCode string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, e := range a.entries {
		if e.FilingTypeCode == filingCode {
			return true
		}
	}
	return false
}

// Entries returns a copy of the current set, sorted by filing code for
// deterministic output. Order carries no meaning.
func (a *Accumulator) Entries() []Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].FilingTypeCode < out[j].FilingTypeCode
	})
	return out
}

// Len returns the number of entries.
func (a *Accumulator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// Reset drops every entry, as when a transaction is abandoned.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = nil
}

// Restore replaces the set wholesale, deduplicating by filing code (last one
// wins). Used when rehydrating a draft from the store.
func (a *Accumulator) Restore(entries []Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = nil
	seen := make(map[string]int)
	for _, e := range entries {
		if i, ok := seen[e.FilingTypeCode]; ok {
			a.entries[i] = e
			continue
		}
		seen[e.FilingTypeCode] = len(a.entries)
		a.entries = append(a.entries, e)
	}
}

func (a *Accumulator) removeLocked(filingCode string) {
	for i, e := range a.entries {
		if e.FilingTypeCode == filingCode {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return
		}
	}
}
