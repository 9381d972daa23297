// Package store holds the in-memory relational backing of the catalog. One
// table instance lives per entity kind for the lifetime of the process;
// nothing survives a restart.
package store

import "sync"

// ReplaceOutcome is the tagged result of a conditional replace. The caller
// decides what a conflict means; the table never retries on its own.
type ReplaceOutcome int

const (
	Replaced ReplaceOutcome = iota
	ReplaceConflict
	ReplaceAbsent
)

type row[T any] struct {
	value   T
	version int64
}

// table is a homogeneous collection of one entity kind. Ids are monotonic
// and never reused, records keep insertion order, and every record carries a
// version counter that successful replaces increment. All methods are safe
// for concurrent use; reads share a lock, mutations are exclusive.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int
	rows   map[int]*row[T]
	order  []int
}

func newTable[T any]() *table[T] {
	return &table[T]{
		nextID: 1,
		rows:   make(map[int]*row[T]),
	}
}

// Insert assigns the next unused id, stores the record built by the caller
// with that id, and returns the id. Insertion never fails; constraint
// checking happens before a value reaches the table.
func (t *table[T]) Insert(build func(id int) T) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.rows[id] = &row[T]{value: build(id)}
	t.order = append(t.order, id)
	return id
}

// Get returns the record and its current version token. Absence is a valid
// outcome, not an error.
func (t *table[T]) Get(id int) (T, int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, 0, false
	}
	return r.value, r.version, true
}

// List scans the table in insertion order under a read lock, so callers see
// a consistent snapshot with no torn records. A nil predicate keeps
// everything.
func (t *table[T]) List(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id].value
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Replace is a compare-and-swap on the record's version counter: the record
// is replaced and the version bumped only when expectedVersion matches the
// current token. A mismatch means another writer got there first.
func (t *table[T]) Replace(id int, v T, expectedVersion int64) ReplaceOutcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	if !ok {
		return ReplaceAbsent
	}
	if r.version != expectedVersion {
		return ReplaceConflict
	}
	r.value = v
	r.version++
	return Replaced
}

// Remove deletes the record and returns it. The id is retired permanently;
// later inserts never see it again.
func (t *table[T]) Remove(id int) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return r.value, true
}
