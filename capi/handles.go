package main

import "sync"

// handleTable maps small integer ids to live Go values so that C callers can
// hold references without violating the cgo pointer rules. Ids start at 1;
// zero is never issued, which makes a NULL handle naturally invalid.
type handleTable struct {
	mu      sync.Mutex
	next    uintptr
	entries map[uintptr]interface{}
}

func newHandleTable() *handleTable {
	return &handleTable{next: 1, entries: make(map[uintptr]interface{})}
}

var handles = newHandleTable()

func (t *handleTable) put(v interface{}) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	t.entries[id] = v
	return id
}

// get returns the value for id, or nil when the id is stale or was never
// issued. Callers treat nil as an invalid handle rather than panicking.
func (t *handleTable) get(id uintptr) interface{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries[id]
}

// take removes the entry and returns it, or nil when absent. Freeing the
// same handle twice is therefore a harmless no-op.
func (t *handleTable) take(id uintptr) interface{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.entries[id]
	delete(t.entries, id)
	return v
}

func (t *handleTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
