package ir

import (
	"fmt"
	"iter"
)

// Attrs is an ordered attribute store owned by exactly one Node.
// Keys are unique and iteration follows insertion order, so encoding
// a node is deterministic. The zero value is an empty store.
type Attrs struct {
	keys []string
	vals []string
}

func (a *Attrs) Len() int {
	return len(a.keys)
}

// Set inserts key or overwrites its value. An overwrite keeps the
// key's original position. The key must be non-empty; an empty key is
// a programmer error and panics.
func (a *Attrs) Set(key, value string) {
	if key == "" {
		panic("ir: empty attribute key")
	}
	for i := range a.keys {
		if a.keys[i] == key {
			a.vals[i] = value
			return
		}
	}
	a.keys = append(a.keys, key)
	a.vals = append(a.vals, value)
}

// Remove deletes key if present, preserving the order of the
// remaining entries. Removing an absent key is a no-op.
func (a *Attrs) Remove(key string) {
	for i := range a.keys {
		if a.keys[i] == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			a.vals = append(a.vals[:i], a.vals[i+1:]...)
			return
		}
	}
}

func (a *Attrs) Get(key string) (string, error) {
	for i := range a.keys {
		if a.keys[i] == key {
			return a.vals[i], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrAttrNotFound, key)
}

func (a *Attrs) Has(key string) bool {
	for i := range a.keys {
		if a.keys[i] == key {
			return true
		}
	}
	return false
}

// All returns a restartable iterator over (key, value) entries in
// insertion order.
func (a *Attrs) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := range a.keys {
			if !yield(a.keys[i], a.vals[i]) {
				return
			}
		}
	}
}

func (a *Attrs) cloneTo(dst *Attrs) {
	dst.keys = append([]string(nil), a.keys...)
	dst.vals = append([]string(nil), a.vals...)
}
