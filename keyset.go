// keyset contains a generic container holding an ordered set of keys with
// exactly one marked current. A KeySet is like a row of buttons: one button
// (the current key) is pressed at any time, and pressing another releases it.
package keyset

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOutOfBounds reports an index outside the valid range for the
	// attempted operation.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrEmpty reports an operation that would leave the set without any
	// keys. A KeySet holds at least one key at all times.
	ErrEmpty = errors.New("empty key set")
)

// KeySet is an ordered set of keys of which exactly one is current. Keys
// have purely positional identity: duplicates are allowed and never
// collapsed. The zero value is not usable; construct with New or NewAt.
//
// A KeySet is a plain in-memory value with no internal synchronization.
// Callers sharing one between goroutines must serialize access themselves.
type KeySet[K any] struct {
	keys []K
	idx  int
}

// New returns a KeySet holding the given keys, with the first key current.
func New[K any](keys ...K) (*KeySet[K], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("new: must supply at least one key: %w", ErrEmpty)
	}
	return &KeySet[K]{keys: slices.Clone(keys)}, nil
}

// NewAt is New with an explicit starting index.
func NewAt[K any](start int, keys ...K) (*KeySet[K], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("new: must supply at least one key: %w", ErrEmpty)
	}
	if start < 0 || start >= len(keys) {
		return nil, fmt.Errorf("new: start index %d not in [0, %d): %w", start, len(keys), ErrOutOfBounds)
	}
	return &KeySet[K]{keys: slices.Clone(keys), idx: start}, nil
}

// Change marks the key at index i current.
func (s *KeySet[K]) Change(i int) error {
	if i < 0 || i >= len(s.keys) {
		return fmt.Errorf("change: index %d not in [0, %d): %w", i, len(s.keys), ErrOutOfBounds)
	}
	s.idx = i
	return nil
}

// Current returns the current key.
func (s *KeySet[K]) Current() K {
	return s.keys[s.idx]
}

// CurrentIndex returns the index of the current key.
func (s *KeySet[K]) CurrentIndex() int {
	return s.idx
}

// Keys returns all keys in order. The returned slice is the set's backing
// storage: callers must not modify it and must not hold on to it across a
// mutating call.
func (s *KeySet[K]) Keys() []K {
	return s.keys
}

// Len returns the number of keys.
func (s *KeySet[K]) Len() int {
	return len(s.keys)
}

// Push appends a key after the last. The current key is unaffected.
func (s *KeySet[K]) Push(key K) {
	s.keys = append(s.keys, key)
}

// Insert places key before position i, shifting the rest right. Inserting
// at or before the current key moves the current index with it, so the same
// key stays current.
func (s *KeySet[K]) Insert(i int, key K) error {
	if i < 0 || i > len(s.keys) {
		return fmt.Errorf("insert: index %d not in [0, %d]: %w", i, len(s.keys), ErrOutOfBounds)
	}
	s.keys = slices.Insert(s.keys, i, key)
	if i <= s.idx {
		s.idx++
	}
	return nil
}

// Remove deletes and returns the key at index i. Removing a key before the
// current one shifts the current index down with it. Removing the current
// key makes its successor current, or the new last key when the current key
// was last. The final remaining key cannot be removed.
func (s *KeySet[K]) Remove(i int) (K, error) {
	var zero K
	if i < 0 || i >= len(s.keys) {
		return zero, fmt.Errorf("remove: index %d not in [0, %d): %w", i, len(s.keys), ErrOutOfBounds)
	}
	if len(s.keys) == 1 {
		return zero, fmt.Errorf("remove: cannot remove the last remaining key: %w", ErrEmpty)
	}
	removed := s.keys[i]
	s.keys = slices.Delete(s.keys, i, i+1)
	switch {
	case i < s.idx:
		s.idx--
	case i == s.idx && s.idx >= len(s.keys):
		s.idx = len(s.keys) - 1
	}
	return removed, nil
}

func (s *KeySet[K]) String() string {
	return fmt.Sprintf("keys=%v, current_idx=%d, current=%v", s.keys, s.idx, s.Current())
}
