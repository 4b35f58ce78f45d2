// Package memory implements the repository interfaces on top of in-process
// maps. Data lives for the lifetime of the process and is lost on restart.
package memory

import (
	"sort"
	"sync"
)

// store is the map+counter core shared by every entity repository: one id
// keyed map and one monotonic counter per entity type. Gin serves requests
// concurrently, so all access goes through the RWMutex; ids are assigned
// under the write lock and never reused, even after deletes.
type store[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

func newStore[T any]() *store[T] {
	return &store[T]{
		items:  make(map[int64]T),
		nextID: 1,
	}
}

// insert assigns the next id, stores the item and returns the id.
func (s *store[T]) insert(item T, setID func(*T, int64)) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	setID(&item, id)
	s.items[id] = item
	return id
}

func (s *store[T]) get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// all returns every item ordered by ascending id. Map iteration order is
// random, so the sort keeps listings stable.
func (s *store[T]) all() []T {
	return s.filter(func(T) bool { return true })
}

// filter returns the items matching pred, ordered by ascending id. A miss
// yields an empty slice, never nil-as-absence.
func (s *store[T]) filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id, item := range s.items {
		if pred(item) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matched := make([]T, 0, len(ids))
	for _, id := range ids {
		matched = append(matched, s.items[id])
	}
	return matched
}

// find returns the first item (by ascending id) matching pred.
func (s *store[T]) find(pred func(T) bool) (T, bool) {
	var zero T
	matched := s.filter(pred)
	if len(matched) == 0 {
		return zero, false
	}
	return matched[0], true
}

// update applies mutate to the stored item and returns the merged result.
// It never creates on a miss.
func (s *store[T]) update(id int64, mutate func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&item)
	s.items[id] = item
	return item, true
}

// remove deletes the item and reports whether it existed. A second remove of
// the same id returns false, not an error.
func (s *store[T]) remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}
