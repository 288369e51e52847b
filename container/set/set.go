package set

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// An unordered collection of unique elements which supports lookups, insertions,
// deletions, iteration, and common binary set operations.  It is not guaranteed
// to be thread-safe.
type Set[T comparable] interface {
	// Returns a new Set that contains exactly the same elements as this set.
	Copy() Set[T]

	// Returns the cardinality of this set.
	Len() int

	// Returns true if and only if this set contains v (according to Go equality rules).
	Contains(v T) bool
	// Inserts v into this set.
	Add(v T)
	// Removes v from this set, if it is present.  Returns true if and only if v was present.
	Remove(v T) bool

	// Executes f(v) for every element v in this set.  If f mutates this set, behavior is undefined.
	Do(f func(T))
	// Executes f(v) once for every element v in the set, aborting if f ever returns false. If f
	// mutates this set, behavior is undefined.
	DoWhile(f func(T) bool)
	// Returns a channel from which each element in the set can be read exactly once.  If this set
	// is mutated before the channel is emptied, the exact data read from the channel is undefined.
	Iter() <-chan T

	// Adds every element in s into this set.
	Union(s Set[T])
	// Removes every element not in s from this set.
	Intersect(s Set[T])
	// Removes every element in s from this set.
	Subtract(s Set[T])
	// Returns true if and only if all elements in this set are elements in s.
	IsSubset(s Set[T]) bool
	// Returns true if and only if all elements in s are elements in this set.
	IsSuperset(s Set[T]) bool
	// Returns true if and only if this set and s contain exactly the same elements.
	IsEqual(s Set[T]) bool
	// Removes all elements v from this set that satisfy f(v) == true.
	RemoveIf(f func(T) bool)
}

// Returns a new Set pre-populated with the given items
func NewSet[T comparable](items ...T) Set[T] {
	res := setImpl[T]{
		data: make(map[T]struct{}),
	}
	for _, item := range items {
		res.Add(item)
	}
	return res
}

// Collects the elements of s into a slice sorted in ascending order.
func Sorted[T constraints.Ordered](s Set[T]) []T {
	res := make([]T, 0, s.Len())
	s.Do(func(v T) {
		res = append(res, v)
	})
	slices.Sort(res)
	return res
}

type setImpl[T comparable] struct {
	data map[T]struct{}
}

func (s setImpl[T]) Len() int {
	return len(s.data)
}

func (s setImpl[T]) Copy() Set[T] {
	res := NewSet[T]()
	res.Union(s)
	return res
}

func (s setImpl[T]) Contains(v T) bool {
	_, ok := s.data[v]
	return ok
}

func (s setImpl[T]) Add(v T) {
	s.data[v] = struct{}{}
}

func (s setImpl[T]) Remove(v T) bool {
	_, ok := s.data[v]
	if ok {
		delete(s.data, v)
	}
	return ok
}

func (s setImpl[T]) Do(f func(T)) {
	for key := range s.data {
		f(key)
	}
}

func (s setImpl[T]) DoWhile(f func(T) bool) {
	for key := range s.data {
		if !f(key) {
			break
		}
	}
}

func (s setImpl[T]) Iter() <-chan T {
	iter := make(chan T)
	go func() {
		for key := range s.data {
			iter <- key
		}
		close(iter)
	}()
	return iter
}

func (s setImpl[T]) Union(s2 Set[T]) {
	s2.Do(func(item T) { s.Add(item) })
}

func (s setImpl[T]) Intersect(s2 Set[T]) {
	var toRemove []T = nil
	for key := range s.data {
		if !s2.Contains(key) {
			toRemove = append(toRemove, key)
		}
	}

	for _, key := range toRemove {
		s.Remove(key)
	}
}

func (s setImpl[T]) Subtract(s2 Set[T]) {
	s2.Do(func(item T) { s.Remove(item) })
}

func (s setImpl[T]) IsSubset(s2 Set[T]) (isSubset bool) {
	isSubset = true
	s.DoWhile(func(item T) bool {
		if !s2.Contains(item) {
			isSubset = false
		}
		return isSubset
	})
	return
}

func (s setImpl[T]) IsSuperset(s2 Set[T]) bool {
	return s2.IsSubset(s)
}

func (s setImpl[T]) IsEqual(s2 Set[T]) bool {
	if s.Len() != s2.Len() {
		return false
	}

	return s.IsSubset(s2)
}

func (s setImpl[T]) RemoveIf(f func(T) bool) {
	var toRemove []T
	for item := range s.data {
		if f(item) {
			toRemove = append(toRemove, item)
		}
	}

	for _, item := range toRemove {
		s.Remove(item)
	}
}
