// Package combinations provides lazy enumeration of the k-element
// combinations of a sequence, in lexicographic order of the chosen
// indices.  Only O(k) state is kept no matter how many of the C(n, k)
// combinations are consumed.
package combinations

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/xanium4332/combo/errors"
)

type enumState int

const (
	notStarted enumState = iota
	enumerating
	exhausted
)

//
// This type steps through the different combinations of choosing k
// elements out of a sequence of n.  Combinations are produced in
// lexicographic order of their index tuples, and the total number
// produced is the binomial coefficient.
//
type Combinator[T any] struct {
	seq     []T
	indices []int
	state   enumState
}

// Creates a Combinator over all k-element combinations of seq.  The
// sequence is not copied; elements are read from it as combinations
// are consumed.
//
// Note that k = 0 is valid, although not super interesting; by
// mathematical definition there is one way to choose no elements.
// len(seq) = 0 and k = 0 also work in the same way.  In these
// borderline cases there is a single combination and it is empty.
//
// Panics if k is negative or exceeds len(seq).
func New[T any](seq []T, k int) *Combinator[T] {
	if k < 0 {
		panic(errors.Newf("negative combination length (%d)", k))
	}
	if k > len(seq) {
		panic(errors.Newf(
			"combination length longer than sequence (%d > %d)",
			k, len(seq)))
	}

	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	return &Combinator[T]{
		seq:     seq,
		indices: indices,
		state:   notStarted,
	}
}

// Returns the next combination, or nil once all C(n, k) combinations
// have been produced.  After the first nil every further call returns
// nil as well.
func (c *Combinator[T]) Next() *Combination[T] {
	switch c.state {
	case notStarted:
		c.state = enumerating
	case enumerating:
		if !c.advance() {
			c.state = exhausted
			return nil
		}
	case exhausted:
		return nil
	}

	return newCombination(c.seq, c.indices)
}

// Advances the index tuple to its lexicographic successor: finds the
// rightmost index that still has room to grow, increments it, and
// repacks every index after it tightly.  Returns false, with the
// tuple untouched, when no index can move.
func (c *Combinator[T]) advance() bool {
	n := len(c.seq)
	k := len(c.indices)
	for i := k - 1; i >= 0; i-- {
		if c.indices[i] < n-k+i {
			c.indices[i]++
			for j := i + 1; j < k; j++ {
				c.indices[j] = c.indices[j-1] + 1
			}
			return true
		}
	}
	return false
}

// The total number of combinations this Combinator enumerates,
// C(len(seq), k), regardless of how many have been consumed so far.
// The result is computed in int arithmetic with no overflow check and
// is only meaningful while C(n, k) fits in an int; on 64-bit platforms
// central coefficients overflow past n = 66.
func (c *Combinator[T]) Count() int {
	return combin.Binomial(len(c.seq), len(c.indices))
}

// Returns an iterator over the remaining combinations, for use with a
// range statement.  Ranging picks up wherever earlier Next calls left
// off and exhausts the Combinator.
func (c *Combinator[T]) All() iter.Seq[*Combination[T]] {
	return func(yield func(*Combination[T]) bool) {
		for combo := c.Next(); combo != nil; combo = c.Next() {
			if !yield(combo) {
				return
			}
		}
	}
}
