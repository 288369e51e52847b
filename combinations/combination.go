package combinations

// A single combination produced by a Combinator.  It records which k
// indices were chosen and reads the corresponding elements out of the
// source sequence on demand.  The index tuple is a private snapshot,
// so a Combination stays valid after its Combinator advances.
type Combination[T any] struct {
	seq     []T
	indices []int
	pos     int
}

func newCombination[T any](seq []T, indices []int) *Combination[T] {
	snapshot := make([]int, len(indices))
	copy(snapshot, indices)
	return &Combination[T]{
		seq:     seq,
		indices: snapshot,
	}
}

// The number of chosen elements, k.
func (combo *Combination[T]) Len() int {
	return len(combo.indices)
}

// Returns the next element of the combination, read from the source
// sequence.  The boolean is false once all k elements have been
// consumed.
func (combo *Combination[T]) Next() (T, bool) {
	if combo.pos >= len(combo.indices) {
		var zero T
		return zero, false
	}

	elem := combo.seq[combo.indices[combo.pos]]
	combo.pos++
	return elem, true
}

// The chosen indices into the source sequence, in ascending order.
// The returned slice is the Combination's own snapshot; callers must
// not modify it.
func (combo *Combination[T]) Indices() []int {
	return combo.indices
}

// All chosen elements as a fresh slice, in ascending index order.
// Unlike Next, this does not consume the Combination.
func (combo *Combination[T]) Elements() []T {
	elems := make([]T, len(combo.indices))
	for i, idx := range combo.indices {
		elems[i] = combo.seq[idx]
	}
	return elems
}

// The indices of the source sequence that were not chosen
// (eg, the complement of the chosen set), in ascending order.
func (combo *Combination[T]) Complement() []int {
	n := len(combo.seq)
	k := len(combo.indices)
	c := make([]int, n-k)
	j := 0
	prev := 0
	for i := 0; i < k; i++ {
		for s := prev; s < combo.indices[i]; s++ {
			c[j] = s
			j++
		}
		prev = combo.indices[i] + 1
	}
	for prev < n {
		c[j] = prev
		j++
		prev++
	}
	return c
}
