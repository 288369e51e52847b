// rand2 is a collection of functions meant to supplement the capabilities
// provided by the standard "math/rand" package.
package rand2

import (
	"math/rand"

	"github.com/xanium4332/combo/container/set"
	"github.com/xanium4332/combo/errors"
)

func samplePicked(n int, k int) (set.Set[int], error) {
	if k < 0 {
		return nil, errors.Newf("invalid sample size k")
	}

	if n < k {
		return nil, errors.Newf("sample size k larger than n")
	}

	picked := set.NewSet[int]()
	for picked.Len() < k {
		picked.Add(rand.Intn(n))
	}

	return picked, nil
}

// Samples 'k' unique ints from the range [0, n)
func SampleInts(n int, k int) (res []int, err error) {
	picked, err := samplePicked(n, k)
	if err != nil {
		return
	}

	res = make([]int, 0, k)
	for i := range picked.Iter() {
		res = append(res, i)
	}

	return
}

// Samples 'k' unique ints from the range [0, n), returned in ascending order.
func Combination(n int, k int) ([]int, error) {
	picked, err := samplePicked(n, k)
	if err != nil {
		return nil, err
	}

	return set.Sorted(picked), nil
}

// Samples 'k' elements from the given slice
func Sample[T any](population []T, k int) (res []T, err error) {
	n := len(population)
	idxs, err := SampleInts(n, k)
	if err != nil {
		return
	}

	res = []T{}
	for _, idx := range idxs {
		res = append(res, population[idx])
	}

	return
}

// Same as 'Sample' except it returns both the 'picked' sample set and the 'remaining' elements.
func PickN[T any](population []T, n int) (
	picked []T, remaining []T, err error) {

	idxs, err := Combination(len(population), n)
	if err != nil {
		return
	}

	picked, remaining = []T{}, []T{}
	for x, elem := range population {
		if len(idxs) > 0 && x == idxs[0] {
			picked = append(picked, elem)
			idxs = idxs[1:]
		} else {
			remaining = append(remaining, elem)
		}
	}

	return
}
