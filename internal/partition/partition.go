// Package partition assigns rows to a train or test subset using a seeded
// per-row draw against an inclusion threshold.
package partition

import "math/rand"

// Fixed split parameters. They are not configurable.
const (
	DefaultSeed      int64   = 27
	DefaultThreshold float64 = 0.80
)

// Sampler draws a reproducible inclusion mask.
//
// A fresh generator is seeded on every call, so two calls with the same
// Sampler and the same n always return the same mask.
type Sampler struct {
	Seed      int64
	Threshold float64
}

// NewSampler returns the sampler used by the split command.
func NewSampler() Sampler {
	return Sampler{Seed: DefaultSeed, Threshold: DefaultThreshold}
}

// Mask draws n uniform values in [0, 1) in order and marks index i as train
// when draw i <= Threshold.
func (s Sampler) Mask(n int) []bool {
	if n <= 0 {
		return []bool{}
	}

	rng := rand.New(rand.NewSource(s.Seed))

	mask := make([]bool, n)
	for i := range mask {
		mask[i] = rng.Float64() <= s.Threshold
	}
	return mask
}

// Partition draws a mask for rows and splits them with it.
func Partition[T any](s Sampler, rows []T) (train, test []T) {
	return Split(rows, s.Mask(len(rows)))
}

// Split returns the rows whose mask entry is true (train) and false (test),
// each in their original relative order. It panics if the lengths differ.
func Split[T any](rows []T, mask []bool) (train, test []T) {
	if len(rows) != len(mask) {
		panic("partition: mask length does not match row count")
	}

	nTrain := trueCount(mask)
	train = make([]T, 0, nTrain)
	test = make([]T, 0, len(rows)-nTrain)
	for i, row := range rows {
		if mask[i] {
			train = append(train, row)
		} else {
			test = append(test, row)
		}
	}
	return train, test
}

func trueCount(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}
