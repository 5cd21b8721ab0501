package analytics

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Frequency is the number of times a value occurs.
type Frequency[T constraints.Integer | constraints.Float] struct {
	Value T   `json:"value"`
	Count int `json:"count"`
}

// distribution counts the occurrences of every value, in ascending value order.
func distribution[T constraints.Integer | constraints.Float](values []T) []Frequency[T] {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	keys := sortedKeys(counts)

	frequencies := make([]Frequency[T], 0, len(keys))
	for _, k := range keys {
		frequencies = append(frequencies, Frequency[T]{Value: k, Count: counts[k]})
	}

	return frequencies
}

func sum[T constraints.Integer | constraints.Float](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}

	return total
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
