package internal

import (
	"iter"
	"maps"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// Defines merges define sets in key order. A later set overrides the
// value of a name in an earlier one.
func Defines(sets ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	merged := maps.Collect(IterSeq2Concat(sets...))

	return func(yield func(string, string) bool) {
		for _, key := range slices.Sorted(maps.Keys(merged)) {
			if !yield(key, merged[key]) {
				return
			}
		}
	}
}
