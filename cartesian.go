// Package cartesian provides random access into the cartesian product of
// ordered sets, without generating the product or copying the sets' elements.
// A product over sets of sizes k₁..kₙ has ∏kᵢ tuples in lexicographic order,
// with the first set varying slowest. Decoding a position is O(n) in the
// number of sets, independent of the position and of the product size.
package cartesian

import (
	"slices"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

type Int = int64

// Indexer maps linear positions to product tuples. It never copies set
// elements: tuples share storage with the sets given to New.
type Indexer[T any] struct {
	sets [][]T
	// Suffix products of set cardinalities. Set only when less lazy.
	strides []Int
	count   Int
	// Strides and count were cached at construction. Without this, set
	// lengths are re-read on every call.
	lessLazy bool
}

// New creates an Indexer over the given sets in the given order. The sets
// slice is retained, not copied: unless Options.LessLazy is set, length
// changes made through it (or through the variadic slice the caller
// expanded) are reflected by later calls. Zero sets is fine and means a
// product of exactly one empty tuple. Empty sets are fine too and make the
// whole product empty.
func New[T any](opts Options, sets ...[]T) *Indexer[T] {
	me := Indexer[T]{
		sets:     sets,
		lessLazy: opts.LessLazy,
	}
	if opts.LessLazy {
		// Snapshot the set headers so the cached strides can't be
		// invalidated through the caller's slice. Results go stale if the
		// caller grows a set afterwards, but every read stays in bounds.
		me.sets = slices.Clone(sets)
		me.strides, me.count = makeStrides(me.sets)
	}
	return &me
}

func makeStrides[T any](sets [][]T) (strides []Int, count Int) {
	g.MakeSliceWithLength(&strides, len(sets))
	count = 1
	for i := len(sets) - 1; i >= 0; i-- {
		strides[i] = count
		count *= Int(len(sets[i]))
	}
	return
}

// NumSets returns the number of sets, which is also the length of every
// tuple.
func (me *Indexer[T]) NumSets() int {
	return len(me.sets)
}

// Count returns the number of tuples in the product. A product of zero sets
// has one (empty) tuple.
func (me *Indexer[T]) Count() Int {
	if me.lessLazy {
		return me.count
	}
	count := Int(1)
	for _, s := range me.sets {
		count *= Int(len(s))
	}
	return count
}

// LastIdx returns the last valid position, Count()-1. It's -1 if the
// product is empty, in which case no position is valid.
func (me *Indexer[T]) LastIdx() Int {
	return me.Count() - 1
}

// Get returns the tuple at pos, or none if pos is not in [0, Count()). The
// tuple is freshly allocated but its elements alias the sets' storage.
func (me *Indexer[T]) Get(pos Int) g.Option[[]T] {
	dst := make([]T, len(me.sets))
	if !me.GetInto(dst, pos) {
		return g.None[[]T]()
	}
	return g.Some(dst)
}

// GetInto decodes the tuple at pos into dst, returning false if pos is not
// in [0, Count()). dst must have NumSets elements. On false, dst contents
// are unspecified.
func (me *Indexer[T]) GetInto(dst []T, pos Int) bool {
	panicif.NotEq(len(dst), len(me.sets))
	if pos < 0 {
		return false
	}
	if me.lessLazy {
		if pos >= me.count {
			return false
		}
		for i, s := range me.sets {
			dst[i] = s[(pos/me.strides[i])%Int(len(s))]
		}
		return true
	}
	// Decode the fastest-varying set first, dividing out each cardinality
	// as it's consumed. Lengths are read per call, so this tracks the sets
	// slice as it is now.
	rem := pos
	for i := len(me.sets) - 1; i >= 0; i-- {
		s := me.sets[i]
		k := Int(len(s))
		if k == 0 {
			return false
		}
		dst[i] = s[rem%k]
		rem /= k
	}
	return rem == 0
}
