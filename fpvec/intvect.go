package fpvec

import "maps"

// Index constrains the native integer widths used to key sparse count maps.
type Index interface {
	uint32 | int32 | int64 | uint64
}

// SparseIntVect is a sparse count map from feature index to nonnegative
// occurrence count over a declared index space. The four instantiations
// mirror the integer-width variants a toolkit can produce.
type SparseIntVect[T Index] struct {
	length int
	elems  map[T]int64
}

// UIntSparseIntVect is a sparse count map keyed by uint32 indices.
type UIntSparseIntVect = SparseIntVect[uint32]

// IntSparseIntVect is a sparse count map keyed by int32 indices.
type IntSparseIntVect = SparseIntVect[int32]

// LongSparseIntVect is a sparse count map keyed by int64 indices.
type LongSparseIntVect = SparseIntVect[int64]

// ULongSparseIntVect is a sparse count map keyed by uint64 indices.
type ULongSparseIntVect = SparseIntVect[uint64]

// NewSparseIntVect creates an empty sparse count vector with the given
// declared length.
func NewSparseIntVect[T Index](length int) *SparseIntVect[T] {
	return &SparseIntVect[T]{
		length: length,
		elems:  make(map[T]int64),
	}
}

// Set stores the count for a feature index. A zero count removes the entry
// so NonzeroElements stays minimal.
func (v *SparseIntVect[T]) Set(idx T, count int64) {
	if count == 0 {
		delete(v.elems, idx)
		return
	}
	v.elems[idx] = count
}

// Increment adds delta to the count at a feature index.
func (v *SparseIntVect[T]) Increment(idx T, delta int64) {
	v.Set(idx, v.elems[idx]+delta)
}

// Get returns the count at a feature index, zero if absent.
func (v *SparseIntVect[T]) Get(idx T) int64 {
	return v.elems[idx]
}

// NonzeroElements returns a copy of the index → count map.
func (v *SparseIntVect[T]) NonzeroElements() map[T]int64 {
	return maps.Clone(v.elems)
}

// NumNonzero returns the number of nonzero entries.
func (v *SparseIntVect[T]) NumNonzero() int {
	return len(v.elems)
}

// Kind implements Vector.
func (v *SparseIntVect[T]) Kind() Kind {
	switch any(T(0)).(type) {
	case uint32:
		return KindUIntSparse
	case int32:
		return KindIntSparse
	case int64:
		return KindLongSparse
	case uint64:
		return KindULongSparse
	default:
		return KindInvalid
	}
}

// Len implements Vector.
func (v *SparseIntVect[T]) Len() int { return v.length }
