package fpvec

import "fmt"

// Kind identifies the concrete native representation held by a Vector.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindDense represents an already-dense numeric array.
	KindDense
	// KindExplicitBit represents a fixed-length dense bit array.
	KindExplicitBit
	// KindSparseBit represents a sparse on/off bit set.
	KindSparseBit
	// KindUIntSparse represents a sparse count map keyed by uint32 indices.
	KindUIntSparse
	// KindIntSparse represents a sparse count map keyed by int32 indices.
	KindIntSparse
	// KindLongSparse represents a sparse count map keyed by int64 indices.
	KindLongSparse
	// KindULongSparse represents a sparse count map keyed by uint64 indices.
	KindULongSparse
)

func (k Kind) String() string {
	switch k {
	case KindDense:
		return "Dense"
	case KindExplicitBit:
		return "ExplicitBitVect"
	case KindSparseBit:
		return "SparseBitVect"
	case KindUIntSparse:
		return "UIntSparseIntVect"
	case KindIntSparse:
		return "IntSparseIntVect"
	case KindLongSparse:
		return "LongSparseIntVect"
	case KindULongSparse:
		return "ULongSparseIntVect"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Vector is the closed union of native fingerprint representations.
//
// Values are read-only, single-use outputs of a toolkit call; they carry no
// identity beyond the call that produced them.
type Vector interface {
	// Kind reports the concrete representation.
	Kind() Kind
	// Len reports the declared dimensionality of the fingerprint. For sparse
	// shapes this is the index space, not the number of set entries.
	Len() int
}

// Dense is an already-dense numeric fingerprint array.
type Dense []int64

// Kind implements Vector.
func (Dense) Kind() Kind { return KindDense }

// Len implements Vector.
func (d Dense) Len() int { return len(d) }
