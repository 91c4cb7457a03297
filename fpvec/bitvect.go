package fpvec

import "github.com/bits-and-blooms/bitset"

// ExplicitBitVect is a fixed-length dense bit array.
// It wraps a bitset so memory stays proportional to the declared length
// rather than to the number of set bits.
type ExplicitBitVect struct {
	bits    *bitset.BitSet
	numBits int
}

// NewExplicitBitVect creates an all-zero bit vector of the given length.
func NewExplicitBitVect(numBits int) *ExplicitBitVect {
	return &ExplicitBitVect{
		bits:    bitset.New(uint(numBits)),
		numBits: numBits,
	}
}

// SetBit turns bit i on. Out-of-range indices are ignored.
func (v *ExplicitBitVect) SetBit(i int) {
	if i < 0 || i >= v.numBits {
		return
	}
	v.bits.Set(uint(i))
}

// GetBit reports whether bit i is on.
func (v *ExplicitBitVect) GetBit(i int) bool {
	if i < 0 || i >= v.numBits {
		return false
	}
	return v.bits.Test(uint(i))
}

// NumOnBits returns the number of bits that are on.
func (v *ExplicitBitVect) NumOnBits() int {
	return int(v.bits.Count())
}

// OnBits returns the sorted indices of the on bits.
func (v *ExplicitBitVect) OnBits() []int {
	out := make([]int, 0, v.NumOnBits())
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// BitString renders the vector as a '0'/'1' string, lowest index first.
func (v *ExplicitBitVect) BitString() string {
	buf := make([]byte, v.numBits)
	for i := range buf {
		buf[i] = '0'
	}
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		buf[i] = '1'
	}
	return string(buf)
}

// Kind implements Vector.
func (*ExplicitBitVect) Kind() Kind { return KindExplicitBit }

// Len implements Vector.
func (v *ExplicitBitVect) Len() int { return v.numBits }
