package fpvec

import "github.com/RoaringBitmap/roaring/v2"

// SparseBitVect is an on/off bit set over a declared index space.
// It wraps a roaring bitmap, so only the on bits consume memory; the
// declared length can be far larger than the number of set bits.
type SparseBitVect struct {
	rb      *roaring.Bitmap
	numBits int
}

// NewSparseBitVect creates an empty sparse bit vector with the given
// declared bit length.
func NewSparseBitVect(numBits int) *SparseBitVect {
	return &SparseBitVect{
		rb:      roaring.New(),
		numBits: numBits,
	}
}

// SetBit turns bit i on.
func (v *SparseBitVect) SetBit(i uint32) {
	v.rb.Add(i)
}

// GetBit reports whether bit i is on.
func (v *SparseBitVect) GetBit(i uint32) bool {
	return v.rb.Contains(i)
}

// NumOnBits returns the number of bits that are on.
func (v *SparseBitVect) NumOnBits() int {
	return int(v.rb.GetCardinality())
}

// OnBits returns the sorted indices of the on bits.
func (v *SparseBitVect) OnBits() []uint32 {
	return v.rb.ToArray()
}

// Kind implements Vector.
func (*SparseBitVect) Kind() Kind { return KindSparseBit }

// Len implements Vector.
func (v *SparseBitVect) Len() int { return v.numBits }
