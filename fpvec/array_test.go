package fpvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArrayDense(t *testing.T) {
	in := Dense{0, 3, 0, 7}

	out, err := ToArray(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Idempotent on already-dense input.
	again, err := ToArray(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestToArrayExplicitBitVect(t *testing.T) {
	v := NewExplicitBitVect(16)
	v.SetBit(0)
	v.SetBit(7)
	v.SetBit(15)

	out, err := ToArray(v)
	require.NoError(t, err)
	require.Len(t, out, 16)

	for i, val := range out {
		if i == 0 || i == 7 || i == 15 {
			assert.EqualValues(t, 1, val, "bit %d", i)
		} else {
			assert.EqualValues(t, 0, val, "bit %d", i)
		}
	}
}

func TestToArraySparseBitVect(t *testing.T) {
	v := NewSparseBitVect(1 << 20)
	v.SetBit(3)
	v.SetBit(999999)

	out, err := ToArray(v)
	require.NoError(t, err)
	require.Len(t, out, 1<<20)
	assert.EqualValues(t, 1, out[3])
	assert.EqualValues(t, 1, out[999999])
	assert.EqualValues(t, 0, out[4])
}

func TestToArraySparseIntVect(t *testing.T) {
	t.Run("UInt", func(t *testing.T) {
		v := NewSparseIntVect[uint32](64)
		v.Set(1, 5)
		v.Set(63, 2)

		out, err := ToArray(v)
		require.NoError(t, err)
		require.Len(t, out, 64)
		assert.EqualValues(t, 5, out[1])
		assert.EqualValues(t, 2, out[63])
		assert.EqualValues(t, 0, out[0])
	})

	t.Run("Int", func(t *testing.T) {
		v := NewSparseIntVect[int32](8)
		v.Set(2, 9)

		out, err := ToArray(v)
		require.NoError(t, err)
		assert.Equal(t, Dense{0, 0, 9, 0, 0, 0, 0, 0}, out)
	})

	t.Run("Long", func(t *testing.T) {
		v := NewSparseIntVect[int64](8)
		v.Set(7, 1)

		out, err := ToArray(v)
		require.NoError(t, err)
		assert.EqualValues(t, 1, out[7])
	})

	t.Run("ULong", func(t *testing.T) {
		v := NewSparseIntVect[uint64](8)
		v.Set(0, 4)

		out, err := ToArray(v)
		require.NoError(t, err)
		assert.EqualValues(t, 4, out[0])
	})

	t.Run("NegativeIndex", func(t *testing.T) {
		// Signed index variants reduce negative indices into range, like
		// the folder does.
		v := NewSparseIntVect[int32](8)
		v.Set(-1, 6)
		v.Set(2, 3)

		out, err := ToArray(v)
		require.NoError(t, err)
		assert.Equal(t, Dense{0, 0, 3, 0, 0, 0, 0, 6}, out)
	})
}

type bogusVector struct{}

func (bogusVector) Kind() Kind { return KindInvalid }
func (bogusVector) Len() int   { return 0 }

func TestToArrayUnsupported(t *testing.T) {
	_, err := ToArray(bogusVector{})
	require.Error(t, err)

	var unsupported *ErrUnsupportedVector
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "bogusVector")
}

func TestBitStringRoundTrip(t *testing.T) {
	v := NewExplicitBitVect(8)
	v.SetBit(1)
	v.SetBit(6)

	assert.Equal(t, "01000010", v.BitString())
	assert.Equal(t, []int{1, 6}, v.OnBits())
	assert.Equal(t, 2, v.NumOnBits())
}
