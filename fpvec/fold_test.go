package fpvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldCountSparseIntVect(t *testing.T) {
	v := NewSparseIntVect[uint32](1 << 16)
	v.Set(3, 2)
	v.Set(11, 5)  // 11 mod 8 == 3, collides with index 3
	v.Set(16, 1)  // 16 mod 8 == 0
	v.Set(800, 4) // 800 mod 8 == 0

	out, err := FoldCount(v, 8, false)
	require.NoError(t, err)
	require.Len(t, out, 8)

	assert.Equal(t, Dense{5, 0, 0, 7, 0, 0, 0, 0}, out)
}

func TestFoldCountModuloClassSums(t *testing.T) {
	// Every folded slot must equal the sum of counts at indices in its
	// modulo class.
	v := NewSparseIntVect[uint64](1 << 32)
	elems := map[uint64]int64{0: 1, 17: 3, 1024: 2, 1041: 7, 99: 1}
	for idx, count := range elems {
		v.Set(idx, count)
	}

	const dim = 17
	out, err := FoldCount(v, dim, false)
	require.NoError(t, err)

	want := make(Dense, dim)
	for idx, count := range elems {
		want[idx%dim] += count
	}
	assert.Equal(t, want, out)
}

func TestFoldCountSparseBitVect(t *testing.T) {
	v := NewSparseBitVect(1 << 20)
	v.SetBit(2)
	v.SetBit(10) // collides with 2 at dim 8
	v.SetBit(5)

	out, err := FoldCount(v, 8, false)
	require.NoError(t, err)
	assert.Equal(t, Dense{0, 0, 2, 0, 0, 1, 0, 0}, out)

	binary, err := FoldCount(v, 8, true)
	require.NoError(t, err)
	assert.Equal(t, Dense{0, 0, 1, 0, 0, 1, 0, 0}, binary)
}

func TestFoldCountBinaryEqualsClippedCounts(t *testing.T) {
	v := NewSparseIntVect[uint32](4096)
	for i := uint32(0); i < 300; i += 7 {
		v.Set(i, int64(i%5)+1)
	}

	counts, err := FoldCount(v, 64, false)
	require.NoError(t, err)
	binary, err := FoldCount(v, 64, true)
	require.NoError(t, err)

	for i := range counts {
		want := counts[i]
		if want > 1 {
			want = 1
		}
		assert.Equal(t, want, binary[i], "slot %d", i)
		assert.Contains(t, []int64{0, 1}, binary[i], "slot %d", i)
	}
}

func TestFoldCountNegativeIndex(t *testing.T) {
	// Signed index variants reduce negative indices into range instead of
	// panicking.
	v := NewSparseIntVect[int32](256)
	v.Set(-1, 3)

	out, err := FoldCount(v, 8, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, out[7])
}

func TestFoldCountDefaultDim(t *testing.T) {
	v := NewSparseIntVect[uint32](1 << 16)
	v.Set(1, 1)

	out, err := FoldCount(v, 0, false)
	require.NoError(t, err)
	assert.Len(t, out, DefaultFoldSize)
}

func TestFoldCountRejectsNonSparse(t *testing.T) {
	tests := []struct {
		name string
		fp   Vector
	}{
		{"Dense", Dense{1, 0, 1}},
		{"ExplicitBitVect", NewExplicitBitVect(16)},
		{"Bogus", bogusVector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FoldCount(tt.fp, 8, false)
			require.Error(t, err)

			var notSparse *ErrNotSparse
			assert.ErrorAs(t, err, &notSparse)
		})
	}
}
