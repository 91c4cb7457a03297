package fpvec

// DefaultFoldSize is the fold width used when the caller does not request one.
const DefaultFoldSize = 1024

// FoldCount compresses a sparse fingerprint into a dense array of length dim
// by reducing every index to index mod dim. Values at colliding reduced
// indices accumulate additively; for a bit set each on bit contributes 1.
// Collisions are the point of the exercise: the fold trades a little
// information for a fixed-width feature vector.
//
// If binary is set, every accumulated value is clamped to {0, 1} after
// accumulation, preserving presence rather than count.
//
// A dim that is not positive falls back to DefaultFoldSize. Dense and
// unrecognized inputs fail with *ErrNotSparse.
func FoldCount(fp Vector, dim int, binary bool) (Dense, error) {
	if dim <= 0 {
		dim = DefaultFoldSize
	}

	folded := make(Dense, dim)

	switch v := fp.(type) {
	case *SparseBitVect:
		for _, idx := range v.OnBits() {
			folded[int(idx)%dim]++
		}

	case *SparseIntVect[uint32]:
		foldCounts(folded, v)
	case *SparseIntVect[int32]:
		foldCounts(folded, v)
	case *SparseIntVect[int64]:
		foldCounts(folded, v)
	case *SparseIntVect[uint64]:
		foldCounts(folded, v)

	default:
		return nil, &ErrNotSparse{Vector: fp}
	}

	if binary {
		for i, c := range folded {
			if c > 1 {
				folded[i] = 1
			} else if c < 0 {
				folded[i] = 0
			}
		}
	}

	return folded, nil
}

func foldCounts[T Index](dst Dense, v *SparseIntVect[T]) {
	dim := T(len(dst))
	for idx, count := range v.NonzeroElements() {
		r := idx % dim
		if r < 0 {
			r += dim
		}
		dst[int(r)] += count
	}
}
