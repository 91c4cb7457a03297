package fpvec

// ToArray converts a native fingerprint into a dense int64 array without
// information loss. A Dense input is returned unchanged, so the conversion
// is idempotent.
//
// Unrecognized representations fail with *ErrUnsupportedVector.
func ToArray(fp Vector) (Dense, error) {
	switch v := fp.(type) {
	case Dense:
		return v, nil

	case *SparseBitVect:
		out := make(Dense, v.Len())
		for _, idx := range v.OnBits() {
			out[idx] = 1
		}
		return out, nil

	case *ExplicitBitVect:
		// Decoding the bit string digit by digit beats walking the bitset
		// word masks for the densities fingerprints produce.
		s := v.BitString()
		out := make(Dense, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = int64(s[i] - '0')
		}
		return out, nil

	case *SparseIntVect[uint32]:
		return scatterCounts(v), nil
	case *SparseIntVect[int32]:
		return scatterCounts(v), nil
	case *SparseIntVect[int64]:
		return scatterCounts(v), nil
	case *SparseIntVect[uint64]:
		return scatterCounts(v), nil

	default:
		return nil, &ErrUnsupportedVector{Vector: fp}
	}
}

// scatterCounts writes the nonzero index/count pairs into a dense zero array
// of the declared length. The signed widths can carry negative indices;
// those reduce into range modulo the declared length, the same treatment the
// folder gives sparse indices.
func scatterCounts[T Index](v *SparseIntVect[T]) Dense {
	out := make(Dense, v.Len())
	n := int64(v.Len())
	for idx, count := range v.NonzeroElements() {
		i := int64(idx) % n
		if i < 0 {
			i += n
		}
		out[i] = count
	}
	return out
}
