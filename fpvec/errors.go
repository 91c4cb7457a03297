package fpvec

import "fmt"

// ErrUnsupportedVector indicates a fingerprint representation the normalizer
// does not recognize.
type ErrUnsupportedVector struct {
	Vector any
}

func (e *ErrUnsupportedVector) Error() string {
	return fmt.Sprintf("fingerprint of type %T is not supported", e.Vector)
}

// ErrNotSparse indicates folding was applied to a representation that is not
// sparse. Folding is defined for sparse bit sets and sparse count maps only.
type ErrNotSparse struct {
	Vector any
}

func (e *ErrNotSparse) Error() string {
	return fmt.Sprintf("fingerprint of type %T cannot be folded: folding requires a sparse bit or count representation", e.Vector)
}
