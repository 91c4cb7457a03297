// Package fpvec defines the native fingerprint representations produced by a
// cheminformatics toolkit and the conversions between them.
//
// A toolkit yields one of a small, closed set of shapes: an already-dense
// numeric array, a dense bit array, a sparse on/off bit set, or one of the
// four integer-width sparse count maps. The set is modeled as the sealed
// Vector union; every consumer dispatches exhaustively on it.
//
// # Normalizing
//
//	arr, err := fpvec.ToArray(fp) // lossless, dense int64 array
//
// # Folding
//
// Sparse shapes can be compressed to a fixed width via modulo index
// reduction. Collisions accumulate additively; this is a hashing step, not a
// bijection:
//
//	folded, err := fpvec.FoldCount(fp, 1024, false)
//
// Folding a dense shape is a type-mismatch error, since the information-loss
// trade-off only makes sense for the high-dimensional sparse formats.
package fpvec
