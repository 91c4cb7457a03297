// Package molfp computes molecular fingerprints: fixed-length numeric
// encodings of chemical structures used for similarity search, clustering,
// and machine-learning featurization.
//
// molfp is a dispatch and normalization layer over a cheminformatics
// toolkit binding (see the toolkit package). It selects an algorithm by tag,
// merges caller parameters over curated per-tag defaults, invokes the native
// computation, and normalizes the result to a dense numeric array.
//
// # Quick Start
//
//	toolkit.SetDefault(binding) // once, at startup
//
//	// ECFP6, 2048 bits, as a dense array (the defaults)
//	fp, err := molfp.ComputeSMILES("CC(=O)Oc1ccccc1C(=O)O")
//
//	// Count variant, folded to 1024 dimensions
//	fp, err = molfp.ComputeSMILES(smiles,
//	    molfp.WithType(molfp.TypeECFPCount),
//	    molfp.WithFoldSize(1024),
//	)
//
//	// Native toolkit representation, parameters overridden per key
//	fp, err = molfp.Compute(mol,
//	    molfp.WithType(molfp.TypeAtomPair),
//	    molfp.WithNativeOutput(),
//	    molfp.WithParam("maxDistance", 20),
//	)
//
// # Output Shapes
//
// Toolkits produce one of a small set of native shapes (dense bit arrays,
// sparse bit sets, sparse count maps); the fpvec package models them as a
// closed union and provides the lossless ToArray normalizer and the lossy
// fixed-width FoldCount compressor.
//
// # Batch Featurization
//
//	fps, err := molfp.ComputeBatchSMILES(ctx, smilesList,
//	    molfp.WithType(molfp.TypeMACCS),
//	    molfp.WithConcurrency(8),
//	)
//
// Every call is a pure function of its inputs; the registry and default
// tables are immutable, so concurrent use needs no coordination beyond what
// the toolkit binding itself guarantees.
package molfp
