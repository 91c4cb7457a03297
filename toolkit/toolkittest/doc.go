// Package toolkittest provides a deterministic simulated toolkit for tests.
//
// This package is intended for use in tests and benchmarks only. It is not a
// cheminformatics implementation: fingerprints are hash-derived pseudo
// features with the correct native shape, declared length, and parameter
// sensitivity, so the dispatch, folding, and normalization layers can be
// exercised without a native binding.
//
//	tk := toolkittest.New()
//	toolkit.SetDefault(tk)
//	fp, err := molfp.ComputeSMILES("CCO")
//
// The simulated parser accepts SMILES-shaped text and rejects empty or
// malformed input, so invalid-input paths are testable too. Call counters
// make invocation-order assertions possible.
package toolkittest
