package molfp

import (
	"maps"
	"slices"

	"github.com/hupe1980/molfp/toolkit"
)

// Type is a fingerprint tag. It identifies both the algorithm and, via the
// "-count" suffix, whether the count variant is selected. The set of valid
// tags is closed; anything outside the registry fails with
// *ErrUnknownFingerprint.
type Type string

const (
	// TypeECFP is the extended-connectivity (circular, ECFP6) fingerprint.
	TypeECFP Type = "ecfp"
	// TypeFCFP is the functional-class circular fingerprint.
	TypeFCFP Type = "fcfp"
	// TypeTopological is the topological torsion fingerprint.
	TypeTopological Type = "topological"
	// TypeAtomPair is the atom-pair fingerprint.
	TypeAtomPair Type = "atompair"
	// TypeRDKit is the branched-path fingerprint.
	TypeRDKit Type = "rdkit"
	// TypeMACCS is the 167-key MACCS substructure fingerprint.
	TypeMACCS Type = "maccs"
	// TypePattern is the substructure-screening pattern fingerprint.
	TypePattern Type = "pattern"
	// TypeLayered is the layered path fingerprint.
	TypeLayered Type = "layered"
	// TypeErG is the extended reduced-graph fingerprint.
	TypeErG Type = "erg"
	// TypeEState is the electrotopological state fingerprint.
	TypeEState Type = "estate"
	// TypeAvalon is the binary Avalon fingerprint.
	TypeAvalon Type = "avalon"
	// TypeSECFP is the SMILES extended-connectivity fingerprint.
	TypeSECFP Type = "secfp"

	// TypeECFPCount is the count variant of TypeECFP.
	TypeECFPCount Type = "ecfp-count"
	// TypeFCFPCount is the count variant of TypeFCFP.
	TypeFCFPCount Type = "fcfp-count"
	// TypeTopologicalCount is the count variant of TypeTopological.
	TypeTopologicalCount Type = "topological-count"
	// TypeAtomPairCount is the count variant of TypeAtomPair.
	TypeAtomPairCount Type = "atompair-count"
	// TypeRDKitCount is the count variant of TypeRDKit.
	TypeRDKitCount Type = "rdkit-count"
	// TypeAvalonCount is the count variant of TypeAvalon.
	TypeAvalonCount Type = "avalon-count"
)

// strategyKind selects how the native layer is invoked for a tag.
type strategyKind uint8

const (
	// strategyDirect calls the algorithm once with molecule and parameters.
	strategyDirect strategyKind = iota
	// strategyGenerator builds a parameterized generator first, then calls
	// its fingerprint or count-fingerprint method on the molecule.
	strategyGenerator
)

// registryEntry binds a tag to its invocation strategy and curated defaults.
// Every entry carries its defaults inline, so a tag can never be registered
// without them.
type registryEntry struct {
	alg      toolkit.Algorithm
	strategy strategyKind
	count    bool // generator strategy: use the count-fingerprint method
	defaults toolkit.Params
}

var morganDefaults = toolkit.Params{
	"radius":                  3, // ECFP6, not the toolkit default (ECFP4)
	"fpSize":                  2048,
	"includeChirality":        false,
	"useBondTypes":            true,
	"countSimulation":         false,
	"countBounds":             nil,
	"atomInvariantsGenerator": toolkit.DefaultAtomInvariants,
	"bondInvariantsGenerator": nil,
}

var fcfpDefaults = toolkit.Params{
	"radius":                  2,
	"fpSize":                  2048,
	"includeChirality":        false,
	"useBondTypes":            true,
	"countSimulation":         false,
	"countBounds":             nil,
	"atomInvariantsGenerator": toolkit.FeatureAtomInvariants,
	"bondInvariantsGenerator": nil,
}

var topologicalDefaults = toolkit.Params{
	"includeChirality":        false,
	"torsionAtomCount":        4,
	"countSimulation":         true,
	"countBounds":             nil,
	"fpSize":                  2048,
	"atomInvariantsGenerator": toolkit.DefaultAtomInvariants,
}

var atomPairDefaults = toolkit.Params{
	"minDistance":             1,
	"maxDistance":             30,
	"includeChirality":        false,
	"use2D":                   true,
	"countSimulation":         true,
	"countBounds":             nil,
	"fpSize":                  2048,
	"atomInvariantsGenerator": toolkit.DefaultAtomInvariants,
}

var rdkitDefaults = toolkit.Params{
	"minPath":                 1,
	"maxPath":                 7,
	"useHs":                   true,
	"branchedPaths":           true,
	"useBondOrder":            true,
	"countSimulation":         false,
	"countBounds":             nil,
	"fpSize":                  2048,
	"numBitsPerFeature":       2,
	"atomInvariantsGenerator": toolkit.DefaultAtomInvariants,
}

var registry = map[Type]registryEntry{
	TypeECFP:        {alg: toolkit.AlgorithmMorgan, strategy: strategyGenerator, defaults: morganDefaults},
	TypeFCFP:        {alg: toolkit.AlgorithmMorgan, strategy: strategyGenerator, defaults: fcfpDefaults},
	TypeTopological: {alg: toolkit.AlgorithmTopologicalTorsion, strategy: strategyGenerator, defaults: topologicalDefaults},
	TypeAtomPair:    {alg: toolkit.AlgorithmAtomPair, strategy: strategyGenerator, defaults: atomPairDefaults},
	TypeRDKit:       {alg: toolkit.AlgorithmRDKitFP, strategy: strategyGenerator, defaults: rdkitDefaults},

	TypeECFPCount:        {alg: toolkit.AlgorithmMorgan, strategy: strategyGenerator, count: true, defaults: morganDefaults},
	TypeFCFPCount:        {alg: toolkit.AlgorithmMorgan, strategy: strategyGenerator, count: true, defaults: fcfpDefaults},
	TypeTopologicalCount: {alg: toolkit.AlgorithmTopologicalTorsion, strategy: strategyGenerator, count: true, defaults: topologicalDefaults},
	TypeAtomPairCount:    {alg: toolkit.AlgorithmAtomPair, strategy: strategyGenerator, count: true, defaults: atomPairDefaults},
	TypeRDKitCount: {alg: toolkit.AlgorithmRDKitFP, strategy: strategyGenerator, count: true, defaults: toolkit.Params{
		"minPath":                 1,
		"maxPath":                 7,
		"useHs":                   true,
		"branchedPaths":           true,
		"useBondOrder":            true,
		"countSimulation":         false,
		"countBounds":             nil,
		"fpSize":                  2048,
		"numBitsPerFeature":       1,
		"atomInvariantsGenerator": toolkit.DefaultAtomInvariants,
	}},

	TypeMACCS: {alg: toolkit.AlgorithmMACCS, strategy: strategyDirect, defaults: toolkit.Params{}},
	TypePattern: {alg: toolkit.AlgorithmPattern, strategy: strategyDirect, defaults: toolkit.Params{
		"fpSize":               2048,
		"atomCounts":           []int{},
		"setOnlyBits":          nil,
		"tautomerFingerprints": false,
	}},
	TypeLayered: {alg: toolkit.AlgorithmLayered, strategy: strategyDirect, defaults: toolkit.Params{
		"fpSize":        2048,
		"minPath":       1,
		"maxPath":       7,
		"atomCounts":    []int{},
		"setOnlyBits":   nil,
		"branchedPaths": true,
		"fromAtoms":     0,
	}},
	TypeErG: {alg: toolkit.AlgorithmErG, strategy: strategyDirect, defaults: toolkit.Params{
		"atomTypes":     0,
		"fuzzIncrement": 0.3,
		"minPath":       1,
		"maxPath":       15,
	}},
	TypeEState: {alg: toolkit.AlgorithmEState, strategy: strategyDirect, defaults: toolkit.Params{}},
	TypeAvalon: {alg: toolkit.AlgorithmAvalon, strategy: strategyDirect, defaults: toolkit.Params{
		"nBits":     512,
		"isQuery":   false,
		"resetVect": false,
		"bitFlags":  toolkit.AvalonSimilarityBits,
	}},
	TypeAvalonCount: {alg: toolkit.AlgorithmAvalonCount, strategy: strategyDirect, defaults: toolkit.Params{
		"nBits":    512,
		"isQuery":  false,
		"bitFlags": toolkit.AvalonSimilarityBits,
	}},
	TypeSECFP: {alg: toolkit.AlgorithmSECFP, strategy: strategyDirect, defaults: toolkit.Params{
		"n_permutations": 128,
		"nBits":          2048,
		"radius":         3,
		"min_radius":     1,
		"rings":          true,
		"kekulize":       false,
		"isomeric":       false,
		"seed":           0,
	}},
}

// ListSupportedFingerprints returns the sorted set of supported tags.
func ListSupportedFingerprints() []Type {
	types := slices.Collect(maps.Keys(registry))
	slices.Sort(types)
	return types
}

// mergeParams fills every default key absent from overrides. The merge is
// shallow and per-key; caller values always win and nested values are never
// merged. Neither input map is mutated.
func mergeParams(defaults, overrides toolkit.Params) toolkit.Params {
	merged := make(toolkit.Params, len(defaults)+len(overrides))
	maps.Copy(merged, defaults)
	maps.Copy(merged, overrides)
	return merged
}
