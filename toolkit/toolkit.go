package toolkit

import (
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/molfp/fpvec"
)

// Mol is an opaque handle to a toolkit molecule: the parsed, in-memory
// chemical graph produced from textual notation. The dispatch layer never
// inspects it beyond passing it back to the toolkit that created it.
type Mol interface {
	// NumAtoms reports the number of atoms in the molecular graph.
	NumAtoms() int
}

// Algorithm identifies a native fingerprint algorithm family.
type Algorithm uint8

const (
	// AlgorithmInvalid represents an invalid algorithm.
	AlgorithmInvalid Algorithm = iota
	// AlgorithmMorgan is the circular (ECFP/FCFP) generator family.
	AlgorithmMorgan
	// AlgorithmTopologicalTorsion is the topological torsion generator.
	AlgorithmTopologicalTorsion
	// AlgorithmAtomPair is the atom-pair distance generator.
	AlgorithmAtomPair
	// AlgorithmRDKitFP is the branched-path generator.
	AlgorithmRDKitFP
	// AlgorithmMACCS is the 167-key MACCS substructure fingerprint.
	AlgorithmMACCS
	// AlgorithmPattern is the pattern (substructure screening) fingerprint.
	AlgorithmPattern
	// AlgorithmLayered is the layered path fingerprint.
	AlgorithmLayered
	// AlgorithmErG is the extended reduced-graph fingerprint.
	AlgorithmErG
	// AlgorithmEState is the electrotopological state fingerprint.
	AlgorithmEState
	// AlgorithmAvalon is the binary Avalon fingerprint.
	AlgorithmAvalon
	// AlgorithmAvalonCount is the count variant of the Avalon fingerprint.
	AlgorithmAvalonCount
	// AlgorithmSECFP is the SMILES extended-connectivity (MHFP-derived)
	// fingerprint.
	AlgorithmSECFP
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmMorgan:
		return "Morgan"
	case AlgorithmTopologicalTorsion:
		return "TopologicalTorsion"
	case AlgorithmAtomPair:
		return "AtomPair"
	case AlgorithmRDKitFP:
		return "RDKitFP"
	case AlgorithmMACCS:
		return "MACCS"
	case AlgorithmPattern:
		return "Pattern"
	case AlgorithmLayered:
		return "Layered"
	case AlgorithmErG:
		return "ErG"
	case AlgorithmEState:
		return "EState"
	case AlgorithmAvalon:
		return "Avalon"
	case AlgorithmAvalonCount:
		return "AvalonCount"
	case AlgorithmSECFP:
		return "SECFP"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}

// Params is an algorithm-specific parameter set. Values are plain Go
// scalars, plus the AtomInvariants enum for invariant-generator slots.
// Merging with defaults is shallow and per-key; nested values are never
// merged.
type Params map[string]any

// AtomInvariants selects the atom-invariant generator wired into a
// generator-based algorithm.
type AtomInvariants uint8

const (
	// DefaultAtomInvariants uses the algorithm's standard invariants.
	DefaultAtomInvariants AtomInvariants = iota
	// FeatureAtomInvariants uses pharmacophore feature invariants
	// (the FCFP flavor of the Morgan family).
	FeatureAtomInvariants
)

// AvalonSimilarityBits is the Avalon bit-flag set tuned for similarity
// searching, as opposed to substructure screening.
const AvalonSimilarityBits = 15761407

// Generator is a configured, reusable fingerprint generator. Parameters are
// fixed at construction; each call fingerprints one molecule.
type Generator interface {
	// Fingerprint computes the binary fingerprint of mol.
	Fingerprint(mol Mol) (fpvec.Vector, error)

	// CountFingerprint computes the count fingerprint of mol.
	CountFingerprint(mol Mol) (fpvec.Vector, error)
}

// Toolkit is the surface a cheminformatics binding exposes to the dispatch
// layer. Implementations must be safe for concurrent use; the dispatch layer
// performs no locking of its own.
type Toolkit interface {
	// MolFromSMILES parses SMILES text into a molecule.
	// ok is false when the text does not describe a valid molecule.
	MolFromSMILES(smiles string) (mol Mol, ok bool)

	// Fingerprint runs a one-shot algorithm on mol with the given
	// parameters.
	Fingerprint(alg Algorithm, mol Mol, params Params) (fpvec.Vector, error)

	// NewGenerator builds a generator for a generator-based algorithm.
	// The parameters configure the generator, not an individual call.
	NewGenerator(alg Algorithm, params Params) (Generator, error)
}

var defaultToolkit atomic.Pointer[Toolkit]

// SetDefault registers tk as the process-wide default toolkit.
// Passing nil clears the registration.
func SetDefault(tk Toolkit) {
	if tk == nil {
		defaultToolkit.Store(nil)
		return
	}
	defaultToolkit.Store(&tk)
}

// Default returns the registered default toolkit, or nil if none is set.
func Default() Toolkit {
	p := defaultToolkit.Load()
	if p == nil {
		return nil
	}
	return *p
}
