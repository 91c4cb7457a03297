package toolkittest

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/hupe1980/molfp/fpvec"
	"github.com/hupe1980/molfp/toolkit"
)

// Declared lengths of the fixed-width algorithms.
const (
	maccsNumBits  = 167
	ergNumValues  = 315
	estateNumKeys = 79
)

// Mol is the simulated molecule handle.
type Mol struct {
	smiles   string
	numAtoms int
}

// SMILES returns the text the molecule was parsed from.
func (m *Mol) SMILES() string { return m.smiles }

// NumAtoms implements toolkit.Mol.
func (m *Mol) NumAtoms() int { return m.numAtoms }

// Toolkit is a simulated toolkit.Toolkit. It is safe for concurrent use.
type Toolkit struct {
	parseCalls       atomic.Int64
	fingerprintCalls atomic.Int64
	generatorCalls   atomic.Int64
}

var _ toolkit.Toolkit = (*Toolkit)(nil)

// New creates a simulated toolkit.
func New() *Toolkit {
	return &Toolkit{}
}

// ParseCalls returns the number of MolFromSMILES invocations.
func (tk *Toolkit) ParseCalls() int64 { return tk.parseCalls.Load() }

// FingerprintCalls returns the number of one-shot Fingerprint invocations.
func (tk *Toolkit) FingerprintCalls() int64 { return tk.fingerprintCalls.Load() }

// GeneratorCalls returns the number of NewGenerator invocations.
func (tk *Toolkit) GeneratorCalls() int64 { return tk.generatorCalls.Load() }

// MolFromSMILES implements toolkit.Toolkit. It accepts SMILES-shaped text:
// nonempty, drawn from the SMILES alphabet, with balanced parentheses and
// brackets.
func (tk *Toolkit) MolFromSMILES(smiles string) (toolkit.Mol, bool) {
	tk.parseCalls.Add(1)

	if smiles == "" {
		return nil, false
	}

	parens, brackets := 0, 0
	atoms := 0
	for i := 0; i < len(smiles); i++ {
		c := smiles[i]
		switch {
		case c >= 'A' && c <= 'Z':
			// Hydrogens are implicit; trailing letters of two-char symbols
			// (Cl, Br) are lowercase and fall through below.
			if c != 'H' {
				atoms++
			}
		case c >= 'a' && c <= 'z':
			// Aromatic organic-subset atoms.
			if strings.ContainsRune("bcnops", rune(c)) {
				atoms++
			}
		case c >= '0' && c <= '9':
		case c == '(':
			parens++
		case c == ')':
			parens--
		case c == '[':
			brackets++
		case c == ']':
			brackets--
		case strings.ContainsRune("=#$:/\\@+-.%", rune(c)):
		default:
			return nil, false
		}
		if parens < 0 || brackets < 0 {
			return nil, false
		}
	}
	if parens != 0 || brackets != 0 || atoms == 0 {
		return nil, false
	}

	return &Mol{smiles: smiles, numAtoms: atoms}, true
}

// Fingerprint implements toolkit.Toolkit.
func (tk *Toolkit) Fingerprint(alg toolkit.Algorithm, mol toolkit.Mol, params toolkit.Params) (fpvec.Vector, error) {
	tk.fingerprintCalls.Add(1)

	m, ok := mol.(*Mol)
	if !ok {
		return nil, fmt.Errorf("molecule %T was not produced by this toolkit", mol)
	}

	switch alg {
	case toolkit.AlgorithmMACCS:
		return simulateBits(alg, m, params, maccsNumBits), nil
	case toolkit.AlgorithmPattern, toolkit.AlgorithmLayered:
		return simulateBits(alg, m, params, intParam(params, "fpSize", 2048)), nil
	case toolkit.AlgorithmAvalon:
		return simulateBits(alg, m, params, intParam(params, "nBits", 512)), nil
	case toolkit.AlgorithmSECFP:
		return simulateBits(alg, m, params, intParam(params, "nBits", 2048)), nil
	case toolkit.AlgorithmAvalonCount:
		return simulateCounts(alg, m, params, intParam(params, "nBits", 512)), nil
	case toolkit.AlgorithmErG:
		return simulateDense(alg, m, params, ergNumValues), nil
	case toolkit.AlgorithmEState:
		return simulateDense(alg, m, params, estateNumKeys), nil
	default:
		return nil, fmt.Errorf("algorithm %s has no one-shot form", alg)
	}
}

// NewGenerator implements toolkit.Toolkit.
func (tk *Toolkit) NewGenerator(alg toolkit.Algorithm, params toolkit.Params) (toolkit.Generator, error) {
	tk.generatorCalls.Add(1)

	switch alg {
	case toolkit.AlgorithmMorgan, toolkit.AlgorithmTopologicalTorsion,
		toolkit.AlgorithmAtomPair, toolkit.AlgorithmRDKitFP:
		return &generator{alg: alg, params: params}, nil
	default:
		return nil, fmt.Errorf("algorithm %s has no generator form", alg)
	}
}

type generator struct {
	alg    toolkit.Algorithm
	params toolkit.Params
}

func (g *generator) Fingerprint(mol toolkit.Mol) (fpvec.Vector, error) {
	m, ok := mol.(*Mol)
	if !ok {
		return nil, fmt.Errorf("molecule %T was not produced by this toolkit", mol)
	}
	return simulateBits(g.alg, m, g.params, intParam(g.params, "fpSize", 2048)), nil
}

func (g *generator) CountFingerprint(mol toolkit.Mol) (fpvec.Vector, error) {
	m, ok := mol.(*Mol)
	if !ok {
		return nil, fmt.Errorf("molecule %T was not produced by this toolkit", mol)
	}
	return simulateCounts(g.alg, m, g.params, intParam(g.params, "fpSize", 2048)), nil
}

// features derives a deterministic pseudo-feature set from the algorithm,
// the molecule, and the structural parameters. Width parameters (fpSize,
// nBits) are excluded, so resizing relocates bits via the modulo mapping
// without changing which features exist — mirroring how real generators
// behave.
func features(alg toolkit.Algorithm, m *Mol, params toolkit.Params) []uint64 {
	seed := fnv.New64a()
	fmt.Fprintf(seed, "%s|%s|", alg, m.smiles)

	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "fpSize" || k == "nBits" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(seed, "%s=%v;", k, params[k])
	}
	base := seed.Sum64()

	n := m.numAtoms * 3
	if n == 0 {
		n = 1
	}
	out := make([]uint64, n)
	for i := range out {
		h := fnv.New64a()
		fmt.Fprintf(h, "%d|%d", base, i)
		out[i] = h.Sum64()
	}
	return out
}

func simulateBits(alg toolkit.Algorithm, m *Mol, params toolkit.Params, numBits int) *fpvec.ExplicitBitVect {
	fp := fpvec.NewExplicitBitVect(numBits)
	for _, f := range features(alg, m, params) {
		fp.SetBit(int(f % uint64(numBits)))
	}
	return fp
}

func simulateCounts(alg toolkit.Algorithm, m *Mol, params toolkit.Params, length int) *fpvec.UIntSparseIntVect {
	fp := fpvec.NewSparseIntVect[uint32](length)
	for _, f := range features(alg, m, params) {
		fp.Increment(uint32(f%uint64(length)), 1+int64(f>>32)%3)
	}
	return fp
}

func simulateDense(alg toolkit.Algorithm, m *Mol, params toolkit.Params, length int) fpvec.Dense {
	fp := make(fpvec.Dense, length)
	for _, f := range features(alg, m, params) {
		fp[f%uint64(length)]++
	}
	return fp
}

func intParam(params toolkit.Params, key string, fallback int) int {
	if v, ok := params[key]; ok {
		if n, ok := v.(int); ok && n > 0 {
			return n
		}
	}
	return fallback
}
