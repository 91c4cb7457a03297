package molfp

import (
	"context"
	"time"

	"github.com/hupe1980/molfp/fpvec"
	"github.com/hupe1980/molfp/toolkit"
)

// Compute computes the fingerprint of a parsed molecule.
//
// The tag defaults to TypeECFP; caller parameters are merged over the tag's
// curated defaults per key. With WithFoldSize the result is folded and
// always dense; otherwise it is normalized to a dense array unless
// WithNativeOutput is set.
//
// Compute is a pure function of its inputs. Toolkit failures propagate
// unchanged; nothing is retried.
func Compute(mol toolkit.Mol, optFns ...Option) (fpvec.Vector, error) {
	o := applyOptions(optFns)

	entry, ok := registry[o.fpType]
	if !ok {
		return nil, &ErrUnknownFingerprint{Type: o.fpType}
	}

	tk, err := resolveToolkit(o)
	if err != nil {
		return nil, err
	}

	if mol == nil {
		return nil, &ErrInvalidMolecule{Input: "<nil>"}
	}

	return compute(context.Background(), o, entry, tk, mol)
}

// ComputeSMILES computes the fingerprint of a molecule given as SMILES text.
// The text is resolved through the toolkit's parser; text that does not
// parse fails with *ErrInvalidMolecule naming the input. Everything else
// behaves as in Compute.
func ComputeSMILES(smiles string, optFns ...Option) (fpvec.Vector, error) {
	o := applyOptions(optFns)

	// Tag resolution comes first so a configuration error surfaces before
	// any toolkit work is attempted.
	entry, ok := registry[o.fpType]
	if !ok {
		return nil, &ErrUnknownFingerprint{Type: o.fpType}
	}

	tk, err := resolveToolkit(o)
	if err != nil {
		return nil, err
	}

	mol, ok := tk.MolFromSMILES(smiles)
	if !ok {
		return nil, &ErrInvalidMolecule{Input: smiles}
	}

	return compute(context.Background(), o, entry, tk, mol)
}

func resolveToolkit(o *options) (toolkit.Toolkit, error) {
	tk := o.tk
	if tk == nil {
		tk = toolkit.Default()
	}
	if tk == nil {
		return nil, ErrNoToolkit
	}
	return tk, nil
}

// compute runs the resolved strategy and routes the raw result through
// folding or normalization per the options. Metrics and logs cover the whole
// pipeline, so a fold or normalize failure counts as a failed computation.
func compute(ctx context.Context, o *options, entry registryEntry, tk toolkit.Toolkit, mol toolkit.Mol) (fpvec.Vector, error) {
	params := mergeParams(entry.defaults, o.params)

	start := time.Now()
	out, err := pipeline(o, entry, tk, mol, params)
	o.metrics.RecordCompute(o.fpType, time.Since(start), err)
	if err != nil {
		o.logger.LogCompute(ctx, o.fpType, 0, err)
		return nil, err
	}

	o.logger.LogCompute(ctx, o.fpType, out.Len(), nil)
	return out, nil
}

func pipeline(o *options, entry registryEntry, tk toolkit.Toolkit, mol toolkit.Mol, params toolkit.Params) (fpvec.Vector, error) {
	fp, err := invoke(entry, tk, mol, params)
	if err != nil {
		return nil, err
	}

	if o.foldSize > 0 {
		return fpvec.FoldCount(fp, o.foldSize, false)
	}

	if o.asArray {
		return fpvec.ToArray(fp)
	}

	return fp, nil
}

func invoke(entry registryEntry, tk toolkit.Toolkit, mol toolkit.Mol, params toolkit.Params) (fpvec.Vector, error) {
	if entry.strategy == strategyGenerator {
		gen, err := tk.NewGenerator(entry.alg, params)
		if err != nil {
			return nil, err
		}
		if entry.count {
			return gen.CountFingerprint(mol)
		}
		return gen.Fingerprint(mol)
	}
	return tk.Fingerprint(entry.alg, mol, params)
}
