package molfp

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/molfp/fpvec"
	"github.com/hupe1980/molfp/toolkit"
)

// ComputeBatch featurizes many molecules with bounded concurrency and
// returns the fingerprints in input order. Each molecule is an independent
// computation per the same rules as Compute; the first failure cancels the
// remaining work and is returned with the offending position.
func ComputeBatch(ctx context.Context, mols []toolkit.Mol, optFns ...Option) ([]fpvec.Vector, error) {
	o := applyOptions(optFns)

	entry, ok := registry[o.fpType]
	if !ok {
		return nil, &ErrUnknownFingerprint{Type: o.fpType}
	}

	tk, err := resolveToolkit(o)
	if err != nil {
		return nil, err
	}

	out := make([]fpvec.Vector, len(mols))

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency(o))

	for i, mol := range mols {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if mol == nil {
				return fmt.Errorf("molecule %d: %w", i, &ErrInvalidMolecule{Input: "<nil>"})
			}
			fp, err := compute(ctx, o, entry, tk, mol)
			if err != nil {
				return fmt.Errorf("molecule %d: %w", i, err)
			}
			out[i] = fp
			return nil
		})
	}

	err = g.Wait()
	failed := 0
	if err != nil {
		failed = 1
	}
	o.metrics.RecordBatch(o.fpType, len(mols), failed, time.Since(start))
	o.logger.LogBatch(ctx, o.fpType, len(mols), failed)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ComputeBatchSMILES featurizes many molecules given as SMILES text.
// Parsing happens inside the worker pool, so malformed entries surface with
// their position and input, like any other per-molecule failure.
func ComputeBatchSMILES(ctx context.Context, smiles []string, optFns ...Option) ([]fpvec.Vector, error) {
	o := applyOptions(optFns)

	entry, ok := registry[o.fpType]
	if !ok {
		return nil, &ErrUnknownFingerprint{Type: o.fpType}
	}

	tk, err := resolveToolkit(o)
	if err != nil {
		return nil, err
	}

	out := make([]fpvec.Vector, len(smiles))

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency(o))

	for i, s := range smiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mol, ok := tk.MolFromSMILES(s)
			if !ok {
				return fmt.Errorf("molecule %d: %w", i, &ErrInvalidMolecule{Input: s})
			}
			fp, err := compute(ctx, o, entry, tk, mol)
			if err != nil {
				return fmt.Errorf("molecule %d: %w", i, err)
			}
			out[i] = fp
			return nil
		})
	}

	err = g.Wait()
	failed := 0
	if err != nil {
		failed = 1
	}
	o.metrics.RecordBatch(o.fpType, len(smiles), failed, time.Since(start))
	o.logger.LogBatch(ctx, o.fpType, len(smiles), failed)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func batchConcurrency(o *options) int {
	if o.concurrency > 0 {
		return o.concurrency
	}
	return runtime.GOMAXPROCS(0)
}
