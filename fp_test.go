package molfp

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/molfp/fpvec"
	"github.com/hupe1980/molfp/toolkit"
	"github.com/hupe1980/molfp/toolkit/toolkittest"
)

const aspirin = "CC(=O)Oc1ccccc1C(=O)O"

func TestComputeAllTags(t *testing.T) {
	tests := []struct {
		fpType Type
		length int
	}{
		{TypeECFP, 2048},
		{TypeFCFP, 2048},
		{TypeTopological, 2048},
		{TypeAtomPair, 2048},
		{TypeRDKit, 2048},
		{TypeECFPCount, 2048},
		{TypeFCFPCount, 2048},
		{TypeTopologicalCount, 2048},
		{TypeAtomPairCount, 2048},
		{TypeRDKitCount, 2048},
		{TypeMACCS, 167},
		{TypePattern, 2048},
		{TypeLayered, 2048},
		{TypeErG, 315},
		{TypeEState, 79},
		{TypeAvalon, 512},
		{TypeAvalonCount, 512},
		{TypeSECFP, 2048},
	}
	require.Len(t, tests, len(registry), "every registered tag must be covered")

	tk := toolkittest.New()
	for _, tt := range tests {
		t.Run(string(tt.fpType), func(t *testing.T) {
			fp, err := ComputeSMILES(aspirin, WithToolkit(tk), WithType(tt.fpType))
			require.NoError(t, err)

			arr, ok := fp.(fpvec.Dense)
			require.True(t, ok, "default output should be a dense array, got %T", fp)
			assert.Len(t, arr, tt.length)
		})
	}
}

func TestComputeUnknownType(t *testing.T) {
	tk := toolkittest.New()

	_, err := ComputeSMILES(aspirin, WithToolkit(tk), WithType("not-a-real-fp"))
	require.Error(t, err)

	var unknown *ErrUnknownFingerprint
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Type("not-a-real-fp"), unknown.Type)
	assert.Contains(t, err.Error(), "not-a-real-fp")
	assert.Contains(t, err.Error(), "ListSupportedFingerprints")

	// The failure happens before any toolkit work.
	assert.EqualValues(t, 0, tk.ParseCalls())
	assert.EqualValues(t, 0, tk.FingerprintCalls())
	assert.EqualValues(t, 0, tk.GeneratorCalls())
}

func TestComputeInvalidSMILES(t *testing.T) {
	tests := []struct {
		name   string
		smiles string
	}{
		{"Empty", ""},
		{"Malformed", "C((C"},
	}

	tk := toolkittest.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeSMILES(tt.smiles, WithToolkit(tk))
			require.Error(t, err)

			var invalid *ErrInvalidMolecule
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.smiles, invalid.Input)
		})
	}
}

func TestComputeNilMolecule(t *testing.T) {
	tk := toolkittest.New()

	_, err := Compute(nil, WithToolkit(tk))
	require.Error(t, err)

	var invalid *ErrInvalidMolecule
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeNoToolkit(t *testing.T) {
	toolkit.SetDefault(nil)

	_, err := ComputeSMILES(aspirin)
	require.ErrorIs(t, err, ErrNoToolkit)
}

func TestComputeDefaultToolkit(t *testing.T) {
	tk := toolkittest.New()
	toolkit.SetDefault(tk)
	defer toolkit.SetDefault(nil)

	fp, err := ComputeSMILES(aspirin)
	require.NoError(t, err)
	assert.Equal(t, 2048, fp.Len())
}

func TestComputeMolInput(t *testing.T) {
	tk := toolkittest.New()
	mol, ok := tk.MolFromSMILES(aspirin)
	require.True(t, ok)

	fromMol, err := Compute(mol, WithToolkit(tk))
	require.NoError(t, err)
	fromText, err := ComputeSMILES(aspirin, WithToolkit(tk))
	require.NoError(t, err)

	assert.Equal(t, fromText, fromMol)
}

func TestComputeNativeOutput(t *testing.T) {
	tk := toolkittest.New()

	fp, err := ComputeSMILES(aspirin, WithToolkit(tk), WithNativeOutput())
	require.NoError(t, err)
	assert.Equal(t, fpvec.KindExplicitBit, fp.Kind())

	cfp, err := ComputeSMILES(aspirin, WithToolkit(tk), WithType(TypeECFPCount), WithNativeOutput())
	require.NoError(t, err)
	assert.Equal(t, fpvec.KindUIntSparse, cfp.Kind())
}

func TestComputeFold(t *testing.T) {
	tk := toolkittest.New()

	folded, err := ComputeSMILES(aspirin, WithToolkit(tk), WithType(TypeECFPCount), WithFoldSize(512))
	require.NoError(t, err)

	arr, ok := folded.(fpvec.Dense)
	require.True(t, ok)
	require.Len(t, arr, 512)

	// Folding must match running the folder over the native result.
	native, err := ComputeSMILES(aspirin, WithToolkit(tk), WithType(TypeECFPCount), WithNativeOutput())
	require.NoError(t, err)
	want, err := fpvec.FoldCount(native, 512, false)
	require.NoError(t, err)
	assert.Equal(t, want, arr)

	// Fold output is dense even when native output was requested.
	foldedNative, err := ComputeSMILES(aspirin, WithToolkit(tk),
		WithType(TypeECFPCount), WithFoldSize(512), WithNativeOutput())
	require.NoError(t, err)
	assert.Equal(t, arr, foldedNative)
}

func TestComputeFoldRejectsDenseShapes(t *testing.T) {
	tk := toolkittest.New()

	// ECFP produces a dense bit array; folding is only defined for the
	// sparse shapes.
	_, err := ComputeSMILES(aspirin, WithToolkit(tk), WithType(TypeECFP), WithFoldSize(512))
	require.Error(t, err)

	var notSparse *fpvec.ErrNotSparse
	assert.ErrorAs(t, err, &notSparse)
}

func TestComputeParamOverride(t *testing.T) {
	tk := toolkittest.New()

	narrow, err := ComputeSMILES(aspirin, WithToolkit(tk), WithNativeOutput())
	require.NoError(t, err)
	wide, err := ComputeSMILES(aspirin, WithToolkit(tk), WithNativeOutput(), WithParam("fpSize", 4096))
	require.NoError(t, err)

	require.Equal(t, 2048, narrow.Len())
	require.Equal(t, 4096, wide.Len())

	// Overriding the width relocates bits modulo the new size but leaves
	// the substructure selection alone: remapping the wide bits onto the
	// narrow width must reproduce the narrow fingerprint exactly.
	remapped := map[int]bool{}
	for _, i := range wide.(*fpvec.ExplicitBitVect).OnBits() {
		remapped[i%2048] = true
	}
	got := map[int]bool{}
	for _, i := range narrow.(*fpvec.ExplicitBitVect).OnBits() {
		got[i] = true
	}
	assert.Equal(t, got, remapped)
}

func TestComputeParamsMergeCallerWins(t *testing.T) {
	tk := toolkittest.New()

	a, err := ComputeSMILES(aspirin, WithToolkit(tk),
		WithParams(toolkit.Params{"radius": 2}), WithParam("radius", 4))
	require.NoError(t, err)
	b, err := ComputeSMILES(aspirin, WithToolkit(tk), WithParam("radius", 4))
	require.NoError(t, err)

	assert.Equal(t, b, a, "later option must win on conflicting keys")
}

func TestComputeMetrics(t *testing.T) {
	tk := toolkittest.New()
	collector := &BasicMetricsCollector{}

	_, err := ComputeSMILES(aspirin, WithToolkit(tk), WithMetrics(collector))
	require.NoError(t, err)

	stats := collector.GetStats()
	assert.EqualValues(t, 1, stats.ComputeCount)
	assert.EqualValues(t, 0, stats.ComputeErrors)
}

func TestComputeMetricsCountFoldFailure(t *testing.T) {
	tk := toolkittest.New()
	collector := &BasicMetricsCollector{}

	// Folding a dense bit array fails after the toolkit call; the metrics
	// must reflect what the caller sees, not just the toolkit outcome.
	_, err := ComputeSMILES(aspirin, WithToolkit(tk),
		WithType(TypeECFP), WithFoldSize(128), WithMetrics(collector))
	require.Error(t, err)

	stats := collector.GetStats()
	assert.EqualValues(t, 1, stats.ComputeCount)
	assert.EqualValues(t, 1, stats.ComputeErrors)
}

func TestComputeLogsFoldFailure(t *testing.T) {
	tk := toolkittest.New()

	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	_, err := ComputeSMILES(aspirin, WithToolkit(tk),
		WithType(TypeECFP), WithFoldSize(128), WithLogger(logger))
	require.Error(t, err)

	assert.Contains(t, buf.String(), "fingerprint computation failed")
	assert.Contains(t, buf.String(), string(TypeECFP))
}

func TestListSupportedFingerprints(t *testing.T) {
	types := ListSupportedFingerprints()

	assert.Len(t, types, len(registry))
	assert.True(t, slices.IsSorted(types), "tags must be sorted")
	assert.Contains(t, types, TypeECFP)
	assert.Contains(t, types, TypeAvalonCount)
	assert.NotContains(t, types, Type("not-a-real-fp"))
}
