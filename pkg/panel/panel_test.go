package panel

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractGlobalAppliesPanelsByAlphabet(t *testing.T) {
	r := Default()

	nuc := r.ExtractGlobal("n1", strings.Repeat("ATGC", 25), nil, nil)
	assert.Equal(t, "n1", nuc.SequenceID)
	assert.Nil(t, nuc.WindowStart)
	assert.Contains(t, nuc.Features, "gc_content")
	assert.Contains(t, nuc.Features, "enc")
	// amino acid panels ran on the translation
	assert.Contains(t, nuc.Features, "gravy")
	assert.Contains(t, nuc.Features, "disorder_mean")

	aa := r.ExtractGlobal("p1", "MKVLITAGPTREPLDPVRYISNHSSGKMGFA", nil, nil)
	assert.Contains(t, aa.Features, "gravy")
	assert.NotContains(t, aa.Features, "enc", "codon panel must skip amino acid input")
}

func TestSequencePanelAppliesToBothAlphabets(t *testing.T) {
	r := Default()
	cfg := Config{"sequence": {Enabled: true}}

	aa := r.ExtractGlobal("p1", "MKVLITAGPTREPLDPVRYISNHSSGKMGFA", nil, cfg)
	require.NotEmpty(t, aa.Features, "composition runs on amino acid input")
	assert.Equal(t, 31, aa.Features["length"])
	assert.Contains(t, aa.Features, "gc_content")
	assert.Contains(t, aa.Features, "orf_length_aa")
	assert.NotContains(t, aa.Features, "orf_length_nt")

	rows, err := r.ExtractWindowed("p1", strings.Repeat("MKVLITAGPT", 3), nil, cfg, 10, 10)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Contains(t, row.Features, "gc_content")
	}

	nuc := r.ExtractGlobal("n1", "ATGCATGC", nil, cfg)
	assert.Contains(t, nuc.Features, "orf_length_nt")
}

func TestExtractGlobalIsIdempotent(t *testing.T) {
	r := Default()
	seq := strings.Repeat("ATGC", 25)
	first := r.ExtractGlobal("s", seq, nil, nil)
	second := r.ExtractGlobal("s", seq, nil, nil)
	assert.Equal(t, first.Features, second.Features)
}

func TestExtractWindowedRowLayout(t *testing.T) {
	r := Default()
	seq := strings.Repeat("ATGC", 25) // length 100

	rows, err := r.ExtractWindowed("s1", seq, nil, nil, 20, 10)
	require.NoError(t, err)
	require.Len(t, rows, 10, "one global row plus (100-20)/10+1 = 9 windows")

	assert.Nil(t, rows[0].WindowStart, "global row comes first")
	for i, row := range rows[1:] {
		require.NotNil(t, row.WindowStart)
		require.NotNil(t, row.WindowEnd)
		assert.Equal(t, i*10, *row.WindowStart)
		assert.Equal(t, i*10+20, *row.WindowEnd)
	}

	assert.Equal(t, 50.0, rows[1].Features["gc_content"])
}

func TestExtractWindowedRejectsBadConfig(t *testing.T) {
	_, err := Default().ExtractWindowed("s", "ATGC", nil, nil, 0, 10)
	assert.Error(t, err)
}

func TestRunIsolatesInvalidSequences(t *testing.T) {
	r := Default()
	inputs := []Input{
		{ID: "a", Seq: "ATGAAAGCTTAA"},
		{ID: "bad", Seq: "MK!LV"},
		{ID: "c", Seq: "ATGCCCGGGTAA"},
	}

	rows, errs, meta, err := r.Run(context.Background(), inputs, nil, nil, WindowConfig{}, 0)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "bad", errs[0].SequenceID)

	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].SequenceID, "row order follows input order")
	assert.Equal(t, "c", rows[1].SequenceID)

	assert.Equal(t, 3, meta.TotalSequences)
	assert.Equal(t, "global", meta.Mode)
	assert.NotEmpty(t, meta.RunID)
	assert.Contains(t, meta.PanelsComputed, "codonUsage")
}

func TestRunWindowedMetadata(t *testing.T) {
	r := Default()
	inputs := []Input{
		{ID: "a", Seq: strings.Repeat("ATGC", 25)},
		{ID: "b", Seq: strings.Repeat("GGCC", 25)},
	}

	rows, errs, meta, err := r.Run(context.Background(), inputs, nil,
		Config{"sequence": {Enabled: true}},
		WindowConfig{Enabled: true, Size: 20, Step: 10}, 0)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Len(t, rows, 20, "each sequence yields a global row and 9 windows")

	assert.Equal(t, "windowed", meta.Mode)
	assert.Equal(t, 18, meta.TotalWindows)
	assert.Equal(t, 20, meta.WindowSize)
	assert.Equal(t, 10, meta.StepSize)
	assert.Equal(t, []string{"sequence"}, meta.PanelsComputed)

	// panel selection held: no codon or chemical keys anywhere
	for _, row := range rows {
		assert.NotContains(t, row.Features, "enc")
		assert.NotContains(t, row.Features, "gravy")
	}
}

func TestRunWithSingleThread(t *testing.T) {
	inputs := []Input{
		{ID: "a", Seq: "ATGAAAGCTTAA"},
		{ID: "b", Seq: "ATGCCCGGGTAA"},
		{ID: "c", Seq: "ATGCATGCATGC"},
	}
	rows, errs, _, err := Default().Run(context.Background(), inputs, nil, nil, WindowConfig{}, 1)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 3)
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, id, rows[i].SequenceID)
	}
}

func TestRunRejectsBadWindowConfig(t *testing.T) {
	_, _, _, err := Default().Run(context.Background(),
		[]Input{{ID: "a", Seq: "ATGC"}}, nil, nil,
		WindowConfig{Enabled: true, Size: 0, Step: 5}, 0)
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := make([]Input, 50)
	for i := range inputs {
		inputs[i] = Input{ID: "s", Seq: strings.Repeat("ATGC", 25)}
	}
	_, _, _, err := Default().Run(ctx, inputs, nil, nil, WindowConfig{}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalogIsSortedAndComplete(t *testing.T) {
	infos := Default().Catalog()
	require.Len(t, infos, 7)
	for i := 1; i < len(infos); i++ {
		assert.Less(t, infos[i-1].ID, infos[i].ID)
	}
	byID := map[string]Info{}
	for _, info := range infos {
		byID[info.ID] = info
	}
	assert.Contains(t, byID["sequence"].Features, "gc_content")
	assert.Contains(t, byID["codonUsage"].Features, "chimera_ars")
	assert.Equal(t, "nucleotide", byID["motif"].Alphabet)
	assert.Equal(t, "amino_acid", byID["chemical"].Alphabet)
	assert.Equal(t, "any", byID["sequence"].Alphabet)
}
