package codon

import (
	"math"
	"strings"
	"testing"

	"github.com/bioseqlab/seqfeat/pkg/feature"
	"github.com/bioseqlab/seqfeat/pkg/refset"
)

func floatOut(t *testing.T, out feature.AttributeMap, key string) float64 {
	t.Helper()
	v, ok := out[key]
	if !ok {
		t.Fatalf("missing key %s in %v", key, out)
	}
	f, ok := v.(float64)
	if !ok {
		t.Fatalf("key %s is %T, want float64", key, v)
	}
	return f
}

func TestSelfContainedMetrics(t *testing.T) {
	out := Features().ComputeSingle(feature.Input{Seq: "ATGAAAGCTTAA"}, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out)
	}

	enc := floatOut(t, out, "enc")
	if enc < 2 || enc > 61 {
		t.Errorf("enc = %f, want within [2, 61]", enc)
	}

	// one codon per amino acid: rscu values are 1 (Met), 2+0 (Lys),
	// 4+0+0+0 (Ala), mean 1.0
	if got := floatOut(t, out, "rscu"); got != 1.0 {
		t.Errorf("rscu = %f, want 1.0", got)
	}

	// reference-dependent metrics opt out without a reference set
	for _, key := range []string{"cai", "fop", "tai", "nte", "rca", "chimera_ars"} {
		if _, ok := out[key]; ok {
			t.Errorf("%s computed without a reference set", key)
		}
	}
}

func TestHomogeneousSequenceHasNoBias(t *testing.T) {
	out := Features().ComputeSingle(feature.Input{Seq: strings.Repeat("ATG", 20)}, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out)
	}
	if got := floatOut(t, out, "rcbs"); got != 0 {
		t.Errorf("rcbs = %f, want 0", got)
	}
	if got := floatOut(t, out, "dcbs"); got != 1 {
		t.Errorf("dcbs = %f, want 1", got)
	}
	if got := floatOut(t, out, "cpb"); got != 0 {
		t.Errorf("cpb = %f, want 0", got)
	}
}

func TestReferenceMetrics(t *testing.T) {
	seq := "ATGAAAGCTGGT"
	ref := refset.FromSequences([]string{seq, "ATGAAAAAAGGT"}, refset.Options{})

	out := Features().ComputeSingle(feature.Input{Seq: seq, Ref: ref}, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out)
	}

	// every codon of the query is the most used codon for its amino acid
	// in the corpus, so CAI is 1 and all codons are optimal
	if got := floatOut(t, out, "cai"); got != 1.0 {
		t.Errorf("cai = %f, want 1.0", got)
	}
	if got := floatOut(t, out, "fop"); got != 1.0 {
		t.Errorf("fop = %f, want 1.0", got)
	}

	for _, key := range []string{"tai", "rca"} {
		got := floatOut(t, out, key)
		if got <= 0 || math.IsNaN(got) {
			t.Errorf("%s = %f, want positive", key, got)
		}
	}

	// the query is a corpus member, so its suffixes match in full
	if got := floatOut(t, out, "chimera_ars"); got <= 0 {
		t.Errorf("chimera_ars = %f, want positive", got)
	}

	// nte opts out without expression data
	if _, ok := out["nte"]; ok {
		t.Error("nte computed without expression levels")
	}

	expr := refset.FromSequences([]string{seq, "ATGAAAAAAGGT"}, refset.Options{
		Expression: map[string]float64{"0": 10, "1": 1},
	})
	out = Features().ComputeSingle(feature.Input{Seq: seq, Ref: expr}, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out)
	}
	if got := floatOut(t, out, "nte"); got <= 0 || math.IsNaN(got) {
		t.Errorf("nte = %f, want positive", got)
	}
}
