package motif

import (
	"strings"
	"testing"

	"github.com/bioseqlab/seqfeat/pkg/feature"
)

func TestConsensusMatch(t *testing.T) {
	out := Features().ComputeSingle(feature.Input{Seq: "GGCGCTATAAAAGCGCG"}, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out)
	}
	if out["motif_count"].(int) < 1 {
		t.Errorf("motif_count = %v, want at least 1 for a TATA consensus", out["motif_count"])
	}
	if out["motif_max_score"].(float64) <= 0 {
		t.Errorf("motif_max_score = %v, want positive", out["motif_max_score"])
	}
	if out["motif_clustered"].(bool) {
		t.Error("motif_clustered = true for a single match")
	}
}

func TestNoMatches(t *testing.T) {
	out := Features().ComputeSingle(feature.Input{Seq: strings.Repeat("C", 40)}, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out)
	}
	if out["motif_count"].(int) != 0 {
		t.Errorf("motif_count = %v, want 0", out["motif_count"])
	}
	if out["motif_mean_score"].(float64) != 0 {
		t.Errorf("motif_mean_score = %v, want 0", out["motif_mean_score"])
	}
}

func TestClusteredMatches(t *testing.T) {
	out := Features().ComputeSingle(feature.Input{Seq: "TATAAAACCCCCTATAAAA"}, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out)
	}
	if out["motif_count"].(int) < 2 {
		t.Fatalf("motif_count = %v, want at least 2", out["motif_count"])
	}
	if !out["motif_clustered"].(bool) {
		t.Error("motif_clustered = false for two nearby matches")
	}
}

func TestThresholdArgument(t *testing.T) {
	seq := "GGCGCTATAAAAGCGCG"
	strict := Features().ComputeSingle(feature.Input{Seq: seq},
		feature.Selection{
			"motif_count": {Args: map[string]interface{}{"threshold_frac": 1.0}},
		})
	if strict.IsError() {
		t.Fatalf("unexpected error: %v", strict)
	}
	lax := Features().ComputeSingle(feature.Input{Seq: seq}, nil)
	if strict["motif_count"].(int) > lax["motif_count"].(int) {
		t.Errorf("stricter threshold found more matches: %v > %v",
			strict["motif_count"], lax["motif_count"])
	}
}
