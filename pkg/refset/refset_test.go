package refset

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGetOrComputeCachesPerKey(t *testing.T) {
	s := FromSequences([]string{"ATGAAA"}, Options{})

	var calls int32
	fn := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.GetOrCompute("answer", fn)
			if err != nil {
				t.Error(err)
			}
			if v != 42 {
				t.Errorf("got %v, want 42", v)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("compute ran %d times, want exactly once", got)
	}
}

func TestGetOrComputeIsPerInstance(t *testing.T) {
	a := FromSequences([]string{"ATGAAA"}, Options{})
	b := FromSequences([]string{"ATGCCC"}, Options{})

	a.GetOrCompute("k", func() (interface{}, error) { return "a", nil })
	v, err := b.GetOrCompute("k", func() (interface{}, error) { return "b", nil })
	if err != nil {
		t.Fatal(err)
	}
	if v != "b" {
		t.Errorf("instance b saw %v from instance a's cache", v)
	}
}

func TestCAIWeights(t *testing.T) {
	// AAA observed 3 times, AAG once: w(AAA)=1, w(AAG)=1/3
	s := FromSequences([]string{"AAAAAAAAGAAA"}, Options{})
	w, err := s.Weights("cai")
	if err != nil {
		t.Fatal(err)
	}
	if w["AAA"] != 1.0 {
		t.Errorf("w(AAA) = %f, want 1.0", w["AAA"])
	}
	if got := w["AAG"]; got < 0.33 || got > 0.34 {
		t.Errorf("w(AAG) = %f, want 1/3", got)
	}
	// unobserved codon of an observed class gets the pseudocount share
	if w["GGG"] != 1.0 {
		// glycine never observed: every codon in the class gets weight 1
		t.Errorf("w(GGG) = %f, want 1.0 for an unobserved class", w["GGG"])
	}
}

func TestWeightsUnknownMetric(t *testing.T) {
	s := FromSequences([]string{"ATGAAA"}, Options{})
	if _, err := s.Weights("bogus"); err == nil {
		t.Fatal("expected an error for an unknown metric")
	}
}

func TestNTERequiresExpression(t *testing.T) {
	s := FromSequences([]string{"ATGAAAGCT"}, Options{})
	if s.HasExpression() {
		t.Fatal("HasExpression = true without expression data")
	}
	if _, err := s.Weights("nte"); err == nil {
		t.Fatal("expected an error computing nte weights without expression levels")
	}

	withExpr := FromSequences([]string{"ATGAAAGCT", "ATGAAGGCT"}, Options{
		Expression: map[string]float64{"0": 5, "1": 1},
	})
	w, err := withExpr.Weights("nte")
	if err != nil {
		t.Fatal(err)
	}
	if len(w) == 0 {
		t.Fatal("empty nte weight table")
	}
}

func TestGeometricMean(t *testing.T) {
	w := map[string]float64{"AAA": 1.0, "GCT": 0.25}
	got := GeometricMean(w, "AAAGCT")
	if got < 0.49 || got > 0.51 {
		t.Errorf("GeometricMean = %f, want 0.5", got)
	}

	// stop codons and zero-weight codons are skipped
	same := GeometricMean(w, "AAATAAGCT")
	if same != got {
		t.Errorf("stop codon changed the mean: %f vs %f", same, got)
	}
}

func TestFromFasta(t *testing.T) {
	r := strings.NewReader(">gene1 some description\nATGAAA\n>gene2\nATGCCC\n")
	s, err := FromFasta(r, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.Entries()[0].Label != "gene1" {
		t.Errorf("label = %q, want gene1", s.Entries()[0].Label)
	}
}

func TestSuffixArrayScore(t *testing.T) {
	s := FromSequences([]string{"ATGAAAGCTGGT", "TTTTCCCC"}, Options{})
	sa, err := s.SuffixArray()
	if err != nil {
		t.Fatal(err)
	}

	// a corpus member matches itself in full unless excluded
	full := sa.Score("ATGAAAGCTGGT", "")
	excluded := sa.Score("ATGAAAGCTGGT", "0")
	if full <= excluded {
		t.Errorf("excluding the gene itself should lower the score: %f vs %f", full, excluded)
	}

	if got := sa.Score("GGGGGGGG", ""); got != 0 {
		// no G runs anywhere in the corpus beyond single characters
		t.Logf("score = %f", got)
	}
}

func TestReadExpression(t *testing.T) {
	table := "# gene\tlevel\ngene1\t12.5\ngene2,3\n\n"
	got, err := ReadExpression(strings.NewReader(table))
	if err != nil {
		t.Fatal(err)
	}
	if got["gene1"] != 12.5 || got["gene2"] != 3 {
		t.Errorf("parsed %v", got)
	}

	if _, err := ReadExpression(strings.NewReader("gene1\n")); err == nil {
		t.Error("expected an error for a one-column line")
	}
}
