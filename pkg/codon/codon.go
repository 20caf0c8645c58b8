/*
Package codon computes codon usage bias features over nucleotide coding
sequences. Metrics that are defined relative to a reference gene corpus
(CAI, FOP, tAI, nTE, ChimeraARS) read their weight tables through the
shared reference set and quietly opt out when no reference is attached;
the self-contained metrics (ENC, RSCU, RCBS, DCBS, CPB) always compute
*/
package codon

import (
	"errors"
	"math"

	"github.com/bioseqlab/seqfeat/pkg/alphabet"
	"github.com/bioseqlab/seqfeat/pkg/feature"
	"github.com/bioseqlab/seqfeat/pkg/refset"
)

// Features returns the codon usage panel registry
func Features() *feature.Registry {
	r := feature.NewRegistry("codonUsage")

	r.Register("enc", enc)
	r.RegisterReduced("rscu", rscu)
	r.Register("cai", weighted("cai"))
	r.Register("fop", fop)
	r.Register("tai", weighted("tai"))
	r.Register("nte", nte)
	r.Register("rca", weighted("rca"))
	r.Register("rcbs", rcbs)
	r.Register("dcbs", dcbs)
	r.Register("cpb", cpb)
	r.Register("chimera_ars", chimeraARS)

	return r
}

func senseCodons(seq string) ([]string, error) {
	codons := alphabet.Codons(seq)
	sense := make([]string, 0, len(codons))
	for _, c := range codons {
		if !alphabet.IsStop(c) {
			sense = append(sense, c)
		}
	}
	if len(sense) == 0 {
		return nil, errors.New("no sense codons in sequence")
	}
	return sense, nil
}

func codonCounts(codons []string) map[string]float64 {
	counts := make(map[string]float64)
	for _, c := range codons {
		counts[c]++
	}
	return counts
}

// enc is Wright's effective number of codons. F values are computed per
// amino acid from the homozygosity of its synonymous codon usage and
// averaged within each degeneracy class
func enc(in feature.Input) (interface{}, error) {
	codons, err := senseCodons(in.Seq)
	if err != nil {
		return nil, err
	}
	counts := codonCounts(codons)

	// per degeneracy class, collect F values of the amino acids in it
	classF := map[int][]float64{}
	for aa, syn := range alphabet.SynonymousCodons() {
		if aa == "*" || len(syn) < 2 {
			continue
		}
		n := 0.0
		for _, c := range syn {
			n += counts[c]
		}
		if n < 2 {
			continue
		}
		sumSq := 0.0
		for _, c := range syn {
			p := counts[c] / n
			sumSq += p * p
		}
		f := (n*sumSq - 1) / (n - 1)
		if f > 0 {
			classF[len(syn)] = append(classF[len(syn)], f)
		}
	}

	avg := func(k int) float64 {
		fs := classF[k]
		if len(fs) == 0 {
			return 0
		}
		s := 0.0
		for _, f := range fs {
			s += f
		}
		return s / float64(len(fs))
	}

	f2, f3, f4, f6 := avg(2), avg(3), avg(4), avg(6)
	if f3 == 0 && f2 > 0 && f4 > 0 {
		f3 = (f2 + f4) / 2
	}

	// fall back to the mean of observed classes for anything still missing
	observed := make([]float64, 0, 4)
	for _, f := range []float64{f2, f3, f4, f6} {
		if f > 0 {
			observed = append(observed, f)
		}
	}
	if len(observed) == 0 {
		return 61.0, nil
	}
	mf := 0.0
	for _, f := range observed {
		mf += f
	}
	mf /= float64(len(observed))
	fill := func(f float64) float64 {
		if f == 0 {
			return mf
		}
		return f
	}
	f2, f3, f4, f6 = fill(f2), fill(f3), fill(f4), fill(f6)

	nc := 2 + 9/f2 + 1/f3 + 5/f4 + 3/f6
	if nc > 61 {
		nc = 61
	}
	return nc, nil
}

// rscu returns the relative synonymous codon usage per codon; the registry
// reduces the vector to its mean before output
func rscu(in feature.Input) (interface{}, error) {
	codons, err := senseCodons(in.Seq)
	if err != nil {
		return nil, err
	}
	counts := codonCounts(codons)

	out := make(map[string]float64)
	for aa, syn := range alphabet.SynonymousCodons() {
		if aa == "*" {
			continue
		}
		n := 0.0
		for _, c := range syn {
			n += counts[c]
		}
		if n == 0 {
			continue
		}
		for _, c := range syn {
			out[c] = counts[c] * float64(len(syn)) / n
		}
	}
	return out, nil
}

// weighted builds the CAI-style features: the geometric mean of the
// reference weight table over the sequence's codons
func weighted(metric string) feature.Func {
	return func(in feature.Input) (interface{}, error) {
		if in.Ref == nil {
			return nil, nil
		}
		w, err := in.Ref.Weights(metric)
		if err != nil {
			return nil, err
		}
		score := refset.GeometricMean(w, in.Seq)
		if math.IsNaN(score) {
			return nil, errors.New(metric + ": no scorable codons")
		}
		return score, nil
	}
}

// fop is the fraction of codons that are the optimal (highest weight)
// codon for their amino acid, per the reference CAI weights
func fop(in feature.Input) (interface{}, error) {
	if in.Ref == nil {
		return nil, nil
	}
	w, err := in.Ref.Weights("cai")
	if err != nil {
		return nil, err
	}
	codons, err := senseCodons(in.Seq)
	if err != nil {
		return nil, err
	}
	optimal := 0
	for _, c := range codons {
		if w[c] > 0.99 {
			optimal++
		}
	}
	return float64(optimal) / float64(len(codons)), nil
}

// nte requires both a reference corpus and per-gene expression levels; it
// opts out of default computation when either is missing
func nte(in feature.Input) (interface{}, error) {
	if in.Ref == nil || !in.Ref.HasExpression() {
		return nil, nil
	}
	return weighted("nte")(in)
}

// positional base frequencies over the sequence's own codons
func positionalFreqs(codons []string) [3]map[byte]float64 {
	var dist [3]map[byte]float64
	for p := 0; p < 3; p++ {
		dist[p] = make(map[byte]float64)
	}
	for _, c := range codons {
		for p := 0; p < 3; p++ {
			dist[p][c[p]]++
		}
	}
	n := float64(len(codons))
	for p := 0; p < 3; p++ {
		for nt := range dist[p] {
			dist[p][nt] /= n
		}
	}
	return dist
}

// rcbs is the relative codon bias score: the geometric mean over codons of
// observed frequency against the product of the gene's own positional base
// frequencies, minus one
func rcbs(in feature.Input) (interface{}, error) {
	codons, err := senseCodons(in.Seq)
	if err != nil {
		return nil, err
	}
	counts := codonCounts(codons)
	dist := positionalFreqs(codons)
	n := float64(len(codons))

	logSum := 0.0
	for _, c := range codons {
		expected := dist[0][c[0]] * dist[1][c[1]] * dist[2][c[2]]
		if expected <= 0 {
			continue
		}
		logSum += math.Log((counts[c] / n) / expected)
	}
	return math.Exp(logSum/n) - 1, nil
}

// dcbs is the directional codon bias score: like rcbs, but each codon
// contributes its deviation in whichever direction it points
func dcbs(in feature.Input) (interface{}, error) {
	codons, err := senseCodons(in.Seq)
	if err != nil {
		return nil, err
	}
	counts := codonCounts(codons)
	dist := positionalFreqs(codons)
	n := float64(len(codons))

	sum := 0.0
	for _, c := range codons {
		expected := dist[0][c[0]] * dist[1][c[1]] * dist[2][c[2]]
		if expected <= 0 {
			sum += 1
			continue
		}
		d := (counts[c] / n) / expected
		if d < 1 && d > 0 {
			d = 1 / d
		}
		sum += d
	}
	return sum / n, nil
}

// cpb is the mean log ratio of observed to expected adjacent codon pair
// usage within the sequence
func cpb(in feature.Input) (interface{}, error) {
	codons, err := senseCodons(in.Seq)
	if err != nil {
		return nil, err
	}
	if len(codons) < 2 {
		return nil, errors.New("sequence too short for codon pair bias")
	}
	counts := codonCounts(codons)
	n := float64(len(codons))

	pairCounts := make(map[string]float64)
	nPairs := 0.0
	for i := 0; i+1 < len(codons); i++ {
		pairCounts[codons[i]+codons[i+1]]++
		nPairs++
	}

	sum := 0.0
	scored := 0.0
	for pair, obs := range pairCounts {
		a, b := pair[:3], pair[3:]
		expected := (counts[a] / n) * (counts[b] / n) * nPairs
		if expected <= 0 {
			continue
		}
		sum += math.Log(obs/expected) * obs
		scored += obs
	}
	if scored == 0 {
		return 0.0, nil
	}
	return sum / scored, nil
}

// chimeraARS scores the sequence against the reference suffix array: the
// mean length of the longest substring starting at each position that also
// occurs in the corpus. The gene_id argument excludes a reference gene from
// matching, so a corpus member can be scored against the rest
func chimeraARS(in feature.Input) (interface{}, error) {
	if in.Ref == nil {
		return nil, nil
	}
	sa, err := in.Ref.SuffixArray()
	if err != nil {
		return nil, err
	}
	return sa.Score(in.Seq, in.StringArg("gene_id", "")), nil
}
