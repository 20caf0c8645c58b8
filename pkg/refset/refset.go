/*
Package refset holds a reference corpus of coding sequences and lazily
computes derived statistics from it: codon weight tables for the
reference-dependent codon usage metrics, and a suffix array for
longest-substring scoring. Derived values are memoized for the lifetime of
the Set, so many single-sequence metric calls share one computation
*/
package refset

import (
	"errors"
	"fmt"
	"io"
	"math"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/bioseqlab/seqfeat/pkg/alphabet"
	"github.com/bioseqlab/seqfeat/pkg/fasta"
	"github.com/bioseqlab/seqfeat/pkg/genbank"
)

// Entry is one labelled reference sequence
type Entry struct {
	Label string
	Seq   string
}

// Options carries the optional side tables some weight generators need
type Options struct {
	// TRNACopyNumber maps codon to tRNA gene copy number, for tAI weights.
	// When absent, tAI weights fall back to corpus codon frequencies
	TRNACopyNumber map[string]float64
	// Expression maps reference gene label to an expression level, for nTE
	Expression map[string]float64
	// MaxSuffix caps suffix length in the suffix array (default 200)
	MaxSuffix int
}

// Set is a reference sequence corpus plus a cache of values derived from it.
// The cache never evicts and is never invalidated: if the underlying corpus
// changes, build a new Set
type Set struct {
	entries []Entry
	opts    Options
	memo    *cache.Cache
	group   singleflight.Group
}

// New builds a Set over the given corpus
func New(entries []Entry, opts Options) *Set {
	if opts.MaxSuffix <= 0 {
		opts.MaxSuffix = 200
	}
	return &Set{
		entries: entries,
		opts:    opts,
		memo:    cache.New(cache.NoExpiration, 0),
	}
}

// FromSequences builds a Set from bare sequences, labelling them by position
func FromSequences(seqs []string, opts Options) *Set {
	entries := make([]Entry, len(seqs))
	for i, s := range seqs {
		entries[i] = Entry{Label: fmt.Sprintf("%d", i), Seq: s}
	}
	return New(entries, opts)
}

// FromFasta builds a Set from fasta records
func FromFasta(r io.Reader, opts Options) (*Set, error) {
	records, err := fasta.Read(r)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = Entry{Label: rec.ID, Seq: rec.Seq}
	}
	return New(entries, opts), nil
}

// FromGenBank builds a Set from the CDS features of a genbank record
func FromGenBank(r io.Reader, opts Options) (*Set, error) {
	cds, err := genbank.ReadCDS(r)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(cds))
	for i, c := range cds {
		entries[i] = Entry{Label: c.Label, Seq: c.Seq}
	}
	return New(entries, opts), nil
}

func (s *Set) Entries() []Entry { return s.entries }

func (s *Set) Len() int { return len(s.entries) }

func (s *Set) HasExpression() bool { return len(s.opts.Expression) > 0 }

// GetOrCompute returns the cached value for key, computing and storing it on
// first use. Concurrent first-time requests for the same key compute once;
// the others wait and reuse the result. Failed computations are not cached
func (s *Set) GetOrCompute(key string, fn func() (interface{}, error)) (interface{}, error) {
	if v, ok := s.memo.Get(key); ok {
		return v, nil
	}
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		if v, ok := s.memo.Get(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		s.memo.Set(key, v, cache.NoExpiration)
		return v, nil
	})
	return v, err
}

// Weights returns the codon weight table for a metric key, one of "cai",
// "tai", "nte" or "rca", computing and caching it on first use
func (s *Set) Weights(metric string) (map[string]float64, error) {
	var fn func() (interface{}, error)
	switch metric {
	case "cai":
		fn = func() (interface{}, error) { return s.caiWeights() }
	case "tai":
		fn = func() (interface{}, error) { return s.taiWeights() }
	case "nte":
		fn = func() (interface{}, error) { return s.nteWeights() }
	case "rca":
		fn = func() (interface{}, error) { return s.rcaWeights() }
	default:
		return nil, fmt.Errorf("metric %q not supported for weight generation", metric)
	}
	v, err := s.GetOrCompute(metric, fn)
	if err != nil {
		return nil, err
	}
	return v.(map[string]float64), nil
}

// codonCounts counts frame-0 codons over the whole corpus
func (s *Set) codonCounts() map[string]float64 {
	counts := make(map[string]float64)
	for _, e := range s.entries {
		for _, c := range alphabet.Codons(e.Seq) {
			counts[c]++
		}
	}
	return counts
}

// caiWeights computes relative adaptiveness per codon: observed count over
// the count of the most used synonymous codon for the same amino acid.
// Unobserved codons get a 0.5 pseudocount
func (s *Set) caiWeights() (map[string]float64, error) {
	if len(s.entries) == 0 {
		return nil, errors.New("reference set is empty")
	}
	counts := s.codonCounts()
	w := make(map[string]float64)
	for aa, codons := range alphabet.SynonymousCodons() {
		if aa == "*" {
			continue
		}
		max := 0.0
		for _, c := range codons {
			if counts[c] > max {
				max = counts[c]
			}
		}
		for _, c := range codons {
			if max == 0 {
				w[c] = 1.0
				continue
			}
			n := counts[c]
			if n == 0 {
				n = 0.5
			}
			w[c] = n / max
		}
	}
	return w, nil
}

// taiWeights computes tRNA adaptation weights from the tRNA gene copy number
// table when one was supplied, otherwise from corpus codon frequencies as a
// proxy
func (s *Set) taiWeights() (map[string]float64, error) {
	source := s.opts.TRNACopyNumber
	if len(source) == 0 {
		if len(s.entries) == 0 {
			return nil, errors.New("reference set is empty")
		}
		source = s.codonCounts()
	}
	max := 0.0
	for c, v := range source {
		if alphabet.IsStop(c) {
			continue
		}
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return nil, errors.New("no usable tRNA weights")
	}
	w := make(map[string]float64)
	for c, v := range source {
		if alphabet.IsStop(c) {
			continue
		}
		w[c] = v / max
	}
	return w, nil
}

// nteWeights combines expression-weighted codon counts with the tAI weight
// set, which it obtains through the cache, so the two metric keys form a
// small dependency graph of derived values
func (s *Set) nteWeights() (map[string]float64, error) {
	if !s.HasExpression() {
		return nil, errors.New("nte weights require per-gene expression levels")
	}
	tai, err := s.Weights("tai")
	if err != nil {
		return nil, err
	}
	w := make(map[string]float64)
	for _, e := range s.entries {
		lvl, ok := s.opts.Expression[e.Label]
		if !ok {
			continue
		}
		for _, c := range alphabet.Codons(e.Seq) {
			if alphabet.IsStop(c) {
				continue
			}
			w[c] += lvl
		}
	}
	if len(w) == 0 {
		return nil, errors.New("no codon weights calculated for nte")
	}
	m := 0.0
	for _, v := range w {
		if v > m {
			m = v
		}
	}
	for c := range w {
		t, ok := tai[c]
		if !ok {
			t = 1.0
		}
		w[c] = t / (w[c] / m)
	}
	m = 0.0
	for _, v := range w {
		if v > m {
			m = v
		}
	}
	for c := range w {
		w[c] = w[c] / m
	}
	return w, nil
}

// rcaWeights computes relative codon adaptation weights: observed codon
// frequency over the frequency expected from the positional nucleotide
// distributions of the corpus
func (s *Set) rcaWeights() (map[string]float64, error) {
	if len(s.entries) == 0 {
		return nil, errors.New("reference set is empty")
	}
	counts := s.codonCounts()
	total := 0.0
	for _, v := range counts {
		total += v
	}
	if total == 0 {
		return nil, errors.New("reference set contains no codons")
	}

	// per-position nucleotide distributions, with a 0.5 pseudocount
	var dist [3]map[byte]float64
	for p := 0; p < 3; p++ {
		dist[p] = map[byte]float64{'A': 0.5, 'C': 0.5, 'G': 0.5, 'T': 0.5}
	}
	for c, n := range counts {
		for p := 0; p < 3; p++ {
			dist[p][c[p]] += n
		}
	}
	for p := 0; p < 3; p++ {
		sum := 0.0
		for _, v := range dist[p] {
			sum += v
		}
		for nt := range dist[p] {
			dist[p][nt] /= sum
		}
	}

	w := make(map[string]float64)
	for aa, codons := range alphabet.SynonymousCodons() {
		if aa == "*" {
			continue
		}
		for _, c := range codons {
			if counts[c] == 0 {
				w[c] = 0.5
				continue
			}
			expected := dist[0][c[0]] * dist[1][c[1]] * dist[2][c[2]]
			w[c] = (counts[c] / total) / expected
		}
	}
	return w, nil
}

// GeometricMean of the weights of a sequence's codons, skipping stop codons
// and codons without a positive weight. Returns NaN for an empty selection
func GeometricMean(weights map[string]float64, seq string) float64 {
	sum := 0.0
	n := 0
	for _, c := range alphabet.Codons(seq) {
		if alphabet.IsStop(c) {
			continue
		}
		w, ok := weights[c]
		if !ok || w <= 0 {
			continue
		}
		sum += math.Log(w)
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return math.Exp(sum / float64(n))
}
