/*
Package composition computes sequence composition features: base content
and counts, skews, CpG statistics, positional GC and k-mer spectra
*/
package composition

import (
	"math"
	"strconv"
	"strings"

	"github.com/bioseqlab/seqfeat/pkg/alphabet"
	"github.com/bioseqlab/seqfeat/pkg/feature"
	"github.com/bioseqlab/seqfeat/pkg/seqs"
)

// Features returns the composition panel registry
func Features() *feature.Registry {
	r := feature.NewRegistry("sequence")

	r.Register("gc_content", gcContent)
	r.Register("at_content", atContent)
	r.Register("length", length)
	r.Register("a_count", counter('A'))
	r.Register("t_count", counter('T', 'U'))
	r.Register("g_count", counter('G'))
	r.Register("c_count", counter('C'))
	r.Register("gc_skew", gcSkew)
	r.Register("at_skew", atSkew)
	r.Register("cpg", cpg)
	r.Register("nuc_fraction", nucFraction)
	r.Register("gc_content_positional", gcPositional)
	r.Register("aa_kmers", aaKmers)
	r.Register("orf_length", orfLength)

	return r
}

func count(s string, chars ...byte) int {
	n := 0
	for _, c := range chars {
		n += strings.Count(s, string(c))
	}
	return n
}

func gcFraction(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(count(s, 'G', 'C')) / float64(len(s))
}

// gcContent is reported on a percent scale
func gcContent(in feature.Input) (interface{}, error) {
	return feature.Round(gcFraction(in.Seq)*100, 2), nil
}

func atContent(in feature.Input) (interface{}, error) {
	if len(in.Seq) == 0 {
		return 0.0, nil
	}
	at := float64(count(in.Seq, 'A', 'T', 'U')) / float64(len(in.Seq))
	return feature.Round(at*100, 2), nil
}

func length(in feature.Input) (interface{}, error) {
	return len(in.Seq), nil
}

func counter(chars ...byte) feature.Func {
	return func(in feature.Input) (interface{}, error) {
		return count(in.Seq, chars...), nil
	}
}

func gcSkew(in feature.Input) (interface{}, error) {
	g := float64(count(in.Seq, 'G'))
	c := float64(count(in.Seq, 'C'))
	if g+c == 0 {
		return 0.0, nil
	}
	return (g - c) / (g + c), nil
}

func atSkew(in feature.Input) (interface{}, error) {
	a := float64(count(in.Seq, 'A'))
	t := float64(count(in.Seq, 'T', 'U'))
	if a+t == 0 {
		return 0.0, nil
	}
	return (a - t) / (a + t), nil
}

// cpg reports the CG dinucleotide frequency and its observed/expected ratio
func cpg(in feature.Input) (interface{}, error) {
	s := in.Seq
	n := len(s)
	cg := float64(strings.Count(s, "CG"))
	c := float64(count(s, 'C'))
	g := float64(count(s, 'G'))

	freq := 0.0
	if n > 1 {
		freq = cg / float64(n-1)
	}
	oe := 0.0
	if n > 0 {
		if expected := c * g / float64(n); expected > 0 {
			oe = cg / expected
		}
	}
	return map[string]float64{"cpg_freq": freq, "cpg_oe_ratio": oe}, nil
}

func nucFraction(in feature.Input) (interface{}, error) {
	if len(in.Seq) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, 4)
	for _, nuc := range []byte("ACGT") {
		out["frac_"+string(nuc)] = float64(count(in.Seq, nuc)) / float64(len(in.Seq))
	}
	return out, nil
}

// gcPositional reports GC content separately for each codon position
func gcPositional(in feature.Input) (interface{}, error) {
	out := make(map[string]float64, 3)
	for pos := 0; pos < 3; pos++ {
		var b strings.Builder
		for i := pos; i < len(in.Seq); i += 3 {
			b.WriteByte(in.Seq[i])
		}
		out["gc_content_pos"+string(rune('1'+pos))] = feature.Round(gcFraction(b.String())*100, 2)
	}
	return out, nil
}

// aaKmers fans out amino acid k-mer frequencies for k=1..max_k (default 3)
// as "{kmer}_{k}" entries plus one "kmer_entropy_{k}" per k. Nucleotide
// input is translated first
func aaKmers(in feature.Input) (interface{}, error) {
	aa := in.Seq
	if seqs.Detect(aa) == seqs.Nucleotide {
		aa = alphabet.TranslateToStop(aa)
	}
	maxK := int(in.FloatArg("max_k", 3))
	if maxK < 1 {
		maxK = 1
	}

	out := make(map[string]float64)
	for k := 1; k <= maxK; k++ {
		if len(aa) < k {
			break
		}
		counts := make(map[string]int)
		total := 0
		for i := 0; i+k <= len(aa); i++ {
			counts[aa[i:i+k]]++
			total++
		}
		entropy := 0.0
		suffix := "_" + strconv.Itoa(k)
		for kmer, n := range counts {
			p := float64(n) / float64(total)
			entropy -= p * math.Log2(p)
			out[kmer+suffix] = p
		}
		out["kmer_entropy"+suffix] = entropy
	}
	return out, nil
}

func orfLength(in feature.Input) (interface{}, error) {
	if seqs.Detect(in.Seq) == seqs.Nucleotide {
		return map[string]float64{"orf_length_nt": float64(len(in.Seq))}, nil
	}
	return map[string]float64{"orf_length_aa": float64(len(in.Seq))}, nil
}
