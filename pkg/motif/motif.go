/*
Package motif scans nucleotide sequences against a built-in set of
position weight matrices for core promoter elements. Matches are
positions whose log-odds score clears a fraction of the matrix's
maximum achievable score, settable per call via the threshold_frac
argument
*/
package motif

import (
	"math"

	"github.com/bioseqlab/seqfeat/pkg/feature"
)

// background assumes uniform base composition
const background = 0.25

// pseudo-probability for a base never observed at a matrix position
const floor = 0.01

// PWM is a position weight matrix over A, C, G, T with one probability
// column per motif position
type PWM struct {
	Name string
	Cols []map[byte]float64
}

// core promoter element matrices, probabilities per position
var matrices = []PWM{
	{
		Name: "tata_box",
		Cols: []map[byte]float64{
			{'T': 0.90, 'A': 0.04, 'C': 0.03, 'G': 0.03},
			{'A': 0.90, 'T': 0.06, 'C': 0.02, 'G': 0.02},
			{'T': 0.85, 'A': 0.11, 'C': 0.02, 'G': 0.02},
			{'A': 0.92, 'T': 0.04, 'C': 0.02, 'G': 0.02},
			{'A': 0.55, 'T': 0.35, 'C': 0.05, 'G': 0.05},
			{'A': 0.85, 'T': 0.09, 'C': 0.03, 'G': 0.03},
			{'A': 0.50, 'T': 0.20, 'G': 0.25, 'C': 0.05},
		},
	},
	{
		Name: "caat_box",
		Cols: []map[byte]float64{
			{'G': 0.60, 'A': 0.20, 'C': 0.10, 'T': 0.10},
			{'G': 0.80, 'A': 0.10, 'C': 0.05, 'T': 0.05},
			{'C': 0.85, 'T': 0.05, 'A': 0.05, 'G': 0.05},
			{'C': 0.90, 'A': 0.04, 'G': 0.03, 'T': 0.03},
			{'A': 0.90, 'C': 0.04, 'G': 0.03, 'T': 0.03},
			{'A': 0.85, 'T': 0.09, 'C': 0.03, 'G': 0.03},
			{'T': 0.90, 'A': 0.04, 'C': 0.03, 'G': 0.03},
			{'C': 0.70, 'T': 0.15, 'A': 0.10, 'G': 0.05},
		},
	},
	{
		Name: "gc_box",
		Cols: []map[byte]float64{
			{'G': 0.90, 'A': 0.04, 'C': 0.03, 'T': 0.03},
			{'G': 0.90, 'A': 0.04, 'C': 0.03, 'T': 0.03},
			{'G': 0.80, 'C': 0.10, 'A': 0.05, 'T': 0.05},
			{'C': 0.85, 'G': 0.05, 'A': 0.05, 'T': 0.05},
			{'G': 0.90, 'A': 0.04, 'C': 0.03, 'T': 0.03},
			{'G': 0.85, 'C': 0.05, 'A': 0.05, 'T': 0.05},
			{'G': 0.50, 'C': 0.30, 'A': 0.10, 'T': 0.10},
		},
	},
}

// two matches within this many bases count as clustered
const clusterSpan = 50

// Features returns the motif panel registry
func Features() *feature.Registry {
	r := feature.NewRegistry("motif")

	r.Register("motif_count", counts)
	r.Register("motif_density", density)
	r.Register("motif_max_score", maxScore)
	r.Register("motif_mean_score", meanScore)
	r.Register("motif_clustered", clustered)

	return r
}

// logOdds scores the window starting at pos against the matrix; the
// second return is false when the window runs past the sequence or
// contains a base outside ACGT
func (m PWM) logOdds(seq string, pos int) (float64, bool) {
	if pos+len(m.Cols) > len(seq) {
		return 0, false
	}
	score := 0.0
	for i, col := range m.Cols {
		base := seq[pos+i]
		if base == 'U' {
			base = 'T'
		}
		p, ok := col[base]
		if !ok {
			return 0, false
		}
		if p <= 0 {
			p = floor
		}
		score += math.Log2(p / background)
	}
	return score, true
}

// maxAchievable is the log-odds score of the matrix's consensus sequence
func (m PWM) maxAchievable() float64 {
	score := 0.0
	for _, col := range m.Cols {
		best := floor
		for _, p := range col {
			if p > best {
				best = p
			}
		}
		score += math.Log2(best / background)
	}
	return score
}

type match struct {
	pos   int
	score float64
}

func scan(seq string, thresholdFrac float64) []match {
	var out []match
	for _, m := range matrices {
		cutoff := m.maxAchievable() * thresholdFrac
		for pos := 0; pos+len(m.Cols) <= len(seq); pos++ {
			score, ok := m.logOdds(seq, pos)
			if ok && score >= cutoff {
				out = append(out, match{pos: pos, score: score})
			}
		}
	}
	return out
}

func matchesFor(in feature.Input) []match {
	return scan(in.Seq, in.FloatArg("threshold_frac", 0.8))
}

func counts(in feature.Input) (interface{}, error) {
	return len(matchesFor(in)), nil
}

// density is matches per kilobase
func density(in feature.Input) (interface{}, error) {
	if len(in.Seq) == 0 {
		return 0.0, nil
	}
	return float64(len(matchesFor(in))) * 1000 / float64(len(in.Seq)), nil
}

func maxScore(in feature.Input) (interface{}, error) {
	best := 0.0
	for _, m := range matchesFor(in) {
		if m.score > best {
			best = m.score
		}
	}
	return best, nil
}

func meanScore(in feature.Input) (interface{}, error) {
	matches := matchesFor(in)
	if len(matches) == 0 {
		return 0.0, nil
	}
	sum := 0.0
	for _, m := range matches {
		sum += m.score
	}
	return sum / float64(len(matches)), nil
}

// clustered reports whether any two matches start within clusterSpan
// bases of each other
func clustered(in feature.Input) (interface{}, error) {
	matches := matchesFor(in)
	for i := range matches {
		for j := i + 1; j < len(matches); j++ {
			d := matches[i].pos - matches[j].pos
			if d < 0 {
				d = -d
			}
			if d > 0 && d <= clusterSpan {
				return true, nil
			}
		}
	}
	return false, nil
}
