/*
Package disorder computes intrinsic disorder features over amino acid
sequences from a per-residue disorder propensity scale. Residues rank
from order promoting (W, lowest) to disorder promoting (P, highest)
*/
package disorder

import (
	"errors"

	"github.com/bioseqlab/seqfeat/pkg/feature"
)

// TOP-IDP style propensities, rescaled to [0, 1]
var propensity = map[byte]float64{
	'W': 0.004, 'F': 0.113, 'Y': 0.180, 'I': 0.090, 'M': 0.291,
	'L': 0.195, 'V': 0.200, 'N': 0.325, 'C': 0.150, 'T': 0.401,
	'A': 0.450, 'G': 0.437, 'R': 0.394, 'D': 0.407, 'H': 0.259,
	'Q': 0.479, 'K': 0.588, 'S': 0.508, 'E': 0.781, 'P': 1.000,
}

// residues with propensity above this count as disordered
const disorderCutoff = 0.5

// Features returns the disorder panel registry
func Features() *feature.Registry {
	r := feature.NewRegistry("disorder")

	r.Register("disorder_mean", mean)
	r.Register("disorder_fraction", fraction)
	r.Register("disorder_longest_run", longestRun)

	return r
}

func scores(seq string) ([]float64, error) {
	out := make([]float64, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		if seq[i] == '*' {
			continue
		}
		p, ok := propensity[seq[i]]
		if !ok {
			return nil, errors.New("unknown residue " + string(seq[i]))
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("empty sequence")
	}
	return out, nil
}

func mean(in feature.Input) (interface{}, error) {
	s, err := scores(in.Seq)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, p := range s {
		sum += p
	}
	return sum / float64(len(s)), nil
}

func fraction(in feature.Input) (interface{}, error) {
	s, err := scores(in.Seq)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, p := range s {
		if p > disorderCutoff {
			n++
		}
	}
	return float64(n) / float64(len(s)), nil
}

// longestRun is the length of the longest stretch of consecutive
// disorder promoting residues
func longestRun(in feature.Input) (interface{}, error) {
	s, err := scores(in.Seq)
	if err != nil {
		return nil, err
	}
	longest, run := 0, 0
	for _, p := range s {
		if p > disorderCutoff {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest, nil
}
