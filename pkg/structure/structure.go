/*
Package structure computes secondary structure propensity features over
amino acid sequences using Chou-Fasman conformational parameters
*/
package structure

import (
	"errors"

	"github.com/bioseqlab/seqfeat/pkg/feature"
)

// Chou-Fasman conformational parameters per residue
var (
	helix = map[byte]float64{
		'E': 1.51, 'M': 1.45, 'A': 1.42, 'L': 1.21, 'K': 1.16,
		'F': 1.13, 'Q': 1.11, 'W': 1.08, 'I': 1.08, 'V': 1.06,
		'D': 1.01, 'H': 1.00, 'R': 0.98, 'T': 0.83, 'S': 0.77,
		'C': 0.70, 'Y': 0.69, 'N': 0.67, 'P': 0.57, 'G': 0.57,
	}
	sheet = map[byte]float64{
		'V': 1.70, 'I': 1.60, 'Y': 1.47, 'C': 1.19, 'W': 1.37,
		'F': 1.38, 'L': 1.30, 'T': 1.19, 'M': 1.05, 'Q': 1.10,
		'R': 0.93, 'N': 0.89, 'H': 0.87, 'A': 0.83, 'S': 0.75,
		'G': 0.75, 'K': 0.74, 'P': 0.55, 'D': 0.54, 'E': 0.37,
	}
	turn = map[byte]float64{
		'N': 1.56, 'G': 1.56, 'P': 1.52, 'D': 1.46, 'S': 1.43,
		'C': 1.19, 'Y': 1.14, 'K': 1.01, 'Q': 0.98, 'T': 0.96,
		'W': 0.96, 'R': 0.95, 'H': 0.95, 'E': 0.74, 'A': 0.66,
		'M': 0.60, 'F': 0.60, 'L': 0.59, 'V': 0.50, 'I': 0.47,
	}
)

// Features returns the structure panel registry
func Features() *feature.Registry {
	r := feature.NewRegistry("structure")

	r.Register("helix_propensity", meanOf(helix))
	r.Register("sheet_propensity", meanOf(sheet))
	r.Register("turn_propensity", meanOf(turn))

	return r
}

func meanOf(scale map[byte]float64) feature.Func {
	return func(in feature.Input) (interface{}, error) {
		sum := 0.0
		n := 0
		for i := 0; i < len(in.Seq); i++ {
			if in.Seq[i] == '*' {
				continue
			}
			p, ok := scale[in.Seq[i]]
			if !ok {
				return nil, errors.New("unknown residue " + string(in.Seq[i]))
			}
			sum += p
			n++
		}
		if n == 0 {
			return nil, errors.New("empty sequence")
		}
		return sum / float64(n), nil
	}
}
