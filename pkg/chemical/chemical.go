/*
Package chemical computes physicochemical properties of amino acid
sequences: mass, charge, hydropathy and related protein-level descriptors.

The formulas follow the standard published scales (Kyte-Doolittle
hydropathy, Vihinen flexibility, Guruprasad instability weights); the
contract here is the shape of the outputs, not numeric parity with any
particular implementation of the same scales
*/
package chemical

import (
	"errors"
	"math"
	"strings"

	"github.com/bioseqlab/seqfeat/pkg/feature"
)

// Features returns the chemical panel registry
func Features() *feature.Registry {
	r := feature.NewRegistry("chemical")

	r.Register("molecular_weight", molecularWeight)
	r.Register("isoelectric_point", isoelectricPoint)
	r.Register("gravy", gravy)
	r.Register("aromaticity_index", aromaticity)
	r.Register("net_charge_per_residue", netChargePerResidue)
	r.Register("aliphatic_index", aliphaticIndex)
	r.Register("instability_index", instabilityIndex)
	r.Register("average_flexibility", averageFlexibility)
	r.Register("secondary_structure_fraction", secondaryStructureFraction)
	r.Register("molar_extinction", molarExtinction)

	return r
}

// strip removes the stop marker, which carries no chemistry
func strip(seq string) string {
	return strings.ReplaceAll(seq, "*", "")
}

func molecularWeight(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	mass := waterMass
	for i := 0; i < len(seq); i++ {
		m, ok := residueMass[seq[i]]
		if !ok {
			return nil, errors.New("unknown residue " + string(seq[i]))
		}
		mass += m
	}
	return mass, nil
}

// chargeAt computes the net charge of the protein at a given pH by the
// Henderson-Hasselbalch equation over the ionizable groups
func chargeAt(seq string, pH float64) float64 {
	positive := math.Pow(10, pKaNTerm) / (math.Pow(10, pKaNTerm) + math.Pow(10, pH))
	negative := math.Pow(10, pH) / (math.Pow(10, pKaCTerm) + math.Pow(10, pH))
	for i := 0; i < len(seq); i++ {
		if pKa, ok := pKaPositive[seq[i]]; ok {
			positive += math.Pow(10, pKa) / (math.Pow(10, pKa) + math.Pow(10, pH))
		}
		if pKa, ok := pKaNegative[seq[i]]; ok {
			negative += math.Pow(10, pH) / (math.Pow(10, pKa) + math.Pow(10, pH))
		}
	}
	return positive - negative
}

// isoelectricPoint finds the pH at which net charge is zero, by bisection
func isoelectricPoint(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	lo, hi := 0.0, 14.0
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if chargeAt(seq, mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

func gravy(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	sum := 0.0
	for i := 0; i < len(seq); i++ {
		sum += hydropathy[seq[i]]
	}
	return sum / float64(len(seq)), nil
}

func aromaticity(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	n := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'F', 'W', 'Y':
			n++
		}
	}
	return float64(n) / float64(len(seq)), nil
}

func netChargePerResidue(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	pH := in.FloatArg("ph", 7.0)
	return chargeAt(seq, pH) / float64(len(seq)), nil
}

// aliphaticIndex is the relative volume occupied by aliphatic side chains:
// X(A) + a*X(V) + b*(X(I)+X(L)) over mole percents, a=2.9 b=3.9
func aliphaticIndex(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	molePercent := func(c byte) float64 {
		return float64(strings.Count(seq, string(c))) / float64(len(seq)) * 100
	}
	return molePercent('A') + 2.9*molePercent('V') + 3.9*(molePercent('I')+molePercent('L')), nil
}

// instabilityIndex sums dipeptide weights along the chain, scaled by 10/L
func instabilityIndex(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) < 2 {
		return nil, errors.New("sequence too short for instability index")
	}
	sum := 0.0
	for i := 0; i+2 <= len(seq); i++ {
		if w, ok := instabilityWeight[seq[i:i+2]]; ok {
			sum += w
		} else {
			sum += 1.0
		}
	}
	return 10.0 / float64(len(seq)) * sum, nil
}

func averageFlexibility(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	sum := 0.0
	for i := 0; i < len(seq); i++ {
		sum += flexibility[seq[i]]
	}
	return sum / float64(len(seq)), nil
}

// secondaryStructureFraction reports the fraction of residues commonly
// found in helices, turns and sheets
func secondaryStructureFraction(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	if len(seq) == 0 {
		return nil, errors.New("empty amino acid sequence")
	}
	frac := func(set string) float64 {
		n := 0
		for i := 0; i < len(seq); i++ {
			if strings.IndexByte(set, seq[i]) >= 0 {
				n++
			}
		}
		return float64(n) / float64(len(seq))
	}
	return map[string]float64{
		"helix_frac": frac("VIYFWL"),
		"turn_frac":  frac("NPGS"),
		"sheet_frac": frac("EMAL"),
	}, nil
}

// molarExtinction at 280nm, for the reduced protein and assuming all
// cysteines form cystines
func molarExtinction(in feature.Input) (interface{}, error) {
	seq := strip(in.Seq)
	w := strings.Count(seq, "W")
	y := strings.Count(seq, "Y")
	c := strings.Count(seq, "C")
	reduced := float64(5500*w + 1490*y)
	return map[string]float64{
		"molar_extinction_reduced": reduced,
		"molar_extinction_cystine": reduced + float64((c/2)*125),
	}, nil
}
