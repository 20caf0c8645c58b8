package chemical

// Average residue masses (monomer minus water), in Daltons
var residueMass = map[byte]float64{
	'A': 71.0788, 'R': 156.1875, 'N': 114.1038, 'D': 115.0886, 'C': 103.1388,
	'E': 129.1155, 'Q': 128.1307, 'G': 57.0519, 'H': 137.1411, 'I': 113.1594,
	'L': 113.1594, 'K': 128.1741, 'M': 131.1926, 'F': 147.1766, 'P': 97.1167,
	'S': 87.0782, 'T': 101.1051, 'W': 186.2132, 'Y': 163.1760, 'V': 99.1326,
}

const waterMass = 18.0153

// Kyte-Doolittle hydropathy
var hydropathy = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'E': -3.5, 'Q': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// Side chain pKa values for the ionizable residues
var pKaPositive = map[byte]float64{'K': 10.54, 'R': 12.48, 'H': 6.04}
var pKaNegative = map[byte]float64{'D': 3.90, 'E': 4.07, 'C': 8.18, 'Y': 10.46}

const (
	pKaNTerm = 9.69
	pKaCTerm = 2.34
)

// Normalized flexibility parameters (Vihinen et al.), mean value per residue
var flexibility = map[byte]float64{
	'A': 0.984, 'C': 0.906, 'E': 1.094, 'D': 1.068, 'G': 1.031,
	'F': 0.915, 'I': 0.927, 'H': 0.950, 'K': 1.102, 'M': 0.952,
	'L': 0.935, 'N': 1.048, 'Q': 1.037, 'P': 1.049, 'S': 1.046,
	'R': 1.008, 'T': 0.997, 'W': 0.904, 'V': 0.931, 'Y': 0.929,
}

// Dipeptide instability weights (Guruprasad et al.). Pairs not listed carry
// a weight of 1. This is a condensed table of the strongly (de)stabilizing
// pairs rather than the full 400-entry matrix
var instabilityWeight = map[string]float64{
	"WW": 1.0, "WC": 1.0, "WY": 1.0,
	"NG": -14.03, "NP": -1.88, "ND": 1.0,
	"GW": 13.34, "GP": 1.0,
	"PP": 20.26, "PG": 20.26, "PR": -6.54, "PQ": 20.26,
	"CC": 1.0, "CP": 20.26,
	"DP": 1.0, "DG": 1.0, "DS": 20.26,
	"EP": 20.26, "EE": 33.60,
	"FP": 20.26, "FY": 33.60,
	"HP": -1.88, "HD": 1.0,
	"IP": -1.88, "II": 1.0,
	"KP": -6.54, "KE": 1.0,
	"LP": 20.26, "LL": 1.0,
	"MP": 20.26, "MM": -1.88,
	"QP": 20.26, "QQ": 20.26,
	"RP": 20.26, "RR": 58.28,
	"SP": 44.94, "SS": 20.26,
	"TP": 20.26, "TD": 1.0,
	"VP": 20.26, "VY": -6.54,
	"YP": 13.34, "YY": 13.34,
	"AP": 20.26, "AA": 1.0,
}
