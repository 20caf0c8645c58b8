// Package alphabet provides mappings between codons and
// amino acids
package alphabet

import (
	"errors"
	"strings"
)

// Nucleotides is the set of valid unambiguous nucleotide symbols
const Nucleotides = "ACGTU"

// AminoAcids is the set of the twenty canonical amino acid one-letter
// codes plus the stop marker
const AminoAcids = "ACDEFGHIKLMNPQRSTVWY*"

// Translate a nucleotide sequence to a protein sequence.
// Codons with ambiguous nucleotides are resolved if they can only possibly
// represent one amino acid
func Translate(nuc string) (string, error) {
	if len(nuc)%3 != 0 {
		return "", errors.New("nucleotide string not divisible by 3")
	}
	translation := ""
	aa := ""
	counter := 0
	CD := MakeCodonDict()
	for i := 0; i < len(nuc); i++ {
		aa = aa + string(nuc[i])
		counter++
		if counter == 3 {
			if t, ok := CD[aa]; ok {
				translation = translation + t
			} else {
				translation = translation + "X"
			}
			counter = 0
			aa = ""
		}
	}

	return translation, nil
}

// TranslateToStop translates a nucleotide sequence codon by codon and stops
// at the first stop codon, which is not included in the returned protein.
// A trailing partial codon is ignored. U is treated as T, so RNA is fine
func TranslateToStop(nuc string) string {
	s := strings.ReplaceAll(strings.ToUpper(nuc), "U", "T")
	CD := MakeCodonDict()
	translation := ""
	for i := 0; i+3 <= len(s); i += 3 {
		t, ok := CD[s[i:i+3]]
		if !ok {
			t = "X"
		}
		if t == "*" {
			break
		}
		translation = translation + t
	}
	return translation
}

// Codons returns the codons of a nucleotide sequence in frame 0, dropping
// any trailing partial codon. U is treated as T
func Codons(nuc string) []string {
	s := strings.ReplaceAll(strings.ToUpper(nuc), "U", "T")
	codons := make([]string, 0, len(s)/3)
	for i := 0; i+3 <= len(s); i += 3 {
		codons = append(codons, s[i:i+3])
	}
	return codons
}

// IsStop reports whether a codon is one of the three stop codons
func IsStop(codon string) bool {
	switch codon {
	case "TAA", "TAG", "TGA":
		return true
	}
	return false
}

// SynonymousCodons returns a map from amino acid (single letter code) to the
// unambiguous codons that encode it, with the stop codons under "*"
func SynonymousCodons() map[string][]string {
	CD := MakeCodonDict()
	syn := make(map[string][]string)
	for codon, aa := range CD {
		unambiguous := true
		for i := 0; i < 3; i++ {
			switch codon[i] {
			case 'A', 'C', 'G', 'T':
			default:
				unambiguous = false
			}
		}
		if unambiguous {
			syn[aa] = append(syn[aa], codon)
		}
	}
	return syn
}

// MakeCodonDict returns a map from codon (string) to amino acid code (string)
func MakeCodonDict() map[string]string {

	codonAA := make(map[string]string)

	codonAA["TTT"] = "F"
	codonAA["TTC"] = "F"
	codonAA["TTA"] = "L"
	codonAA["TTG"] = "L"
	codonAA["TCT"] = "S"
	codonAA["TCC"] = "S"
	codonAA["TCA"] = "S"
	codonAA["TCG"] = "S"
	codonAA["TAT"] = "Y"
	codonAA["TAC"] = "Y"
	codonAA["TAA"] = "*"
	codonAA["TAG"] = "*"
	codonAA["TGT"] = "C"
	codonAA["TGC"] = "C"
	codonAA["TGA"] = "*"
	codonAA["TGG"] = "W"

	codonAA["CTT"] = "L"
	codonAA["CTC"] = "L"
	codonAA["CTA"] = "L"
	codonAA["CTG"] = "L"
	codonAA["CCT"] = "P"
	codonAA["CCC"] = "P"
	codonAA["CCA"] = "P"
	codonAA["CCG"] = "P"
	codonAA["CAT"] = "H"
	codonAA["CAC"] = "H"
	codonAA["CAA"] = "Q"
	codonAA["CAG"] = "Q"
	codonAA["CGT"] = "R"
	codonAA["CGC"] = "R"
	codonAA["CGA"] = "R"
	codonAA["CGG"] = "R"

	codonAA["ATT"] = "I"
	codonAA["ATC"] = "I"
	codonAA["ATA"] = "I"
	codonAA["ATG"] = "M"
	codonAA["ACT"] = "T"
	codonAA["ACC"] = "T"
	codonAA["ACA"] = "T"
	codonAA["ACG"] = "T"
	codonAA["AAT"] = "N"
	codonAA["AAC"] = "N"
	codonAA["AAA"] = "K"
	codonAA["AAG"] = "K"
	codonAA["AGT"] = "S"
	codonAA["AGC"] = "S"
	codonAA["AGA"] = "R"
	codonAA["AGG"] = "R"

	codonAA["GTT"] = "V"
	codonAA["GTC"] = "V"
	codonAA["GTA"] = "V"
	codonAA["GTG"] = "V"
	codonAA["GCT"] = "A"
	codonAA["GCC"] = "A"
	codonAA["GCA"] = "A"
	codonAA["GCG"] = "A"
	codonAA["GAT"] = "D"
	codonAA["GAC"] = "D"
	codonAA["GAA"] = "E"
	codonAA["GAG"] = "E"
	codonAA["GGT"] = "G"
	codonAA["GGC"] = "G"
	codonAA["GGA"] = "G"
	codonAA["GGG"] = "G"

	// ambiguities:

	codonAA["AAR"] = "K"
	codonAA["AAY"] = "N"
	codonAA["ACR"] = "T"
	codonAA["ACY"] = "T"
	codonAA["ACS"] = "T"
	codonAA["ACW"] = "T"
	codonAA["ACK"] = "T"
	codonAA["ACM"] = "T"
	codonAA["ACB"] = "T"
	codonAA["ACD"] = "T"
	codonAA["ACH"] = "T"
	codonAA["ACV"] = "T"
	codonAA["ACN"] = "T"
	codonAA["AGR"] = "R"
	codonAA["AGY"] = "S"
	codonAA["ATY"] = "I"
	codonAA["ATW"] = "I"
	codonAA["ATM"] = "I"
	codonAA["ATH"] = "I"
	codonAA["CAR"] = "Q"
	codonAA["CAY"] = "H"
	codonAA["CCR"] = "P"
	codonAA["CCY"] = "P"
	codonAA["CCS"] = "P"
	codonAA["CCW"] = "P"
	codonAA["CCK"] = "P"
	codonAA["CCM"] = "P"
	codonAA["CCB"] = "P"
	codonAA["CCD"] = "P"
	codonAA["CCH"] = "P"
	codonAA["CCV"] = "P"
	codonAA["CCN"] = "P"
	codonAA["CGR"] = "R"
	codonAA["CGY"] = "R"
	codonAA["CGS"] = "R"
	codonAA["CGW"] = "R"
	codonAA["CGK"] = "R"
	codonAA["CGM"] = "R"
	codonAA["CGB"] = "R"
	codonAA["CGD"] = "R"
	codonAA["CGH"] = "R"
	codonAA["CGV"] = "R"
	codonAA["CGN"] = "R"
	codonAA["CTR"] = "L"
	codonAA["CTY"] = "L"
	codonAA["CTS"] = "L"
	codonAA["CTW"] = "L"
	codonAA["CTK"] = "L"
	codonAA["CTM"] = "L"
	codonAA["CTB"] = "L"
	codonAA["CTD"] = "L"
	codonAA["CTH"] = "L"
	codonAA["CTV"] = "L"
	codonAA["CTN"] = "L"
	codonAA["GAR"] = "E"
	codonAA["GAY"] = "D"
	codonAA["GCR"] = "A"
	codonAA["GCY"] = "A"
	codonAA["GCS"] = "A"
	codonAA["GCW"] = "A"
	codonAA["GCK"] = "A"
	codonAA["GCM"] = "A"
	codonAA["GCB"] = "A"
	codonAA["GCD"] = "A"
	codonAA["GCH"] = "A"
	codonAA["GCV"] = "A"
	codonAA["GCN"] = "A"
	codonAA["GGR"] = "G"
	codonAA["GGY"] = "G"
	codonAA["GGS"] = "G"
	codonAA["GGW"] = "G"
	codonAA["GGK"] = "G"
	codonAA["GGM"] = "G"
	codonAA["GGB"] = "G"
	codonAA["GGD"] = "G"
	codonAA["GGH"] = "G"
	codonAA["GGV"] = "G"
	codonAA["GGN"] = "G"
	codonAA["GTR"] = "V"
	codonAA["GTY"] = "V"
	codonAA["GTS"] = "V"
	codonAA["GTW"] = "V"
	codonAA["GTK"] = "V"
	codonAA["GTM"] = "V"
	codonAA["GTB"] = "V"
	codonAA["GTD"] = "V"
	codonAA["GTH"] = "V"
	codonAA["GTV"] = "V"
	codonAA["GTN"] = "V"
	codonAA["TAR"] = "*"
	codonAA["TAY"] = "Y"
	codonAA["TCR"] = "S"
	codonAA["TCY"] = "S"
	codonAA["TCS"] = "S"
	codonAA["TCW"] = "S"
	codonAA["TCK"] = "S"
	codonAA["TCM"] = "S"
	codonAA["TCB"] = "S"
	codonAA["TCD"] = "S"
	codonAA["TCH"] = "S"
	codonAA["TCV"] = "S"
	codonAA["TCN"] = "S"
	codonAA["TGY"] = "C"
	codonAA["TTR"] = "L"
	codonAA["TTY"] = "F"
	codonAA["TRA"] = "*"
	codonAA["YTA"] = "L"
	codonAA["YTG"] = "L"
	codonAA["YTR"] = "L"
	codonAA["MGA"] = "R"
	codonAA["MGG"] = "R"
	codonAA["MGR"] = "R"

	return codonAA
}
