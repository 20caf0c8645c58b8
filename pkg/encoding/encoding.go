// Package encoding provides lookup arrays over raw sequence bytes, used for
// validating and classifying sequences without allocating per symbol
package encoding

// MakeNucleotideArray returns an array whose entries are true for the bytes
// that are valid unambiguous nucleotide symbols (upper or lower case)
func MakeNucleotideArray() [256]bool {
	var valid [256]bool
	for _, c := range []byte("ACGTUacgtu") {
		valid[c] = true
	}
	return valid
}

// MakeAminoAcidArray returns an array whose entries are true for the bytes
// that are valid amino acid one-letter codes (upper or lower case), plus the
// stop marker '*'
func MakeAminoAcidArray() [256]bool {
	var valid [256]bool
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWYacdefghiklmnpqrstvwy") {
		valid[c] = true
	}
	valid['*'] = true
	return valid
}

// MakeUpperArray maps lower case sequence bytes to upper case and leaves
// everything else alone
func MakeUpperArray() [256]byte {
	var up [256]byte
	for i := 0; i < 256; i++ {
		up[i] = byte(i)
	}
	for c := byte('a'); c <= 'z'; c++ {
		up[c] = c - 'a' + 'A'
	}
	return up
}
