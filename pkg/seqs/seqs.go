/*
Package seqs provides the validated sequence types that feature extraction
operates on: nucleotide sequences over {A,C,G,T,U} and amino acid sequences
over the twenty canonical letters plus the stop marker
*/
package seqs

import (
	"errors"
	"fmt"

	"github.com/bioseqlab/seqfeat/pkg/alphabet"
	"github.com/bioseqlab/seqfeat/pkg/encoding"
)

// ErrInvalidSequence is returned when a sequence contains symbols outside
// its alphabet
var ErrInvalidSequence = errors.New("invalid sequence")

// Type classifies a raw sequence string. Any is never produced by Detect;
// it marks consumers that accept either alphabet
type Type int

const (
	Nucleotide Type = iota
	AminoAcid
	Any
)

func (t Type) String() string {
	switch t {
	case Nucleotide:
		return "nucleotide"
	case AminoAcid:
		return "amino_acid"
	}
	return "any"
}

// Detect classifies a raw sequence as nucleotide if every symbol other than
// the stop marker is a valid nucleotide, and as amino acid otherwise
func Detect(raw string) Type {
	valid := encoding.MakeNucleotideArray()
	for i := 0; i < len(raw); i++ {
		if raw[i] == '*' {
			continue
		}
		if !valid[raw[i]] {
			return AminoAcid
		}
	}
	return Nucleotide
}

// NucSeq is an immutable nucleotide sequence. It owns an amino acid
// translation which is computed once, eagerly, and truncated at the first
// stop codon
type NucSeq struct {
	seq         string
	translation AASeq
}

// NewNucSeq validates and upper-cases a raw nucleotide sequence and computes
// its translation
func NewNucSeq(raw string) (NucSeq, error) {
	up := encoding.MakeUpperArray()
	valid := encoding.MakeNucleotideArray()
	b := make([]byte, len(raw))
	for i := 0; i < len(raw); i++ {
		c := up[raw[i]]
		if !valid[c] {
			return NucSeq{}, fmt.Errorf("%w: non-nucleotide character %q", ErrInvalidSequence, raw[i])
		}
		b[i] = c
	}
	s := string(b)
	return NucSeq{seq: s, translation: AASeq{seq: alphabet.TranslateToStop(s)}}, nil
}

func (n NucSeq) String() string { return n.seq }

func (n NucSeq) Len() int { return len(n.seq) }

// Translation returns the stop-truncated amino acid translation owned by
// this sequence
func (n NucSeq) Translation() AASeq { return n.translation }

// AASeq is an immutable amino acid sequence
type AASeq struct {
	seq string
}

// NewAASeq validates and upper-cases a raw amino acid sequence
func NewAASeq(raw string) (AASeq, error) {
	up := encoding.MakeUpperArray()
	valid := encoding.MakeAminoAcidArray()
	b := make([]byte, len(raw))
	for i := 0; i < len(raw); i++ {
		c := up[raw[i]]
		if !valid[c] {
			return AASeq{}, fmt.Errorf("%w: non-amino-acid character %q", ErrInvalidSequence, raw[i])
		}
		b[i] = c
	}
	return AASeq{seq: string(b)}, nil
}

func (a AASeq) String() string { return a.seq }

func (a AASeq) Len() int { return len(a.seq) }
