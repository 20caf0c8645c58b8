package genbank

import (
	"strings"
	"testing"
)

const record = `LOCUS       TEST                      24 bp    DNA     linear   SYN 01-JAN-2024
DEFINITION  synthetic test record.
FEATURES             Location/Qualifiers
     source          1..24
                     /organism="synthetic"
     CDS             1..6
                     /gene="alpha"
     CDS             complement(7..12)
                     /locus_tag="b0002"
     CDS             join(13..15,19..21)
     gene            1..6
                     /gene="alpha"
ORIGIN
        1 atgaaa cccggg tttaaa gggttt
//
`

func TestReadCDS(t *testing.T) {
	cds, err := ReadCDS(strings.NewReader(record))
	if err != nil {
		t.Fatal(err)
	}
	if len(cds) != 3 {
		t.Fatalf("got %d CDS features, want 3: %+v", len(cds), cds)
	}

	if cds[0].Label != "alpha" || cds[0].Seq != "ATGAAA" {
		t.Errorf("first CDS = %+v, want alpha/ATGAAA", cds[0])
	}
	// complement(7..12) of CCCGGG is CCCGGG
	if cds[1].Label != "b0002" || cds[1].Seq != "CCCGGG" {
		t.Errorf("second CDS = %+v, want b0002/CCCGGG", cds[1])
	}
	// join(13..15,19..21): TTT + GGG, falls back to a positional label
	if cds[2].Label != "CDS_3" || cds[2].Seq != "TTTGGG" {
		t.Errorf("third CDS = %+v, want CDS_3/TTTGGG", cds[2])
	}

	for i, want := range []string{"MK", "PG", "FG"} {
		if cds[i].Protein != want {
			t.Errorf("CDS %d protein = %q, want %q", i, cds[i].Protein, want)
		}
	}
}

func TestReadCDSSkipsPartialCodon(t *testing.T) {
	partial := `FEATURES             Location/Qualifiers
     CDS             1..5
                     /gene="broken"
     CDS             1..6
                     /gene="whole"
ORIGIN
        1 atgaaa
//
`
	cds, err := ReadCDS(strings.NewReader(partial))
	if err != nil {
		t.Fatal(err)
	}
	if len(cds) != 1 || cds[0].Label != "whole" {
		t.Fatalf("got %+v, want only the whole-codon CDS", cds)
	}
}

func TestReadCDSNoOrigin(t *testing.T) {
	if _, err := ReadCDS(strings.NewReader("LOCUS TEST\n//\n")); err == nil {
		t.Error("expected an error without an ORIGIN section")
	}
}

func TestExtractOutOfRange(t *testing.T) {
	if _, err := extract("ATGAAA", "1..99"); err == nil {
		t.Error("expected an error for an out of range location")
	}
	if _, err := extract("ATGAAA", "join(1..2"); err == nil {
		t.Error("expected an error for a malformed location")
	}
}
