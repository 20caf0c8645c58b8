package alphabet

import "testing"

func TestTranslate(t *testing.T) {
	got, err := Translate("ATGGCTTGTTAA")
	if err != nil {
		t.Fatal(err)
	}
	if got != "MAC*" {
		t.Errorf("got %q, want MAC*", got)
	}

	if _, err := Translate("ATGC"); err == nil {
		t.Error("expected an error for a length not divisible by 3")
	}
}

func TestTranslateToStop(t *testing.T) {
	tests := []struct {
		nuc  string
		want string
	}{
		{"ATGAAAGCTTAA", "MKA"},
		{"ATGAAAGCT", "MKA"},
		{"ATGAAAGCTTA", "MKA"},        // trailing partial codon ignored
		{"AUGAAAGCUUAA", "MKA"},       // RNA input
		{"TAAATGAAA", ""},             // leading stop
		{"atgaaataaATG", "MK"},        // lower case, stop truncates
	}
	for _, tt := range tests {
		if got := TranslateToStop(tt.nuc); got != tt.want {
			t.Errorf("TranslateToStop(%q) = %q, want %q", tt.nuc, got, tt.want)
		}
	}
}

func TestCodons(t *testing.T) {
	got := Codons("ATGAAAGC")
	if len(got) != 2 || got[0] != "ATG" || got[1] != "AAA" {
		t.Errorf("Codons = %v, want [ATG AAA]", got)
	}
}

func TestIsStop(t *testing.T) {
	for _, c := range []string{"TAA", "TAG", "TGA"} {
		if !IsStop(c) {
			t.Errorf("IsStop(%s) = false", c)
		}
	}
	if IsStop("ATG") {
		t.Error("IsStop(ATG) = true")
	}
}

func TestSynonymousCodons(t *testing.T) {
	syn := SynonymousCodons()

	if len(syn["M"]) != 1 || syn["M"][0] != "ATG" {
		t.Errorf("M codons = %v, want [ATG]", syn["M"])
	}
	if len(syn["L"]) != 6 {
		t.Errorf("L has %d codons, want 6", len(syn["L"]))
	}
	if len(syn["*"]) != 3 {
		t.Errorf("* has %d codons, want 3", len(syn["*"]))
	}

	// every group's codons map back to the same amino acid
	dict := MakeCodonDict()
	total := 0
	for aa, codons := range syn {
		for _, c := range codons {
			if dict[c] != aa {
				t.Errorf("codon %s grouped under %s but translates to %s", c, aa, dict[c])
			}
		}
		total += len(codons)
	}
	if total != 64 {
		t.Errorf("grouped %d codons, want 64", total)
	}
}
