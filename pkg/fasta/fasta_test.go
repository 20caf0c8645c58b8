package fasta

import (
	"bytes"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := ">seq1 first sequence\natgaaa\nGCTTAA\n>seq2\nATGCCC\n"
	records, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].ID != "seq1" {
		t.Errorf("ID = %q, want seq1", records[0].ID)
	}
	if records[0].Description != "seq1 first sequence" {
		t.Errorf("Description = %q", records[0].Description)
	}
	if records[0].Seq != "ATGAAAGCTTAA" {
		t.Errorf("Seq = %q, want joined upper-cased lines", records[0].Seq)
	}
	if records[0].Idx != 0 || records[1].Idx != 1 {
		t.Errorf("Idx not sequential: %d, %d", records[0].Idx, records[1].Idx)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Error("expected an error for empty input")
	}
	if _, err := Read(strings.NewReader("ATGAAA\n")); err == nil {
		t.Error("expected an error for a missing header")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	records := []Record{
		{ID: "a", Description: "a", Seq: "ATGAAA"},
		{ID: "b", Description: "b", Seq: "ATGCCC"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		t.Fatal(err)
	}
	back, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[0].Seq != "ATGAAA" || back[1].ID != "b" {
		t.Errorf("round trip mismatch: %+v", back)
	}
}
