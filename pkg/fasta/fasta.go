/*
Package fasta provides functions for reading and writing fasta format files
*/
package fasta

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Record is a simple struct for one Fasta record
type Record struct {
	ID          string
	Description string
	Seq         string
	Idx         int
}

// Read reads fasta records from r, in order
func Read(r io.Reader) ([]Record, error) {

	records := make([]Record, 0)

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 1024*1024), 1024*1024*16)

	first := true

	var id string
	var description string
	var seqBuffer strings.Builder

	counter := 0

	for s.Scan() {
		line := s.Text()
		if len(line) == 0 {
			continue
		}

		if first {

			if line[0] != '>' {
				return nil, errors.New("badly formatted fasta file")
			}

			description = line[1:]
			id = strings.Fields(description)[0]

			first = false

		} else if line[0] == '>' {

			records = append(records, Record{ID: id, Description: description, Seq: seqBuffer.String(), Idx: counter})
			counter++

			description = line[1:]
			id = strings.Fields(description)[0]
			seqBuffer.Reset()

		} else {
			seqBuffer.WriteString(strings.ToUpper(line))
		}
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	if first {
		return nil, errors.New("empty fasta file")
	}

	records = append(records, Record{ID: id, Description: description, Seq: seqBuffer.String(), Idx: counter})

	return records, nil
}

// Write writes fasta records to w, one per input record, in input order
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := bw.WriteString(">" + r.ID + "\n"); err != nil {
			return err
		}
		if _, err := bw.WriteString(r.Seq + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
