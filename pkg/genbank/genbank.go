/*
Package genbank provides a minimal reader for genbank flat format files,
sufficient to pull coding sequences out of an annotated record for use as a
reference corpus
*/
package genbank

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/bioseqlab/seqfeat/pkg/alphabet"
)

// CDS is one coding sequence from a genbank record
type CDS struct {
	Label   string // /gene or /locus_tag qualifier, or CDS_<n>
	Seq     string // nucleotide sequence of the feature, on the forward strand
	Protein string // translation of Seq, including any trailing stop marker
}

type feature struct {
	location string
	gene     string
	locus    string
}

// ReadCDS parses a genbank flat file and returns the nucleotide sequence of
// every CDS feature whose location is a plain range, a complement, or a join
// of plain ranges
func ReadCDS(r io.Reader) ([]CDS, error) {

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 1024*1024), 1024*1024*16)

	features := make([]feature, 0)
	var origin strings.Builder

	inFeatures := false
	inOrigin := false
	var curr *feature

	for s.Scan() {
		line := s.Text()

		switch {
		case strings.HasPrefix(line, "FEATURES"):
			inFeatures = true
			continue
		case strings.HasPrefix(line, "ORIGIN"):
			inFeatures = false
			inOrigin = true
			continue
		case strings.HasPrefix(line, "//"):
			inOrigin = false
			continue
		}

		if inOrigin {
			for _, f := range strings.Fields(line) {
				if _, err := strconv.Atoi(f); err == nil {
					continue
				}
				origin.WriteString(strings.ToUpper(f))
			}
			continue
		}

		if !inFeatures {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(line, "     CDS ") {
			features = append(features, feature{location: strings.TrimSpace(strings.TrimPrefix(trimmed, "CDS"))})
			curr = &features[len(features)-1]
			continue
		}
		if len(line) > 5 && line[5] != ' ' {
			// a different feature key ends the current CDS block
			curr = nil
			continue
		}
		if curr == nil {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "/gene="):
			curr.gene = strings.Trim(strings.TrimPrefix(trimmed, "/gene="), `"`)
		case strings.HasPrefix(trimmed, "/locus_tag="):
			curr.locus = strings.Trim(strings.TrimPrefix(trimmed, "/locus_tag="), `"`)
		case !strings.HasPrefix(trimmed, "/") && !strings.ContainsAny(trimmed, " "):
			// location continuation line
			curr.location = curr.location + trimmed
		}
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	genome := origin.String()
	if len(genome) == 0 {
		return nil, errors.New("no ORIGIN sequence in genbank input")
	}

	out := make([]CDS, 0, len(features))
	for i, f := range features {
		seq, err := extract(genome, f.location)
		if err != nil {
			// unparseable locations (e.g. partials, cross-record refs) are skipped
			continue
		}
		protein, err := alphabet.Translate(seq)
		if err != nil {
			// a CDS that is not a whole number of codons is misannotated
			continue
		}
		label := f.gene
		if label == "" {
			label = f.locus
		}
		if label == "" {
			label = "CDS_" + strconv.Itoa(i+1)
		}
		out = append(out, CDS{Label: label, Seq: seq, Protein: protein})
	}

	return out, nil
}

// extract resolves a location string against the full genome sequence.
// Supported forms: "a..b", "complement(...)", "join(a..b,c..d)"
func extract(genome, location string) (string, error) {
	location = strings.TrimSpace(location)

	if strings.HasPrefix(location, "complement(") && strings.HasSuffix(location, ")") {
		inner, err := extract(genome, location[len("complement("):len(location)-1])
		if err != nil {
			return "", err
		}
		return reverseComplement(inner), nil
	}

	if strings.HasPrefix(location, "join(") && strings.HasSuffix(location, ")") {
		parts := strings.Split(location[len("join("):len(location)-1], ",")
		var b strings.Builder
		for _, p := range parts {
			seq, err := extract(genome, p)
			if err != nil {
				return "", err
			}
			b.WriteString(seq)
		}
		return b.String(), nil
	}

	bounds := strings.SplitN(location, "..", 2)
	if len(bounds) != 2 {
		return "", errors.New("unsupported genbank location: " + location)
	}
	start, err := strconv.Atoi(strings.Trim(bounds[0], "<>"))
	if err != nil {
		return "", errors.New("unsupported genbank location: " + location)
	}
	stop, err := strconv.Atoi(strings.Trim(bounds[1], "<>"))
	if err != nil {
		return "", errors.New("unsupported genbank location: " + location)
	}
	if start < 1 || stop > len(genome) || start > stop {
		return "", errors.New("genbank location out of range: " + location)
	}
	// genbank coordinates are 1-based inclusive
	return genome[start-1 : stop], nil
}

func reverseComplement(seq string) string {
	comp := map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G', 'U': 'A', 'N': 'N'}
	b := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := comp[seq[len(seq)-1-i]]
		if !ok {
			c = 'N'
		}
		b[i] = c
	}
	return string(b)
}
