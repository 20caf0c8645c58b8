/*
Package sorf finds small open reading frames in nucleotide sequences.
Candidate starts are every internal ATG occurrence in any frame; each
start is paired with the nearest downstream in-frame stop codon. Window
variants restrict the candidate starts to the first 30 and 200 codons
*/
package sorf

import (
	"strconv"
	"strings"

	"github.com/bioseqlab/seqfeat/pkg/feature"
)

// candidate start windows, in codons
var windows = []int{30, 200}

// Features returns the sorf panel registry
func Features() *feature.Registry {
	r := feature.NewRegistry("sorf")

	r.Register("sorf_features", orfs)

	return r
}

type orf struct {
	start  int
	length int
}

func findORFs(seq string) []orf {
	seq = strings.ReplaceAll(seq, "U", "T")

	var stops []int
	for _, stop := range []string{"TAG", "TAA", "TGA"} {
		for from := 0; ; {
			i := strings.Index(seq[from:], stop)
			if i < 0 {
				break
			}
			stops = append(stops, from+i)
			from += i + 1
		}
	}

	var out []orf
	for from := 0; ; {
		i := strings.Index(seq[from:], "ATG")
		if i < 0 {
			break
		}
		start := from + i
		from = start + 1
		if start == 0 {
			continue
		}
		nearest := -1
		for _, s := range stops {
			if s > start && (s-start)%3 == 0 && (nearest < 0 || s < nearest) {
				nearest = s
			}
		}
		if nearest >= 0 {
			out = append(out, orf{start: start, length: nearest + 3 - start})
		}
	}
	return out
}

func summarize(out map[string]float64, orfs []orf, suffix string) {
	out["num_sorf"+suffix] = float64(len(orfs))
	max, sum := 0.0, 0.0
	for _, o := range orfs {
		if float64(o.length) > max {
			max = float64(o.length)
		}
		sum += float64(o.length)
	}
	out["max_sorf_len"+suffix] = max
	if len(orfs) == 0 {
		out["mean_sorf_len"+suffix] = 0
	} else {
		out["mean_sorf_len"+suffix] = sum / float64(len(orfs))
	}
}

func orfs(in feature.Input) (interface{}, error) {
	found := findORFs(in.Seq)

	out := make(map[string]float64)
	summarize(out, found, "")
	for _, win := range windows {
		var within []orf
		for _, o := range found {
			if o.start <= win*3 {
				within = append(within, o)
			}
		}
		summarize(out, within, "_win"+strconv.Itoa(win))
	}
	return out, nil
}
