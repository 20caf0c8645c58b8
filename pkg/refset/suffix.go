package refset

import (
	"sort"
)

// Suffix is one entry of a reference suffix array: a (possibly truncated)
// suffix of a reference gene plus the label of the gene it came from
type Suffix struct {
	Seq   string
	Label string
}

// SuffixArray is a sorted array of reference suffixes used for
// longest-common-substring scoring against the corpus
type SuffixArray struct {
	suffixes []Suffix
}

// SuffixArray returns the suffix array over the corpus, building and caching
// it on first use. Suffix length is capped at Options.MaxSuffix
func (s *Set) SuffixArray() (*SuffixArray, error) {
	v, err := s.GetOrCompute("suffix_array", func() (interface{}, error) {
		return buildSuffixArray(s.entries, s.opts.MaxSuffix), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*SuffixArray), nil
}

func buildSuffixArray(entries []Entry, maxSuffix int) *SuffixArray {
	seen := make(map[Suffix]bool)
	suffixes := make([]Suffix, 0)
	for _, e := range entries {
		for i := 0; i < len(e.Seq); i++ {
			end := i + maxSuffix
			if end > len(e.Seq) {
				end = len(e.Seq)
			}
			sfx := Suffix{Seq: e.Seq[i:end], Label: e.Label}
			if seen[sfx] {
				continue
			}
			seen[sfx] = true
			suffixes = append(suffixes, sfx)
		}
	}
	sort.Slice(suffixes, func(i, j int) bool { return suffixes[i].Seq < suffixes[j].Seq })
	return &SuffixArray{suffixes: suffixes}
}

// longestPrefix returns the length of the longest prefix of q shared with
// any suffix in the array whose label is not excluded
func (sa *SuffixArray) longestPrefix(q string, exclude string) int {
	idx := sort.Search(len(sa.suffixes), func(i int) bool { return sa.suffixes[i].Seq >= q })
	best := 0
	// the longest shared prefix is with one of the neighbours of the
	// insertion point; walk outwards past excluded entries
	for i := idx - 1; i >= 0; i-- {
		if sa.suffixes[i].Label == exclude {
			continue
		}
		if l := commonPrefix(q, sa.suffixes[i].Seq); l > best {
			best = l
		}
		break
	}
	for i := idx; i < len(sa.suffixes); i++ {
		if sa.suffixes[i].Label == exclude {
			continue
		}
		if l := commonPrefix(q, sa.suffixes[i].Seq); l > best {
			best = l
		}
		break
	}
	return best
}

// Score computes the mean, over every start position of the query, of the
// longest substring starting there that also occurs in the reference corpus.
// A gene with the excluded label does not contribute matches, so a sequence
// can be scored against a corpus that contains it
func (sa *SuffixArray) Score(query string, exclude string) float64 {
	if len(query) == 0 || len(sa.suffixes) == 0 {
		return 0
	}
	sum := 0
	for i := 0; i < len(query); i++ {
		sum += sa.longestPrefix(query[i:], exclude)
	}
	return float64(sum) / float64(len(query))
}

func commonPrefix(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
