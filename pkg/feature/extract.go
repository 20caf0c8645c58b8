package feature

import "github.com/bioseqlab/seqfeat/pkg/refset"

// Extractor is the single operation every feature panel implements
type Extractor interface {
	ComputeSingle(in Input, sel Selection) AttributeMap
}

// Extract applies an extractor to a single sequence
func Extract(e Extractor, seq string, sel Selection, ref *refset.Set) AttributeMap {
	return e.ComputeSingle(Input{Seq: seq, Ref: ref}, sel)
}

// ExtractBatch applies an extractor to every sequence of an ordered
// collection, producing one attribute map per sequence in the same order.
// A failing element yields its error entry without affecting the others
func ExtractBatch(e Extractor, seqs []string, sel Selection, ref *refset.Set) []AttributeMap {
	out := make([]AttributeMap, len(seqs))
	for i, s := range seqs {
		out[i] = e.ComputeSingle(Input{Seq: s, Ref: ref}, sel)
	}
	return out
}

// Keyed pairs a caller-supplied key with a sequence, for inputs that carry
// their own index
type Keyed struct {
	Key string
	Seq string
}

// KeyedResult is one ExtractKeyed output row
type KeyedResult struct {
	Key      string
	Features AttributeMap
}

// ExtractKeyed is ExtractBatch for keyed collections: the association
// between key and result is preserved, in input order
func ExtractKeyed(e Extractor, items []Keyed, sel Selection, ref *refset.Set) []KeyedResult {
	out := make([]KeyedResult, len(items))
	for i, item := range items {
		out[i] = KeyedResult{
			Key:      item.Key,
			Features: e.ComputeSingle(Input{Seq: item.Seq, Ref: ref}, sel),
		}
	}
	return out
}
