package panel

import (
	"github.com/bioseqlab/seqfeat/pkg/alphabet"
	"github.com/bioseqlab/seqfeat/pkg/feature"
	"github.com/bioseqlab/seqfeat/pkg/refset"
	"github.com/bioseqlab/seqfeat/pkg/seqs"
	"github.com/bioseqlab/seqfeat/pkg/window"
)

// PanelConfig selects one panel and optionally a subset of its features.
// A nil Features selection computes every feature with defaults
type PanelConfig struct {
	Enabled  bool              `json:"enabled"`
	Features feature.Selection `json:"features,omitempty"`
}

// Config maps panel id to its configuration. A nil Config enables every
// panel; panel ids that match nothing are ignored
type Config map[string]PanelConfig

// WindowConfig enables sliding window extraction
type WindowConfig struct {
	Enabled bool `json:"enabled"`
	Size    int  `json:"windowSize" validate:"required_with=Enabled,omitempty,min=1"`
	Step    int  `json:"stepSize" validate:"required_with=Enabled,omitempty,min=1"`
}

// Row is one extracted feature vector: the whole sequence when the window
// bounds are nil, or one window of it
type Row struct {
	SequenceID  string               `json:"sequenceId"`
	WindowStart *int                 `json:"windowStart,omitempty"`
	WindowEnd   *int                 `json:"windowEnd,omitempty"`
	Features    feature.AttributeMap `json:"features"`
}

// Error records a sequence that could not be processed at all. Panel is
// "unknown" when the failure is not attributable to a single panel
type Error struct {
	SequenceID string `json:"sequenceId"`
	Panel      string `json:"panel"`
	Message    string `json:"error"`
}

// ExtractGlobal computes one row over the whole sequence. Panels that do
// not apply to the sequence's alphabet are skipped: amino acid panels see
// the translation of a nucleotide input, and a translation that is empty
// skips the panel rather than failing the row. Alphabet-agnostic panels
// see every input unchanged
func (r *Registry) ExtractGlobal(id, seq string, ref *refset.Set, cfg Config) Row {
	return Row{SequenceID: id, Features: r.extract(seq, seqs.Detect(seq), ref, cfg)}
}

func (r *Registry) extract(seq string, t seqs.Type, ref *refset.Set, cfg Config) feature.AttributeMap {
	out := make(feature.AttributeMap)
	for _, p := range r.enabled(cfg) {
		in := seq
		if p.Alphabet != t && p.Alphabet != seqs.Any {
			if !(p.Translate && t == seqs.Nucleotide) {
				continue
			}
			in = alphabet.TranslateToStop(seq)
		}
		if len(in) < p.MinLen {
			continue
		}
		merge(out, p.Registry.ComputeSingle(feature.Input{Seq: in, Ref: ref}, p.sel))
	}
	return out
}

// merge flattens a panel's map into the row. Colliding error entries are
// concatenated so one failing panel cannot mask another's
func merge(dst, src feature.AttributeMap) {
	for k, v := range src {
		if k == feature.ErrorKey {
			if prev, ok := dst[k].(string); ok {
				dst[k] = prev + "; " + v.(string)
				continue
			}
		}
		dst[k] = v
	}
}

// ExtractWindowed computes the global row followed by one row per window,
// ascending by start. Windows shorter than a panel's minimum length skip
// that panel for that window only
func (r *Registry) ExtractWindowed(id, seq string, ref *refset.Set, cfg Config, size, step int) ([]Row, error) {
	spans, err := window.Windows(len(seq), size, step, window.Options{})
	if err != nil {
		return nil, err
	}

	t := seqs.Detect(seq)
	rows := make([]Row, 0, len(spans)+1)
	rows = append(rows, Row{SequenceID: id, Features: r.extract(seq, t, ref, cfg)})
	for _, span := range spans {
		span := span
		rows = append(rows, Row{
			SequenceID:  id,
			WindowStart: &span.Start,
			WindowEnd:   &span.End,
			Features:    r.extract(seq[span.Start:span.End], t, ref, cfg),
		})
	}
	return rows, nil
}
