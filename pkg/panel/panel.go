/*
Package panel wires the feature panels into a dispatcher that extracts
features from whole sequences, sliding windows over them, and batches,
with per-sequence error isolation
*/
package panel

import (
	"golang.org/x/exp/slices"

	"github.com/bioseqlab/seqfeat/pkg/chemical"
	"github.com/bioseqlab/seqfeat/pkg/codon"
	"github.com/bioseqlab/seqfeat/pkg/composition"
	"github.com/bioseqlab/seqfeat/pkg/disorder"
	"github.com/bioseqlab/seqfeat/pkg/feature"
	"github.com/bioseqlab/seqfeat/pkg/motif"
	"github.com/bioseqlab/seqfeat/pkg/seqs"
	"github.com/bioseqlab/seqfeat/pkg/sorf"
	"github.com/bioseqlab/seqfeat/pkg/structure"
)

// Panel binds a feature registry to its applicability rules
type Panel struct {
	ID   string
	Name string
	// Alphabet is the input type the panel applies to; seqs.Any accepts
	// both alphabets as-is
	Alphabet seqs.Type
	// MinLen is the shortest input (after translation, if any) the
	// panel accepts; shorter windows skip the panel silently
	MinLen int
	// Translate marks amino acid panels that accept nucleotide input
	// through its translation
	Translate bool
	Registry  *feature.Registry
}

// Registry holds the available panels in registration order
type Registry struct {
	panels []Panel
	byID   map[string]Panel
}

// New builds a registry from the given panels
func New(panels ...Panel) *Registry {
	r := &Registry{byID: make(map[string]Panel, len(panels))}
	for _, p := range panels {
		if _, dup := r.byID[p.ID]; dup {
			panic("panel: duplicate panel " + p.ID)
		}
		r.panels = append(r.panels, p)
		r.byID[p.ID] = p
	}
	return r
}

// Default returns the registry of built-in panels
func Default() *Registry {
	return New(
		Panel{
			ID: "sequence", Name: "Sequence Composition",
			Alphabet: seqs.Any, MinLen: 1,
			Registry: composition.Features(),
		},
		Panel{
			ID: "chemical", Name: "Physicochemical Properties",
			Alphabet: seqs.AminoAcid, MinLen: 2, Translate: true,
			Registry: chemical.Features(),
		},
		Panel{
			ID: "codonUsage", Name: "Codon Usage Bias",
			Alphabet: seqs.Nucleotide, MinLen: 3,
			Registry: codon.Features(),
		},
		Panel{
			ID: "disorder", Name: "Intrinsic Disorder",
			Alphabet: seqs.AminoAcid, MinLen: 1, Translate: true,
			Registry: disorder.Features(),
		},
		Panel{
			ID: "motif", Name: "Regulatory Motifs",
			Alphabet: seqs.Nucleotide, MinLen: 1,
			Registry: motif.Features(),
		},
		Panel{
			ID: "structure", Name: "Secondary Structure Propensity",
			Alphabet: seqs.AminoAcid, MinLen: 1, Translate: true,
			Registry: structure.Features(),
		},
		Panel{
			ID: "sorf", Name: "Small Open Reading Frames",
			Alphabet: seqs.Nucleotide, MinLen: 1,
			Registry: sorf.Features(),
		},
	)
}

// Info is the static description of one panel
type Info struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Alphabet string   `json:"alphabet"`
	Features []string `json:"features"`
}

// Catalog describes the registered panels, sorted by id
func (r *Registry) Catalog() []Info {
	out := make([]Info, 0, len(r.panels))
	for _, p := range r.panels {
		out = append(out, Info{
			ID:       p.ID,
			Name:     p.Name,
			Alphabet: p.Alphabet.String(),
			Features: p.Registry.Names(),
		})
	}
	slices.SortFunc(out, func(a, b Info) bool {
		return a.ID < b.ID
	})
	return out
}

// Lookup returns the panel registered under id
func (r *Registry) Lookup(id string) (Panel, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// enabled returns the panels the config selects, in registration order,
// paired with their feature selections. A nil config enables every panel
// with every feature
func (r *Registry) enabled(cfg Config) []enabledPanel {
	out := make([]enabledPanel, 0, len(r.panels))
	for _, p := range r.panels {
		if cfg == nil {
			out = append(out, enabledPanel{Panel: p})
			continue
		}
		pc, ok := cfg[p.ID]
		if !ok || !pc.Enabled {
			continue
		}
		out = append(out, enabledPanel{Panel: p, sel: pc.Features})
	}
	return out
}

type enabledPanel struct {
	Panel
	sel feature.Selection
}
