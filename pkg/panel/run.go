package panel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/bioseqlab/seqfeat/pkg/refset"
	"github.com/bioseqlab/seqfeat/pkg/seqs"
	"github.com/bioseqlab/seqfeat/pkg/window"
)

var validate = validator.New()

// Input is one sequence of a batch
type Input struct {
	ID  string `json:"id" validate:"required"`
	Seq string `json:"sequence" validate:"required"`
}

// Metadata summarizes one batch run
type Metadata struct {
	RunID          string   `json:"runId"`
	Mode           string   `json:"mode"`
	TotalSequences int      `json:"totalSequences"`
	PanelsComputed []string `json:"panelsComputed"`
	ComputeTimeMs  int64    `json:"computeTimeMs"`
	TotalWindows   int      `json:"totalWindows,omitempty"`
	WindowSize     int      `json:"windowSize,omitempty"`
	StepSize       int      `json:"stepSize,omitempty"`
}

type job struct {
	idx int
	in  Input
}

type result struct {
	idx     int
	rows    []Row
	errs    []Error
	windows int
}

// Run extracts features for a batch of sequences, fanning the items out to
// threads workers (one per CPU when threads < 1) and restoring input order
// on collection. A sequence that fails validation becomes an Error entry
// without aborting the batch; a malformed window configuration fails the
// whole run. Cancellation is observed between items, never inside one
func (r *Registry) Run(ctx context.Context, inputs []Input, ref *refset.Set, cfg Config, wcfg WindowConfig, threads int) ([]Row, []Error, Metadata, error) {
	start := time.Now()

	meta := Metadata{
		RunID:          uuid.NewString(),
		Mode:           "global",
		TotalSequences: len(inputs),
		PanelsComputed: r.enabledIDs(cfg),
	}
	if wcfg.Enabled {
		if err := validate.Struct(wcfg); err != nil {
			return nil, nil, meta, fmt.Errorf("%w: %v", window.ErrInvalidConfig, err)
		}
		meta.Mode = "windowed"
		meta.WindowSize = wcfg.Size
		meta.StepSize = wcfg.Step
	}

	jobs := make(chan job)
	results := make(chan result)

	var wg sync.WaitGroup
	workers := threads
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- r.process(j, ref, cfg, wcfg)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, in := range inputs {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{idx: i, in: in}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make(map[int]result)
	for res := range results {
		collected[res.idx] = res
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, meta, err
	}

	var rows []Row
	var errs []Error
	for i := range inputs {
		res := collected[i]
		rows = append(rows, res.rows...)
		errs = append(errs, res.errs...)
		meta.TotalWindows += res.windows
	}
	meta.ComputeTimeMs = time.Since(start).Milliseconds()
	return rows, errs, meta, nil
}

func (r *Registry) process(j job, ref *refset.Set, cfg Config, wcfg WindowConfig) result {
	res := result{idx: j.idx}

	// validation also upper-cases, so the panels see canonical input
	var seq string
	if seqs.Detect(j.in.Seq) == seqs.Nucleotide {
		ns, err := seqs.NewNucSeq(j.in.Seq)
		if err != nil {
			res.errs = append(res.errs, Error{SequenceID: j.in.ID, Panel: "unknown", Message: err.Error()})
			return res
		}
		seq = ns.String()
	} else {
		as, err := seqs.NewAASeq(j.in.Seq)
		if err != nil {
			res.errs = append(res.errs, Error{SequenceID: j.in.ID, Panel: "unknown", Message: err.Error()})
			return res
		}
		seq = as.String()
	}

	if !wcfg.Enabled {
		res.rows = append(res.rows, r.ExtractGlobal(j.in.ID, seq, ref, cfg))
		return res
	}

	rows, err := r.ExtractWindowed(j.in.ID, seq, ref, cfg, wcfg.Size, wcfg.Step)
	if err != nil {
		res.errs = append(res.errs, Error{SequenceID: j.in.ID, Panel: "unknown", Message: err.Error()})
		return res
	}
	res.rows = rows
	res.windows = len(rows) - 1
	return res
}

func (r *Registry) enabledIDs(cfg Config) []string {
	ids := make([]string, 0, len(r.panels))
	for _, p := range r.enabled(cfg) {
		ids = append(ids, p.ID)
	}
	slices.Sort(ids)
	return ids
}
