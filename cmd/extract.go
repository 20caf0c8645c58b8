package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bioseqlab/seqfeat/internal/gfio"
	"github.com/bioseqlab/seqfeat/pkg/fasta"
	"github.com/bioseqlab/seqfeat/pkg/panel"
	"github.com/bioseqlab/seqfeat/pkg/refset"
)

var extractQuery string
var extractOutfile string
var extractPanels []string
var extractReference string
var extractExpression string
var extractWindow int
var extractStep int
var extractFormat string
var extractThreads int

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractQuery, "query", "q", "stdin", "Sequences to extract features from, in fasta format")
	extractCmd.Flags().StringVarP(&extractOutfile, "outfile", "o", "stdout", "Output to write")
	extractCmd.Flags().StringSliceVarP(&extractPanels, "panels", "p", nil, "Comma-separated panel ids to compute (default: all)")
	extractCmd.Flags().StringVarP(&extractReference, "reference", "r", "", "Reference gene set in fasta format, for reference-dependent codon metrics")
	extractCmd.Flags().StringVar(&extractExpression, "expression", "", "Two-column table of reference gene expression levels")
	extractCmd.Flags().IntVarP(&extractWindow, "window", "w", 0, "Sliding window size; 0 extracts over whole sequences only")
	extractCmd.Flags().IntVarP(&extractStep, "step", "s", 0, "Sliding window step (default: window size)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "csv", "Output format: csv or json")
	extractCmd.Flags().IntVarP(&extractThreads, "threads", "t", 0, "Number of worker threads (default: all available CPUs)")
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract feature panels from sequences",
	Long: `Extract feature panels from sequences.

Example usage:
	seqfeat extract -q sequences.fasta -o features.csv
	seqfeat extract -q sequences.fasta -w 100 -s 10 -p sequence,codonUsage -r reference.fasta

The output has one row per sequence, or, with --window, one whole-sequence row
followed by one row per window. Sequences that fail validation are reported on
stderr and do not stop the rest of the batch.

If input and output files are not specified, the behaviour is to read the
sequences from stdin and write the rows to stdout, e.g. you could do this:
	cat sequences.fasta | seqfeat extract -w 100 -s 10 > features.csv`,

	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := gfio.OpenIn(*cmd.Flag("query"))
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer out.Close()

		records, err := fasta.Read(in)
		if err != nil {
			return err
		}
		inputs := make([]panel.Input, len(records))
		for i, rec := range records {
			inputs[i] = panel.Input{ID: rec.ID, Seq: rec.Seq}
		}

		ref, err := loadReference()
		if err != nil {
			return err
		}

		cfg, err := panelConfig(extractPanels)
		if err != nil {
			return err
		}

		wcfg := panel.WindowConfig{}
		if extractWindow > 0 {
			step := extractStep
			if step == 0 {
				step = extractWindow
			}
			wcfg = panel.WindowConfig{Enabled: true, Size: extractWindow, Step: step}
		}

		rows, errs, meta, err := panel.Default().Run(context.Background(), inputs, ref, cfg, wcfg, extractThreads)
		if err != nil {
			return err
		}
		for _, e := range errs {
			cmd.PrintErrf("skipped %s: %s\n", e.SequenceID, e.Message)
		}

		switch extractFormat {
		case "csv":
			return panel.WriteCSV(out, rows)
		case "json":
			return panel.WriteJSON(out, rows, errs, meta)
		default:
			return errors.New("unknown output format " + extractFormat)
		}
	},
}

func panelConfig(ids []string) (panel.Config, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	registry := panel.Default()
	cfg := make(panel.Config, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := registry.Lookup(id); !ok {
			return nil, errors.New("unknown panel " + id)
		}
		cfg[id] = panel.PanelConfig{Enabled: true}
	}
	return cfg, nil
}

func loadReference() (*refset.Set, error) {
	if extractReference == "" {
		return nil, nil
	}
	f, err := os.Open(extractReference)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := refset.Options{}
	if extractExpression != "" {
		ef, err := os.Open(extractExpression)
		if err != nil {
			return nil, err
		}
		defer ef.Close()
		if opts.Expression, err = refset.ReadExpression(ef); err != nil {
			return nil, err
		}
	}
	return refset.FromFasta(f, opts)
}
