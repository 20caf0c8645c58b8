package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bioseqlab/seqfeat/pkg/panel"
)

func init() {
	rootCmd.AddCommand(panelsCmd)
}

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "List the available feature panels",
	Long: `List the available feature panels.

Example usage:
	seqfeat panels`,

	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range panel.Default().Catalog() {
			cmd.Printf("%s\t%s\t%s\n", info.ID, info.Alphabet, info.Name)
			cmd.Printf("\tfeatures: %s\n", strings.Join(info.Features, ", "))
		}
		return nil
	},
}
