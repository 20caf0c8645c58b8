package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "seqfeat",
		Short:   "feature extraction for nucleotide and amino acid sequences",
		Long:    `feature extraction for nucleotide and amino acid sequences`,
		Version: "1.0.0",
	}
)

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
