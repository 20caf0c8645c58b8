package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bioseqlab/seqfeat/internal/config"
	"github.com/bioseqlab/seqfeat/internal/logger"
	"github.com/bioseqlab/seqfeat/internal/server"
	"github.com/bioseqlab/seqfeat/pkg/panel"
	"github.com/bioseqlab/seqfeat/pkg/refset"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve feature extraction over HTTP",
	Long: `Serve feature extraction over HTTP.

Configuration comes from the environment (or a .env file): APP_PORT, GO_ENV,
LOG_FILE_PATH, CORS_ALLOWED_ORIGINS, REFERENCE_FASTA, REFERENCE_EXPRESSION.

Example usage:
	APP_PORT=8080 seqfeat serve`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		log := logger.New(cfg.App.LogFilePath, cfg.IsProd())
		defer log.Sync()

		refs, err := loadConfiguredRefs(cfg)
		if err != nil {
			return err
		}
		if len(refs) > 0 {
			log.Info("loaded reference set", zap.Int("count", len(refs)))
		}

		return server.New(cfg, log, panel.Default(), refs).Run()
	},
}

// loadConfiguredRefs loads the corpus named by REFERENCE_FASTA, if any,
// under the reference set name "default"
func loadConfiguredRefs(cfg *config.Config) (map[string]*refset.Set, error) {
	if cfg.Ref.FastaPath == "" {
		return nil, nil
	}
	f, err := os.Open(cfg.Ref.FastaPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := refset.Options{}
	if cfg.Ref.ExpressionPath != "" {
		ef, err := os.Open(cfg.Ref.ExpressionPath)
		if err != nil {
			return nil, err
		}
		defer ef.Close()
		if opts.Expression, err = refset.ReadExpression(ef); err != nil {
			return nil, err
		}
	}

	ref, err := refset.FromFasta(f, opts)
	if err != nil {
		return nil, err
	}
	return map[string]*refset.Set{"default": ref}, nil
}
