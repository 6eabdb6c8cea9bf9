// cmd/schemactl/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lucid-schemas/internal/common/config"
	"lucid-schemas/internal/common/logger"
	_ "lucid-schemas/pkg/contracts"
)

// app holds what the root command prepares for its subcommands.
type app struct {
	configPath string
	cfg        *config.Config
	zapLog     *zap.Logger
	log        logger.Logger
	clock      func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "schemactl",
		Short:         "Inspect and exercise the planning record contracts",
		Long:          "schemactl lists the registered record contracts and vocabularies, decodes payloads through the normalization rules and keeps the exported contract registry in sync.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.zapLog != nil {
				_ = a.zapLog.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a config file (default: configs/config.yaml)")

	root.AddCommand(
		newListCmd(a),
		newVocabCmd(a),
		newDecodeCmd(a),
		newRegistryCmd(a),
	)
	return root
}

func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFromFile(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	a.clock, err = a.cfg.Decoder.Clock()
	if err != nil {
		return err
	}

	a.zapLog = logger.New(a.cfg.Logging.Level, a.cfg.Logging.Format).With(
		zap.String("app", a.cfg.App.Name),
		zap.String("environment", a.cfg.App.Environment),
	)
	zap.ReplaceGlobals(a.zapLog)
	a.log = logger.NewZapAdapter(a.zapLog)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
