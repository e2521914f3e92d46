package main

import (
	"go-agency/internal/shared/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "payoutcalc",
		Short:         "Hitung payout komisi agency tanpa database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logger.ConfigFromEnv()
			if logLevel != "" {
				cfg.Level = logLevel
			}
			log, err := logger.New(cfg)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(log)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCalculateCommand())

	return rootCmd
}
