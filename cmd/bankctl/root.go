package main

import (
	"fmt"

	"sat-prep/internal/config"
	"sat-prep/internal/logger"
	"sat-prep/internal/questionbank"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "bankctl",
	Short:        "Operator tools for the SAT question bank",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			cfg.Logger.Level = "debug"
		}
		return logger.Initialize(cfg.Logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("dataset", "", "Path to a dataset JSON file (overrides QUESTION_BANK_DATASET, bundled data when empty)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log per-record exclusions")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tokenCmd)
}

// loadConfig falls back to defaults so the CLI works without a config file
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Using default configuration: %v\n", err)
		return config.Default()
	}
	return cfg
}

// openBank resolves the dataset path from --dataset, then configuration
func openBank(cmd *cobra.Command) (*questionbank.Bank, *questionbank.LoadReport, error) {
	path, _ := cmd.Flags().GetString("dataset")
	if path == "" {
		path = loadConfig().QuestionBank.DatasetPath
	}
	logger.Get().Debug("Opening question bank", zap.String("dataset", path))
	return questionbank.Open(path, logger.Get())
}
