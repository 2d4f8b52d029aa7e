package main

import (
	"github.com/spf13/cobra"

	"mcts/experiments"
)

var experimentConfigPath string

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run the iteration-budget strength experiment",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := experiments.DefaultConfig()
		if experimentConfigPath != "" {
			loaded, err := experiments.LoadConfig(experimentConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		return experiments.RunStrengthExperiment(cfg)
	},
}

func init() {
	experimentCmd.Flags().StringVar(&experimentConfigPath, "config", "", "yaml experiment config file")
	rootCmd.AddCommand(experimentCmd)
}
