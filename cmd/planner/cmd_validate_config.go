package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config <config.toml>",
	Short: "Load a PlannerConfig TOML file and report whether it parses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath = args[0]
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("config OK: %d anchor types templated, %d classification keyword sets\n",
			len(cfg.StepTemplatesByAnchorType), len(cfg.ClassificationKeywords))
		return nil
	},
}
