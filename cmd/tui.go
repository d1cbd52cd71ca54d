package cmd

import (
	"github.com/athaploo/portfolio/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := loadContent(cfg)
		if err != nil {
			return err
		}
		return tui.Run(p)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
