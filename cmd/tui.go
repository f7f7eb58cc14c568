package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the dashboard in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadDocument(context.Background(), cfg)
		if err != nil {
			logger.Error("Error loading analysis data", zap.String("source", cfg.DataPath), zap.Error(err))
		}

		m, err := tui.New(doc, cfg.ViewOptions(), cfg.Title)
		if err != nil {
			return err
		}
		return tui.Run(m)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
