package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/render"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and the analysis data",
	Long: `Loads the config and the analysis results and reports every
configured text or theme the data does not contain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := analysis.NewLoader(cfg.DataPath).Load(context.Background())
		if err != nil {
			return err
		}
		if err := doc.Validate(cfg.Texts, cfg.Themes); err != nil {
			return fmt.Errorf("%s does not match the config:\n%w", cfg.DataPath, err)
		}
		if _, err := render.ComparisonMarkdown(doc, cfg.Comparison); err != nil {
			return fmt.Errorf("comparison pair: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: OK\n", cfg.DataPath)
		fmt.Fprintf(out, "  analysed:   %s\n", render.AnalysisDate(doc.Metadata).Text)
		for _, id := range cfg.Texts {
			t := doc.Texts[id]
			fmt.Fprintf(out, "  %-12s %s by %s, %s words\n", id, t.Title, t.Author, humanize.Comma(int64(t.BasicStats.WordCount)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
