package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/distant-reading/internal/render"
)

var (
	compareLeft  string
	compareRight string
	compareRaw   bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print the comparison table of two texts",
	Long: `Prints the nine comparison metrics of two texts as a markdown table,
rendered for the terminal unless --raw is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadDocument(context.Background(), cfg)
		if err != nil {
			return err
		}

		pair := cfg.Comparison
		if compareLeft != "" {
			pair.Left = compareLeft
		}
		if compareRight != "" {
			pair.Right = compareRight
		}

		md, err := render.ComparisonMarkdown(doc, pair)
		if err != nil {
			return err
		}
		if compareRaw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("rendering comparison: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareLeft, "left", "", "left text id (defaults to comparison.left)")
	compareCmd.Flags().StringVar(&compareRight, "right", "", "right text id (defaults to comparison.right)")
	compareCmd.Flags().BoolVar(&compareRaw, "raw", false, "print markdown without terminal styling")
	rootCmd.AddCommand(compareCmd)
}
