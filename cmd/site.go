package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/distant-reading/internal/progress"
	"github.com/ziadkadry99/distant-reading/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the dashboard as a static website",
	Long: `Renders one HTML page per text and theme plus the comparison page,
a comparison report, SVG sentiment charts and a copy of the data. The pages
work without a server; navigation follows plain links.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local dev server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().Bool("watch", false, "regenerate when the data file changes")
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generate := func() error {
		doc, err := loadDocument(ctx, cfg)
		if err != nil {
			return err
		}
		generator := site.NewSiteGenerator(doc, cfg.ViewOptions(), outputDir, cfg.Title)
		generator.Reporter = progress.NewReporter()
		generator.Logger = logger
		pageCount, err := generator.Generate(ctx)
		if err != nil {
			return fmt.Errorf("generating site: %w", err)
		}
		fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
		return nil
	}
	if err := generate(); err != nil {
		return err
	}

	serve, _ := cmd.Flags().GetBool("serve")
	watch, _ := cmd.Flags().GetBool("watch")
	if !serve && !watch {
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if watch {
		if strings.Contains(cfg.DataPath, "://") {
			return fmt.Errorf("--watch needs a local data file, got %s", cfg.DataPath)
		}
		eg.Go(func() error {
			return site.Watch(egCtx, cfg.DataPath, site.DefaultDebounce, generate, logger)
		})
	}
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")
		eg.Go(func() error {
			if err := site.Serve(egCtx, outputDir, port, open, logger); err != nil {
				return fmt.Errorf("serving site: %w", err)
			}
			return nil
		})
	}
	logger.Info("Press Ctrl+C to stop", zap.Bool("serve", serve), zap.Bool("watch", watch))
	return eg.Wait()
}

