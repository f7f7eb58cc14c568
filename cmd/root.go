package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/config"
	"github.com/ziadkadry99/distant-reading/internal/logging"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "distread",
	Short: "Interactive dashboard for comparative literary text analysis",
	Long: `distread presents the results of a literary text analysis (word
frequencies, sentiment, themes, style and readability) as an interactive
dashboard. It serves the dashboard live, exports it as a static site, or
shows it in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, development := "info", false
		if cfg, err := config.Load(cfgFile); err == nil {
			level, development = cfg.Log.Level, cfg.Log.Development
		}
		l, err := logging.New(level, development, verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

