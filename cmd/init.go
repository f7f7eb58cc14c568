package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/distant-reading/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize distread configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the dashboard and writes a .distread.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
