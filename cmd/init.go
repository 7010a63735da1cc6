package cmd

import (
	"github.com/spf13/cobra"

	"github.com/electrical-elites/wishlink/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wishlink configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the group name, greeting, and media URLs, and generates a .wishlink.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
