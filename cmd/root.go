package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wishlink",
	Short: "Shareable personalized greeting pages",
	Long: `Wishlink serves a personalized greeting page for your group and
mints shareable links that carry the recipient, sender, and greeting
in the URL itself, so a wish survives being copied between chats
without any server-side lookup.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".wishlink.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
