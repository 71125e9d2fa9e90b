package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// configPath, when set, reads config.yaml from that directory only.
var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "personalization",
	Short: "Run and inspect the personalization state core",
	Long: `personalization hosts the state store behind the wallpaper, theme, ambient,
user, keyboard backlight and SeaPen settings pages. It keeps one state tree in
sync with the system providers and exposes it through a terminal dashboard and
an MCP server.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed connections)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "personalization version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Read config.yaml from this directory instead of the user and project config")
}
