package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samplecafe/cafe/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┌─┐┌─┐
  │  ├─┤├┤ ├┤
  └─┘┴ ┴└  └─┘
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:   "cafe",
		Short: "Sample Cafe website and content admin",
		Long: `cafe serves the Sample Cafe website.

Pages are rendered on the server from the content store. Staff edit the
copy, gallery, highlights and announcements from the admin console at
/admin. Interactive parts of the pages run over a websocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "cafe.yaml", "Path to cafe.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "Content database path (overrides data.path)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		serveCmd(&opts),
		renderCmd(&opts),
		seedCmd(&opts),
		passwdCmd(&opts),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
