package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the gdrive-sheets application
var rootCmd = &cobra.Command{
	Use:   "gdrive-sheets",
	Short: "MCP server for Google Drive and Google Sheets",
	Long: `gdrive-sheets exposes Google Drive and Google Sheets operations as
MCP (Model Context Protocol) tools and resources, so AI assistants can
search Drive, read file content, and manipulate spreadsheets.

It can run over:
  - stdio transport (default)
  - streamable HTTP transport`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gdrive-sheets version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
}
