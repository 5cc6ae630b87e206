package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucid-sh/lucid/internal/intent"
)

// version is set by build flags from cmd/lucid/main.go.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lucid version %s (record format %s)\n", version, intent.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version string (called from main.go).
func SetVersion(v string) {
	version = v
}
