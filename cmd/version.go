package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosect/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosect",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosect v%s\n", version.Version)
		fmt.Println("Steel Cross-Section Property Calculator")
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
