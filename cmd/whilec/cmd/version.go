package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/whilec/pkg/core/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		w := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(w, info.Version)
			return
		}
		fmt.Fprintf(w, "whilec v%s\n", info.Version)
		fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
		fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(w, "  Grammatik:  %s\n", info.Grammar)
		fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Nur die Versionsnummer")
}
