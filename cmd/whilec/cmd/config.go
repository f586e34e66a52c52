package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Zeigt die effektive Konfiguration",
	Long: `Zeigt die Konfiguration nach Anwendung von Datei, Standardwerten
und Umgebungsvariablen (WHILEC_LOG_LEVEL, WHILEC_LOG_FORMAT,
WHILEC_STORE_PATH) im TOML-Format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), a.cfg.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
