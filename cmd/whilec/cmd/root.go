package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// errRejected reports a rejected input whose verdict was already printed
var errRejected = errors.New("input rejected")

var rootCmd = &cobra.Command{
	Use:   "whilec",
	Short: "whilec - Parser für die WHILE-Sprache",
	Long: `whilec ist ein Werkzeug für die WHILE-Sprache: Zuweisungen,
if/then/else, while/do, skip und Sequenzen mit ';'.

Befehle:
  parse     - Parst ein Programm und gibt den Syntaxbaum aus
  check     - Akzeptiert oder verwirft Eingaben (Exit-Code 0/1)
  tokens    - Zeigt den Token-Strom
  events    - Zeigt die Listener-Ereignisse während des Parsens
  verdicts  - Verwaltet gespeicherte Verdikte
  config    - Zeigt die effektive Konfiguration
  version   - Zeigt die Version an`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errRejected) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./whilec.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
