package cmd

import (
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [datei|-|programm]",
	Short: "Zeigt den Token-Strom",
	Long: `Zerlegt die Eingabe in Tokens und zeigt sie als Tabelle an.

Bei einem ungültigen Zeichen endet die Tabelle mit dem ungültigen Token.

Beispiele:
  whilec tokens "L = (L+n)"
  whilec tokens programm.while`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	_, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	toks, lexErr := a.engine.Tokenize(input)
	if err := a.out.Tokens(toks); err != nil {
		return err
	}
	if lexErr != nil {
		a.logger.LogError(lexErr)
	}
	return lexErr
}
