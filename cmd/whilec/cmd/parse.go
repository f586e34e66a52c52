package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/whilec/foundation/core/log"

	"github.com/msto63/whilec/internal/render"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [datei|-|programm]",
	Short: "Parst ein WHILE-Programm",
	Long: `Parst ein WHILE-Programm und gibt den Syntaxbaum aus.

Formate:
  text  - eingerückter Baum (Standard)
  tree  - Klammerdarstellung, z.B. (start (stmt skip) <EOF>)
  json  - JSON-Dokument
  yaml  - YAML-Dokument

Beispiele:
  whilec parse programm.while
  whilec parse "skip ; L = (L+n)"
  whilec parse --format tree "while true do skip"
  cat programm.while | whilec parse -`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "Ausgabeformat (text, tree, json, yaml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	format := a.cfg.Render.Format
	if cmd.Flags().Changed("format") {
		format = parseFormat
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	name, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res, err := a.engine.Parse(requestContext(cmd), input)
	if err != nil {
		a.logger.LogError(err)
		return err
	}

	a.logger.Debug("program parsed", mdwlog.Fields{
		"source":   name,
		"tokens":   len(res.Tokens),
		"duration": res.Duration.String(),
	})
	return a.out.Tree(res.Tree, f)
}
