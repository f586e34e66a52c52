package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/whilec/foundation/while/ast"
)

var eventsGeneric bool

var eventsCmd = &cobra.Command{
	Use:   "events [datei|-|programm]",
	Short: "Zeigt die Listener-Ereignisse",
	Long: `Parst die Eingabe mit einem aufzeichnenden Listener und gibt alle
Ereignisse in der Reihenfolge aus, in der sie gemeldet wurden.

Schlägt das Parsen fehl, endet die Ausgabe mit dem Fehlerknoten.

Beispiele:
  whilec events "skip ; skip"
  whilec events --generic "L = n"`,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().BoolVar(&eventsGeneric, "generic", false, "Auch EnterEveryRule/ExitEveryRule ausgeben")
}

func runEvents(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	_, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	rec := &ast.Recorder{Generic: eventsGeneric}
	_, parseErr := a.engine.Parse(requestContext(cmd), input, rec)
	if err := a.out.Events(rec.Events); err != nil {
		return err
	}
	if parseErr != nil {
		a.logger.LogError(parseErr)
	}
	return parseErr
}
