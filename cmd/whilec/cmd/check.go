package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/whilec/foundation/core/log"

	"github.com/msto63/whilec/internal/oracle"
	"github.com/msto63/whilec/internal/oracle/store"
	"github.com/msto63/whilec/pkg/core/cache"
)

var (
	checkCacheDB string
	checkQuiet   bool
	checkStats   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [datei|-|programm]...",
	Short: "Prüft, ob Eingaben WHILE-Programme sind",
	Long: `Prüft jede Eingabe und gibt "accepted" oder "rejected" aus.

Der Exit-Code ist 0, wenn alle Eingaben akzeptiert werden, sonst 1.
Verdikte werden im Speicher gecacht und mit --cache-db zusätzlich in
einer SQLite-Datenbank abgelegt.

Beispiele:
  whilec check programm.while
  whilec check "skip ; skip" "skip skip"
  whilec check --cache-db ./data/verdicts.db eingaben/*.while
  echo "L = n" | whilec check -`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkCacheDB, "cache-db", "", "SQLite-Datei für Verdikte (default: oracle.store_path)")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Keine Ausgabe, nur Exit-Code")
	checkCmd.Flags().BoolVar(&checkStats, "stats", false, "Statistik nach der Prüfung ausgeben")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	o, err := newOracle(a, checkCacheDB)
	if err != nil {
		return err
	}
	defer o.Close()

	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	w := cmd.OutOrStdout()
	rejected := 0
	for _, src := range sources {
		name, input, err := readSource(cmd, src)
		if err != nil {
			return err
		}

		v, err := o.Check(requestContext(cmd), input)
		if err != nil {
			return err
		}
		if !v.Accepted {
			rejected++
		}

		if checkQuiet {
			continue
		}
		if len(sources) > 1 {
			fmt.Fprintf(w, "%s: ", name)
		}
		if err := a.out.Verdict(v.Accepted, v.Message); err != nil {
			return err
		}
	}

	if checkStats {
		s := o.Stats()
		fmt.Fprintf(w, "calls=%d parses=%d cache_hits=%d store_hits=%d accepted=%d rejected=%d\n",
			s.Calls, s.Parses, s.CacheHits, s.StoreHits, s.Accepted, s.Rejected)
	}

	a.logger.Debug("check finished", mdwlog.Fields{"inputs": len(sources), "rejected": rejected})
	if rejected > 0 {
		return errRejected
	}
	return nil
}

// newOracle builds an oracle, persisting verdicts when a store path is
// given by flag or configuration
func newOracle(a *app, storePath string) (*oracle.Oracle, error) {
	if storePath == "" {
		storePath = a.cfg.Oracle.StorePath
	}

	cfg := oracle.Config{
		Engine: a.engine,
		Logger: a.logger,
		Cache: cache.Config{
			MaxItems: a.cfg.Oracle.CacheMaxItems,
			TTL:      a.cfg.Oracle.CacheTTL.Duration,
		},
	}

	if storePath != "" {
		st, err := store.NewSQLiteVerdictStore(store.SQLiteConfig{Path: storePath})
		if err != nil {
			return nil, err
		}
		cfg.Store = st
	}

	return oracle.New(cfg), nil
}
