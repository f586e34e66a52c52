package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/whilec/foundation/core/error"

	"github.com/msto63/whilec/internal/oracle/store"
)

var (
	verdictsDB        string
	verdictsOlderThan time.Duration
)

var verdictsCmd = &cobra.Command{
	Use:   "verdicts",
	Short: "Verwaltet gespeicherte Verdikte",
	Long: `Zeigt Statistiken über die SQLite-Verdiktdatenbank oder entfernt
alte Einträge.`,
}

var verdictsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Zeigt Verdikt-Statistiken",
	RunE:  runVerdictsStats,
}

var verdictsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Entfernt alte Verdikte",
	Long: `Entfernt Verdikte, die älter als --older-than sind.

Beispiele:
  whilec verdicts prune --older-than 720h --cache-db ./data/verdicts.db`,
	RunE: runVerdictsPrune,
}

func init() {
	rootCmd.AddCommand(verdictsCmd)
	verdictsCmd.AddCommand(verdictsStatsCmd)
	verdictsCmd.AddCommand(verdictsPruneCmd)

	verdictsCmd.PersistentFlags().StringVar(&verdictsDB, "cache-db", "", "SQLite-Datei für Verdikte (default: oracle.store_path)")
	verdictsPruneCmd.Flags().DurationVar(&verdictsOlderThan, "older-than", 30*24*time.Hour, "Mindestalter der zu entfernenden Verdikte")
}

func openVerdictStore(cmd *cobra.Command) (*store.SQLiteVerdictStore, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, err
	}

	path := verdictsDB
	if path == "" {
		path = a.cfg.Oracle.StorePath
	}
	if path == "" {
		return nil, mdwerror.New("no verdict store configured (use --cache-db or oracle.store_path)").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("verdicts")
	}
	return store.NewSQLiteVerdictStore(store.SQLiteConfig{Path: path})
}

func runVerdictsStats(cmd *cobra.Command, args []string) error {
	st, err := openVerdictStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Verdikte:    %d\n", stats.Total)
	fmt.Fprintf(w, "  accepted:  %d\n", stats.Accepted)
	fmt.Fprintf(w, "  rejected:  %d\n", stats.Rejected)

	codes := make([]string, 0, len(stats.ByCode))
	for code := range stats.ByCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "    %-22s %d\n", code+":", stats.ByCode[code])
	}
	if !stats.LastCheck.IsZero() {
		fmt.Fprintf(w, "Letzte Prüfung: %s\n", stats.LastCheck.Format(time.RFC3339))
	}
	return nil
}

func runVerdictsPrune(cmd *cobra.Command, args []string) error {
	st, err := openVerdictStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.Prune(cmd.Context(), verdictsOlderThan)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d Verdikte entfernt\n", n)
	return nil
}
