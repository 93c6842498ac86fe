package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"livecast/core/config"
	"livecast/core/database"
	"livecast/feature/live"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent live page visits",
	Long:  `Reads the visit history from the configured database and prints the most recent visits, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.Database.Enabled() {
			return live.ErrHistoryDisabled
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		repo := live.NewHistoryRepository(db)
		if err := repo.Migrate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		visits, err := repo.Recent(ctx, limit)
		if err != nil {
			return err
		}
		return printVisits(cmd.OutOrStdout(), visits)
	},
}

func printVisits(out io.Writer, visits []live.Visit) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VISITED AT\tCONNECTION\tIP\tISP\tCOUNTRY")
	for _, v := range visits {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s (%s)\n",
			v.VisitedAt.UTC().Format(time.RFC3339), v.ConnectionID, v.IP, v.ISP, v.CountryName, v.CountryCode)
	}
	return w.Flush()
}

func init() {
	RootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", live.DefaultHistoryLimit, "Maximum number of visits")
}
