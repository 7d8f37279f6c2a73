package cmd

import (
	"fmt"
	"text/tabwriter"

	"pipeline-hud/feature/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	journalLimit int
	journalKind  string
)

// journalCmd is the parent command for sync journal operations.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage the sync journal",
}

// journalMigrateCmd creates the journal table.
var journalMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the journal table",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := journalService()
		if err != nil {
			return err
		}
		if err := svc.Migrate(); err != nil {
			return err
		}
		zap.L().Info("Journal table ready", zap.String("table", journal.TableName))
		return nil
	},
}

// journalListCmd prints recent journal events.
var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print recent sync events",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := journalService()
		if err != nil {
			return err
		}
		events, err := svc.List(cmd.Context(), journal.Query{Kind: journalKind, Limit: journalLimit})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tKIND\tEPOCH\tCONN\tDETAIL")
		for _, ev := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ev.CreatedAt.Format("2006-01-02 15:04:05"), ev.Kind, ev.Epoch, ev.ConnID, ev.Detail)
		}
		return w.Flush()
	},
}

func journalService() (*journal.Service, error) {
	cfg, logg, err := bootstrap()
	if err != nil {
		return nil, err
	}
	// The command exists to reach the database, so connect even when start would not
	cfg.Database.Enabled = true
	db := openJournal(cfg.Database, logg)
	if db == nil {
		return nil, fmt.Errorf("%w: cannot connect to %s database", journal.ErrDisabled, cfg.Database.Driver)
	}
	return journal.NewService(db, logg), nil
}

func init() {
	journalListCmd.Flags().IntVar(&journalLimit, "limit", journal.DefaultLimit, "maximum number of events")
	journalListCmd.Flags().StringVar(&journalKind, "kind", "", "only events of this kind")

	journalCmd.AddCommand(journalMigrateCmd)
	journalCmd.AddCommand(journalListCmd)
	RootCmd.AddCommand(journalCmd)
}
