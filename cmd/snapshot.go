package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pipeline-hud/core/logstore"
	"pipeline-hud/core/model"
	"pipeline-hud/core/reconcile"
	"pipeline-hud/core/session"
	"pipeline-hud/core/state"
	"pipeline-hud/core/stream"
	"pipeline-hud/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showFormat      string
	showFromStorage bool
	exportOut       string
	exportTimeout   time.Duration
)

// snapshotCmd is the parent command for snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect and export view snapshots",
}

// snapshotShowCmd reconciles a snapshot and prints a summary.
var snapshotShowCmd = &cobra.Command{
	Use:   "show <file|key>",
	Short: "Print a summary of an exported snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		load := stream.FileLoader(args[0])
		if showFromStorage {
			cfg.Storage.Enabled = true
			client, err := openStorage(cfg.Storage)
			if err != nil {
				return err
			}
			load = stream.StorageLoader(client, cfg.Storage.Bucket, args[0])
		}

		data, err := load(cmd.Context())
		if err != nil {
			return err
		}
		var wrapped model.Snapshot
		_ = json.Unmarshal(data, &wrapped)
		delta, err := stream.DecodeSnapshot(data)
		if err != nil {
			return fmt.Errorf("failed to decode snapshot %s: %w", args[0], err)
		}

		logs := logstore.New(cfg.LogStore.MaxLength)
		result := reconcile.Reconcile(model.NewView(logs), delta)

		return writeSummary(cmd.OutOrStdout(), summarize(result.View, logs, wrapped.CreatedAt), showFormat)
	},
}

// snapshotExportCmd captures the first complete view of the live stream.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Capture the live view and export it",
	Long: `Connects to the view stream, waits for the first complete view and writes it
as a snapshot, to --out or to object storage when --out is not set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		// 1. Sync until the first view is published
		logs := logstore.New(cfg.LogStore.MaxLength)
		holder := state.NewHolder(model.NewView(logs))
		runner := session.NewRunner(stream.NewWebsocketSource(cfg.Stream, logg), holder, logs, logg)

		ctx, cancel := context.WithTimeout(cmd.Context(), exportTimeout)
		defer cancel()

		runErr := make(chan error, 1)
		go func() { runErr <- runner.Run(ctx) }()

		if err := waitForView(ctx, holder, runErr); err != nil {
			return err
		}

		// 2. Write it out
		if exportOut != "" {
			snap := snapshot.Build(holder.Current(), logs, cfg.LogStore.ExportBytes, time.Now().UTC())
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			if err := os.WriteFile(exportOut, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportOut, err)
			}
			logg.Info("Snapshot written", zap.String("path", exportOut))
			return nil
		}

		client, err := openStorage(cfg.Storage)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("object storage is disabled, pass --out to write a file")
		}
		svc := snapshot.NewService(client, cfg.Storage, holder, logs, cfg.LogStore.ExportBytes, logg)
		key, err := svc.Export(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

func waitForView(ctx context.Context, holder *state.Holder, runErr <-chan error) error {
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for holder.Version() == 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("no complete view received: %w", ctx.Err())
		case err := <-runErr:
			if err == nil {
				err = ctx.Err()
			}
			return fmt.Errorf("view stream stopped: %w", err)
		case <-tick.C:
		}
	}
	return nil
}

func init() {
	snapshotShowCmd.Flags().StringVar(&showFormat, "format", "json", "output format (json or yaml)")
	snapshotShowCmd.Flags().BoolVar(&showFromStorage, "from-storage", false, "read the snapshot from object storage")
	snapshotExportCmd.Flags().StringVar(&exportOut, "out", "", "write the snapshot to this file instead of object storage")
	snapshotExportCmd.Flags().DurationVar(&exportTimeout, "timeout", 30*time.Second, "how long to wait for the first complete view")

	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	RootCmd.AddCommand(snapshotCmd)
}
