package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pipeline-hud/core/loader"
	"pipeline-hud/core/logstore"
	"pipeline-hud/core/middleware/auth"
	"pipeline-hud/core/middleware/rayid"
	"pipeline-hud/core/middleware/requestlog"
	"pipeline-hud/core/model"
	"pipeline-hud/core/session"
	"pipeline-hud/core/state"

	"pipeline-hud/feature/journal"
	"pipeline-hud/feature/snapshot"
	"pipeline-hud/feature/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "pipeline-hud/docs/swagger"
)

// @title Pipeline HUD API
// @version 1.0
// @description Read API over the reconciled build and deploy dashboard view.
// @host localhost:8080
// @BasePath /

var (
	startSnapshot    string
	startFromStorage bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Sync the dashboard view and serve the HTTP API",
	Long: `Connects to the view stream, keeps the reconciled view up to date and serves it over HTTP.
With --snapshot, replays an exported snapshot read-only instead of connecting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if startSnapshot != "" {
			cfg.Stream.Snapshot = startSnapshot
			cfg.Stream.SnapshotFromStorage = startFromStorage
		}

		// 2. Optional backends
		client, err := openStorage(cfg.Storage)
		if err != nil {
			return err
		}
		db := openJournal(cfg.Database, logg)

		// 3. View state shared by the sync loop and the API
		logs := logstore.New(cfg.LogStore.MaxLength)
		holder := state.NewHolder(model.NewView(logs))

		source, err := newSource(cfg, client, logg)
		if err != nil {
			return err
		}

		journalFeature := journal.NewFeature(db, logg)
		var opts []session.Option
		if journalFeature.IsEnabled() {
			opts = append(opts, session.WithRecorder(journalFeature.Service()))
		}
		runner := session.NewRunner(source, holder, logs, logg, opts...)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
		})

		// RayID first so every log line carries it
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		// 5. Load Features
		mgr := loader.NewManager()
		mgr.Register(view.NewFeature(holder, logs, logg))
		mgr.Register(snapshot.NewFeature(client, cfg.Storage, holder, logs, cfg.LogStore.ExportBytes, logg))
		mgr.Register(journalFeature)

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Run the sync loop and the server until a signal arrives
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return runner.Run(gctx)
		})
		g.Go(func() error {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logg.Info("Shutting down server...")
			return app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout())
		})

		return g.Wait()
	},
}

func init() {
	startCmd.Flags().StringVar(&startSnapshot, "snapshot", "", "replay an exported snapshot (file path, or object key with --from-storage)")
	startCmd.Flags().BoolVar(&startFromStorage, "from-storage", false, "read --snapshot from object storage")
	RootCmd.AddCommand(startCmd)
}
