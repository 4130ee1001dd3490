package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"routeboard/cmd"
	"routeboard/internal/adapters/out/postgres/orderrepo"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string
	var verbose bool

	root := &cobra.Command{
		Use:          "routeboard",
		Short:        "Delivery order boards with shared reordering sessions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	setup := func() (cmd.Config, *gorm.DB, *slog.Logger, error) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

		config, err := cmd.LoadConfig(envFile)
		if err != nil {
			return cmd.Config{}, nil, nil, err
		}

		db, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{})
		if err != nil {
			return cmd.Config{}, nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		return config, db, logger, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			config, db, logger, err := setup()
			if err != nil {
				return err
			}
			return serve(c.Context(), config, db, logger)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			_, db, logger, err := setup()
			if err != nil {
				return err
			}
			if err := db.WithContext(c.Context()).AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("schema migrated")
			return nil
		},
	})

	return root
}

func serve(ctx context.Context, config cmd.Config, db *gorm.DB, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(config, db, logger)

	e, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		jobManager.StopAll()
		err := e.Shutdown(shutdownCtx)
		app.Registry().CloseAll()
		return err
	})

	return g.Wait()
}
