package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/bunx"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HyperTool API server",
	Long:  `Starts the HTTP server with the authentication and resource endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bunx.NewDB(cfg.DatabaseURL, cfg.MaxDBConnections)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer bunx.Close(db)

		log.Printf("Connected to database (%s)", bunx.DetectDatabaseType(cfg.DatabaseURL))

		handler, err := server.NewH2CHandler(server.RouterOptions{
			Cfg:       cfg,
			Issuer:    auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
			Users:     repository.NewBunUserRepository(db),
			Clients:   repository.NewBunClientRepository(db),
			Invoices:  repository.NewBunInvoiceRepository(db),
			Projects:  repository.NewBunProjectRepository(db),
			Expenses:  repository.NewBunExpenseRepository(db),
			FollowUps: repository.NewBunFollowUpRepository(db),
			Plans:     repository.NewBunPlanRepository(db),
		})
		if err != nil {
			return fmt.Errorf("failed to build router: %w", err)
		}

		srv := &http.Server{
			Addr:         cfg.ServerAddr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			log.Printf("Starting server on %s", cfg.ServerAddr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			log.Printf("Received signal %v, shutting down gracefully", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}

			log.Printf("Server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
