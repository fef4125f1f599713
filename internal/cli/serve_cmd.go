package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jamolkhon5/projassist/internal/auth"
	"github.com/Jamolkhon5/projassist/internal/bot"
	"github.com/Jamolkhon5/projassist/internal/handler"
	"github.com/Jamolkhon5/projassist/internal/repository"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.HTTPAddr
			}

			var issuer *auth.Issuer
			if app.Auth != nil && app.Auth.Enabled() {
				if err := app.Auth.Validate(); err != nil {
					return err
				}
				issuer = auth.NewIssuer(*app.Auth)
				log.Println("Bearer token authentication enabled")
			}

			r := handler.NewRouter(handler.RouterOptions{
				Assistant:      app.Assistant,
				Metrics:        app.Metrics,
				Integrations:   repository.NewIntegrations(),
				Issuer:         issuer,
				AllowedOrigins: app.Config.AllowedOrigins,
				RequestTimeout: app.Config.RequestTimeout,
			})

			srv := &http.Server{
				Addr:    addr,
				Handler: r,
			}

			go func() {
				log.Printf("Listening on %s", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("listen: %s\n", err)
				}
			}()

			waitForSignal()
			log.Println("Shutdown Server ...")

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			log.Println("Server exiting")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from HTTP_ADDR)")
	return cmd
}

func newBotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram chat front-end",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.ValidateBot(); err != nil {
				return err
			}
			b, err := bot.NewBot(app.Config.TelegramToken, app.Config.TelegramPollTimeout, app.Dialogue, app.Sessions, app.Metrics)
			if err != nil {
				return err
			}
			b.Start()

			waitForSignal()
			b.Stop()
			return nil
		},
	}
}

func waitForSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
