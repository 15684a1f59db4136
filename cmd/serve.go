package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/openglam/artroulette/internal/handlers"
	"github.com/openglam/artroulette/internal/harvardart"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var baseURL string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the artwork discovery web interface",
		Long: `Starts the Artroulette web interface on the specified port.

The page shows one random artwork at a time. Click the artist, culture, or
century to ban that value; click a ban chip to lift it. Requires
HARVARD_ART_API_KEY (a .env file is honored).`,
		Example: `  # Start server on default port 8888
  artroulette serve

  # Start server on custom port
  artroulette serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := os.Getenv("HARVARD_ART_API_KEY")
			if apiKey == "" {
				slog.Warn("HARVARD_ART_API_KEY is not set; discovery requests will fail until it is configured")
			}

			catalog := harvardart.NewClient(baseURL, apiKey)
			handler := handlers.New(catalog)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/sessions", handler.HandleSessions)
			mux.HandleFunc("/api/sessions/", handler.HandleSessionDetail)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: cors.Default().Handler(mux),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Artroulette interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Catalog API base URL (defaults to the public endpoint)")

	return cmd
}
