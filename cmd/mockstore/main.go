// Command shopgrip-mockstore serves the fixture storefront API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shopgrip/internal/logging"
	"shopgrip/internal/mockstore"
	"shopgrip/internal/storefront"
)

var (
	addr    string
	latency time.Duration
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:          "shopgrip-mockstore",
	Short:        "Serve a fixture storefront for shopgrip",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "Listen address")
	rootCmd.Flags().DurationVar(&latency, "latency", 0, "Artificial delay before each search response")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	logger, err := logging.New(logging.Options{Debug: debug})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	srv := &http.Server{
		Addr:              addr,
		Handler:           mockstore.NewRouter(storefront.DemoCatalog(), mockstore.Options{Latency: latency, Logger: logger}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr), zap.Duration("latency", latency))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
