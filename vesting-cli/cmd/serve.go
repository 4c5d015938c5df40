package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/satlayer/satlayer-vesting/vesting-api/logger"
	"github.com/satlayer/satlayer-vesting/vesting-api/metrics"
	"github.com/satlayer/satlayer-vesting/vesting-cli/api"
	"github.com/satlayer/satlayer-vesting/vesting-cli/chain"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "To serve the HTTP API and the metrics of the local chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withChain(func(c *chain.Chain) error {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()

				metricsErr := metrics.NewVestingMetrics(viper.GetString("metrics.listen"), c.Runtime.Name(), c.Registry, c.Logger).Start(ctx)

				router := gin.New()
				router.Use(gin.Recovery())
				api.SetupRoutes(router, c.Runtime)
				httpServer := &http.Server{
					Addr:    viper.GetString("api.listen"),
					Handler: router,
				}

				serveErr := make(chan error, 1)
				go func() {
					c.Logger.Info("Starting HTTP API", logger.WithField("addr", httpServer.Addr))
					if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						serveErr <- err
					}
				}()

				quit := make(chan os.Signal, 1)
				signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
				defer signal.Stop(quit)

				var err error
				select {
				case <-quit:
					c.Logger.Info("Shutting down server")
				case err = <-serveErr:
				case err = <-metricsErr:
				}

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
					c.Logger.Error("HTTP API forced to shutdown", logger.WithField("error", shutdownErr))
				}
				cancel()
				for range metricsErr {
				}
				return err
			})
		},
	}
}
