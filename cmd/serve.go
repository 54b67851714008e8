package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"smart-employee-api/internal/config"
	"smart-employee-api/internal/logging"
	"smart-employee-api/internal/metrics"
	"smart-employee-api/internal/router"
	"smart-employee-api/internal/server"
	"smart-employee-api/internal/synth"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			gin.SetMode(cfg.GinMode)

			var extra []synth.Option
			if cfg.Metrics.Enabled {
				extra = append(extra, synth.WithObserver(metrics.NewRecorder()))
			}
			gen := newSynthesizer(cfg, extra...)

			engine, err := router.New(cfg, gen, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg.Addr(), server.Handler(engine, cfg.CORSAllowedOrigins), logger, cfg.ShutdownTimeout)
			if err := srv.Run(ctx); err != nil {
				logger.WithError(err).Error("server error")
				return err
			}
			return nil
		},
	}
}
