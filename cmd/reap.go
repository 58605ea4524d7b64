package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-doclocks/config"
)

var reapCmd = &cobra.Command{
	Use:   "reap",
	Short: "Release expired locks",
	Long:  "Run the expiry reaper on its own. With --once a single sweep is made and the process exits.",
	Run:   runReap,
}

var reapOnce bool

func init() {
	reapCmd.Flags().BoolVar(&reapOnce, "once", false, "sweep once and exit")
	rootCmd.AddCommand(reapCmd)
}

func runReap(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize dependencies")
	}
	defer rt.Close()

	r := rt.reaper()

	if reapOnce {
		released, err := r.SweepOnce(ctx)
		if err != nil {
			logger.WithError(err).Error("Sweep failed")
			return
		}
		logger.WithField("released", released).Info("Sweep finished")
		return
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Received shutdown signal, stopping reaper...")
		cancel()
	}()

	r.Run(ctx)
	logger.Info("Reaper stopped")
}
