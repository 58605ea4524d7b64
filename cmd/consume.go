package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-doclocks/app/queue"
	"github.com/vibast-solutions/ms-go-doclocks/config"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Consume queued messages",
	Long:  "Consume queued messages from Redis streams.",
}

// init registers consume subcommands.
func init() {
	consumeCmd.AddCommand(consumeEventsCmd)
	rootCmd.AddCommand(consumeCmd)
}

var consumeEventsCmd = &cobra.Command{
	Use:   "events [consumer_name]",
	Short: "Start the lock event consumer",
	Long:  "Start a worker that reads lock events from the Redis stream and writes them to the log.",
	Args:  cobra.ExactArgs(1),
	Run:   runConsumeEvents,
}

// runConsumeEvents starts the lock event consumer worker.
func runConsumeEvents(_ *cobra.Command, args []string) {
	consumerName := args[0]

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := openRedis(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer rdb.Close()

	consumerLogger := logger.WithField("consumer", consumerName)
	consumer := queue.NewEventConsumer(rdb, eventLogHandler(consumerLogger), consumerName, consumerLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Received shutdown signal, stopping consumer...")
		cancel()
	}()

	if err := consumer.Run(ctx); err != nil {
		logger.WithError(err).Fatal("Consumer error")
	}

	logger.Info("Consumer stopped")
}

func eventLogHandler(logger logrus.FieldLogger) queue.Handler {
	return queue.HandlerFunc(func(_ context.Context, msg queue.EventMessage) error {
		logger.WithFields(msg.Fields()).Info("lock event")
		return nil
	})
}
