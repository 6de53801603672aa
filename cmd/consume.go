package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Run the Pulsar consumer that replays remote group events into the database",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer socializeDB.Close()

		if appCfg.Pulsar.URL == "" || appCfg.Pulsar.TopicConsumer == "" {
			log.Fatal().Msg("pulsar url and topicConsumer are required to consume events")
		}

		// Initialize event consumer
		consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.TopicConsumer, appCfg.Pulsar.Subscription)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event consumer")
		}
		defer consumer.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Consume messages
		for {
			log.Debug().Msg("Waiting for messages...")
			msg, err := consumer.ReceiveMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					log.Info().Msg("Consumer stopped")
					return
				}
				log.Error().Err(err).Msg("Error receiving message")
				continue
			}

			event, err := events.DecodeGroupEvent(msg.Payload())
			if err != nil {
				log.Error().Err(err).Str("message_id", msg.ID().String()).Msg("Error decoding group event")
				consumer.Nack(msg)
				continue
			}

			logger := log.With().
				Str("event_id", event.EventID.String()).
				Str("action", string(event.Action)).
				Int64("group_id", event.GroupID).
				Logger()

			if err := events.Apply(ctx, socializeDB, event); err != nil {
				logger.Error().Err(err).Msg("Failed to apply group event")
				consumer.Nack(msg)
				continue
			}

			logger.Info().Msg("Applied group event")
			consumer.Ack(msg)
		}
	},
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
