package cmd

import (
	"context"

	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Republish every group and membership so downstream copies converge",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer socializeDB.Close()

		// Initialize event publisher
		publisher, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event publisher")
		}
		defer publisher.Close()

		ctx := context.Background()

		groups, err := socializeDB.ListGroups(ctx, models.GroupOrderDate)
		if err != nil {
			log.Fatal().Err(err).Msg("Error fetching groups")
		}

		memberships, err := socializeDB.ListMemberships(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Error fetching memberships")
		}

		log.Info().Int("groups", len(groups)).Int("memberships", len(memberships)).
			Msg("Starting reconciliation process...")

		failed := reconcile(publisher, groups, memberships)

		log.Info().Int("failed", failed).Msg("Group publishing process completed.")
	},
}

// reconcile publishes a created event for every group followed by an added
// event for every membership, and returns how many could not be published.
func reconcile(publisher events.Notifier, groups []models.Group, memberships []models.GroupMember) int {
	failed := 0

	for _, group := range groups {
		event := events.NewGroupEvent(events.GroupCreated, group.GroupID)
		event.Name = group.Name
		event.DateAdded = group.DateAdded

		if err := publisher.Notify(event); err != nil {
			log.Error().Err(err).Int64("group_id", group.GroupID).Msg("Failed to publish group")
			failed++
		}
	}

	for _, m := range memberships {
		event := events.NewGroupEvent(events.MemberAdded, m.GroupID)
		event.UserID = m.UserID

		if err := publisher.Notify(event); err != nil {
			log.Error().Err(err).Int64("group_id", m.GroupID).Int64("user_id", m.UserID).
				Msg("Failed to publish membership")
			failed++
		}
	}

	return failed
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
