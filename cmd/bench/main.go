package main

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/QuangTung97/club-reminder/config"
	"github.com/QuangTung97/club-reminder/model"
	"github.com/QuangTung97/club-reminder/repository"
	"github.com/QuangTung97/club-reminder/service/reminder"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		seedCommand(),
		concurrentRunsCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func newNullString(s string) sql.NullString {
	return sql.NullString{Valid: true, String: s}
}

var rsvpStatuses = []model.RSVPStatus{
	model.RSVPStatusGoing,
	model.RSVPStatusNotGoing,
	model.RSVPStatusMaybe,
}

// seedEvents inserts events starting at now + 24h, each with its own creator and numRSVPs RSVPs
func seedEvents(numEvents int, numRSVPs int) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	db := conf.MySQL.MustConnect(logger)
	defer func() { _ = db.Close() }()

	provider := repository.NewProvider(db)
	eventRepo := repository.NewEvent()
	rsvpRepo := repository.NewRSVP()

	clubID := uuid.New().String()
	start := time.Now().Add(config.ReminderLeadTime).Truncate(time.Second)

	err := provider.Transact(context.Background(), func(ctx context.Context) error {
		for i := 0; i < numEvents; i++ {
			event := model.Event{
				ID:        uuid.New().String(),
				Title:     fmt.Sprintf("Movie Night %d", i+1),
				Slug:      newNullString(fmt.Sprintf("movie-night-%d", i+1)),
				StartAt:   start,
				ClubID:    newNullString(clubID),
				CreatedBy: newNullString(uuid.New().String()),
			}
			if err := eventRepo.UpsertEvent(ctx, event); err != nil {
				return err
			}

			for k := 0; k < numRSVPs; k++ {
				err := rsvpRepo.UpsertRSVP(ctx, model.RSVP{
					EventID: event.ID,
					UserID:  uuid.New().String(),
					Status:  newNullString(string(rsvpStatuses[k%len(rsvpStatuses)])),
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		panic(err)
	}

	logger.Info("seeded events",
		zap.Int("events", numEvents),
		zap.Int("rsvps_per_event", numRSVPs),
		zap.Time("start_at", start),
	)
}

// concurrentRuns starts overlapping invocations, without claim_events the same event can be
// notified more than once
func concurrentRuns(numThreads int) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	db := conf.MySQL.MustConnect(logger)
	defer func() { _ = db.Close() }()

	service := reminder.NewService(
		conf.Reminder,
		repository.NewProvider(db),
		repository.NewEvent(),
		repository.NewRSVP(),
		repository.NewNotification(),
	)

	results := make([]reminder.Result, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()
			results[threadIndex] = service.RunEventReminders(context.Background())
		}()
	}
	wg.Wait()

	totalEvents := 0
	totalNotifications := 0
	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			fmt.Println("ERROR:", r.Err)
			continue
		}
		totalEvents += r.EventsProcessed
		totalNotifications += r.NotificationsCreated
	}

	fmt.Println("TOTAL TIME:", time.Since(totalStart))
	fmt.Println("CLAIM EVENTS:", conf.Reminder.ClaimEvents)
	fmt.Println("EVENTS PROCESSED:", totalEvents)
	fmt.Println("NOTIFICATIONS CREATED:", totalNotifications)
	fmt.Println("FAILURES:", failures)
}

func seedCommand() *cobra.Command {
	var numEvents int
	var numRSVPs int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "insert events starting in 24 hours with RSVPs",
		Run: func(cmd *cobra.Command, args []string) {
			seedEvents(numEvents, numRSVPs)
		},
	}
	cmd.Flags().IntVar(&numEvents, "events", 10, "number of events")
	cmd.Flags().IntVar(&numRSVPs, "rsvps", 20, "number of RSVPs per event")
	return cmd
}

func concurrentRunsCommand() *cobra.Command {
	var numThreads int

	cmd := &cobra.Command{
		Use:   "concurrent",
		Short: "run the reminder job from many goroutines at once",
		Run: func(cmd *cobra.Command, args []string) {
			concurrentRuns(numThreads)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", 8, "number of concurrent invocations")
	return cmd
}
