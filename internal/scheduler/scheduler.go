package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"studytrack-service/internal/models"
	"studytrack-service/internal/scoring"

	"github.com/go-co-op/gocron"
)

// DefaultSweepHour is when the daily at-risk sweep runs (server time).
const DefaultSweepHour = 18

// ProgressLister is the read-only slice of the progress store the sweep
// needs.
type ProgressLister interface {
	FindByLastStudyDate(ctx context.Context, date string) ([]models.UserProgress, error)
}

type EventSink interface {
	Publish(eventType string, payload interface{}) error
}

// Scheduler runs the daily streak-at-risk sweep: users whose last study date
// is yesterday still have a live streak but have not continued it today.
// The sweep only publishes events; all streak state changes stay in the
// accumulator.
type Scheduler struct {
	scheduler *gocron.Scheduler
	progress  ProgressLister
	events    EventSink
}

func New(progress ProgressLister, events EventSink) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		progress:  progress,
		events:    events,
	}
}

// Start schedules the daily sweep and runs the scheduler in the background.
func (s *Scheduler) Start() {
	hour := DefaultSweepHour
	if h := os.Getenv("STREAK_SWEEP_HOUR"); h != "" {
		if parsed, err := strconv.Atoi(h); err == nil && parsed >= 0 && parsed <= 23 {
			hour = parsed
		}
	}

	s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(s.sweep)
	s.scheduler.StartAsync()
	log.Printf("Streak sweep scheduled daily at %02d:00", hour)
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if n, err := s.sweepOnce(ctx, time.Now()); err != nil {
		log.Printf("Streak sweep failed: %v", err)
	} else {
		log.Printf("Streak sweep: %d streaks at risk", n)
	}
}

// sweepOnce publishes one study.streak.at_risk event per user whose streak
// would reset if they skip today. Returns how many were flagged.
func (s *Scheduler) sweepOnce(ctx context.Context, now time.Time) (int, error) {
	if s.events == nil {
		return 0, nil
	}
	yesterday := now.AddDate(0, 0, -1).Format(scoring.DateLayout)

	atRisk, err := s.progress.FindByLastStudyDate(ctx, yesterday)
	if err != nil {
		return 0, fmt.Errorf("list at-risk users: %w", err)
	}

	for _, p := range atRisk {
		if err := s.events.Publish("study.streak.at_risk", map[string]interface{}{
			"user_id": p.UserID,
			"streak":  p.CurrentStreak,
		}); err != nil {
			log.Printf("Failed to publish at-risk event for %s: %v", p.UserID, err)
		}
	}
	return len(atRisk), nil
}
