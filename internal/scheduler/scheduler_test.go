package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"studytrack-service/internal/models"
)

type fakeLister struct {
	byDate map[string][]models.UserProgress
	err    error
}

func (f *fakeLister) FindByLastStudyDate(ctx context.Context, date string) ([]models.UserProgress, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDate[date], nil
}

type fakeSink struct {
	published []string
}

func (f *fakeSink) Publish(eventType string, payload interface{}) error {
	f.published = append(f.published, eventType)
	return nil
}

func TestSweepOnce_FlagsYesterdayStudiers(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	lister := &fakeLister{byDate: map[string][]models.UserProgress{
		"2024-06-14": {
			{UserID: "user-1", CurrentStreak: 5, LastStudyDate: "2024-06-14"},
			{UserID: "user-2", CurrentStreak: 1, LastStudyDate: "2024-06-14"},
		},
		"2024-06-15": {
			{UserID: "user-3", CurrentStreak: 2, LastStudyDate: "2024-06-15"},
		},
	}}
	sink := &fakeSink{}
	s := New(lister, sink)

	n, err := s.sweepOnce(context.Background(), now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 at-risk users, got %d", n)
	}
	if len(sink.published) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(sink.published))
	}
	for _, e := range sink.published {
		if e != "study.streak.at_risk" {
			t.Errorf("Unexpected event %s", e)
		}
	}
}

func TestSweepOnce_NoSinkConfigured(t *testing.T) {
	s := New(&fakeLister{}, nil)
	n, err := s.sweepOnce(context.Background(), time.Now())
	if err != nil || n != 0 {
		t.Errorf("Expected no-op without a sink, got n=%d err=%v", n, err)
	}
}

func TestSweepOnce_ListFailure(t *testing.T) {
	listErr := errors.New("store unreachable")
	s := New(&fakeLister{err: listErr}, &fakeSink{})
	if _, err := s.sweepOnce(context.Background(), time.Now()); !errors.Is(err, listErr) {
		t.Errorf("Expected wrapped list error, got %v", err)
	}
}
