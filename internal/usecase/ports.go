package usecase

import (
	"context"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/goal"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/video"
)

// ScheduleProvider fetches the bounded schedule window. Errors carry
// ErrFatalFetch: nothing downstream can run without the schedule.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, seasonID, gteDate, lteDate string) ([]match.Match, error)
}

// EventProvider fetches structured goal events for one match. Errors
// carry ErrDegradedFetch and are substituted with an empty slice.
type EventProvider interface {
	FetchGoalEvents(ctx context.Context, matchID string) ([]goal.Event, error)
}

// VideoProvider fetches the recent-highlights feed. Errors carry
// ErrDegradedFetch and are substituted with an empty slice.
type VideoProvider interface {
	FetchRecentVideos(ctx context.Context) ([]video.Item, error)
}
