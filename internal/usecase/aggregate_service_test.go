package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/jbaranski/majorleaguesoccer-today/internal/config"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/goal"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/snapshot"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/video"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/logging"
)

type fakeScheduleProvider struct {
	matches []match.Match
	err     error
	gte     string
	lte     string
}

func (f *fakeScheduleProvider) FetchSchedule(_ context.Context, _, gte, lte string) ([]match.Match, error) {
	f.gte, f.lte = gte, lte
	return f.matches, f.err
}

type fakeEventProvider struct {
	byMatch map[string][]goal.Event
	err     error
}

func (f *fakeEventProvider) FetchGoalEvents(_ context.Context, matchID string) ([]goal.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byMatch[matchID], nil
}

type fakeVideoProvider struct {
	items []video.Item
	err   error
}

func (f *fakeVideoProvider) FetchRecentVideos(context.Context) ([]video.Item, error) {
	return f.items, f.err
}

func newTestService(schedule ScheduleProvider, events EventProvider, videos VideoProvider) *AggregateService {
	svc := NewAggregateService(schedule, events, videos, AggregateConfig{
		SeasonID:               "MLS-SEA-0001K9",
		Location:               time.UTC,
		EventWorkers:           2,
		ExcludedCompetitionIDs: config.DefaultExcludedCompetitionIDs(),
		CompetitionPriority:    config.DefaultCompetitionPriority(),
		CompletedStatuses:      config.DefaultCompletedStatuses(),
	}, logging.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC) }
	return svc
}

func TestAggregateService_Run_FullPass(t *testing.T) {
	t.Parallel()

	schedule := &fakeScheduleProvider{matches: []match.Match{
		{
			MatchID:            "today-1",
			CompetitionID:      "MLS-COM-000001",
			CompetitionName:    "MLS Regular Season",
			HomeTeamName:       "Columbus Crew",
			AwayTeamName:       "FC Cincinnati",
			PlannedKickoffTime: "2026-08-29T23:30:00Z",
			MatchStatus:        "scheduled",
		},
		{
			MatchID:            "excluded-1",
			CompetitionID:      "MLS-COM-000003",
			PlannedKickoffTime: "2026-08-29T21:00:00Z",
			MatchStatus:        "scheduled",
		},
		{
			MatchID:            "done-1",
			CompetitionID:      "MLS-COM-000001",
			CompetitionName:    "MLS Regular Season",
			HomeTeamName:       "Inter Miami",
			AwayTeamName:       "Orlando City",
			PlannedKickoffTime: "2026-08-28T23:30:00Z",
			MatchStatus:        "Full-Time",
			HomeTeamGoals:      2,
			AwayTeamGoals:      0,
		},
	}}
	events := &fakeEventProvider{byMatch: map[string][]goal.Event{
		"done-1": {
			{Minute: 15, PlayerName: "Lionel Messi"},
			{Minute: 80, PlayerName: "Luis Suarez"},
		},
	}}
	videos := &fakeVideoProvider{items: []video.Item{
		{Title: "Miami cruise past Orlando", URL: "https://example.com/v1"},
	}}

	out, err := newTestService(schedule, events, videos).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, "2026-08-28", schedule.gte)
	require.Equal(t, "2026-08-30", schedule.lte)

	require.Len(t, out.Matches, 1)
	require.Equal(t, "today-1", out.Matches[0].MatchID)

	require.Len(t, out.PreviousResults, 1)
	result := out.PreviousResults[0]
	require.Equal(t, snapshot.EnrichmentEvents, result.Enrichment)
	require.Len(t, result.Goals, 2)
	require.Equal(t, "https://example.com/v1", result.Goals[0].VideoURL)
	require.Equal(t, "https://example.com/v1", result.Goals[1].VideoURL)

	// The service runs in UTC here, so the stamp must carry the UTC
	// label rather than a hard-coded Eastern one.
	require.Equal(t, "08/29/2026 3:00 PM UTC", out.LastUpdated)
}

func TestAggregateService_Run_ScheduleFailureIsFatal(t *testing.T) {
	t.Parallel()

	schedule := &fakeScheduleProvider{err: fmt.Errorf("%w: stats api status=503", ErrFatalFetch)}

	_, err := newTestService(schedule, &fakeEventProvider{}, &fakeVideoProvider{}).Run(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFatalFetch))
}

func TestAggregateService_Run_DegradedEnrichmentStillProducesSnapshot(t *testing.T) {
	t.Parallel()

	schedule := &fakeScheduleProvider{matches: []match.Match{
		{
			MatchID:            "done-1",
			CompetitionID:      "MLS-COM-000001",
			HomeTeamName:       "Inter Miami",
			AwayTeamName:       "Orlando City",
			PlannedKickoffTime: "2026-08-28T23:30:00Z",
			MatchStatus:        "final",
			HomeTeamGoals:      1,
			AwayTeamGoals:      1,
		},
	}}
	events := &fakeEventProvider{err: fmt.Errorf("%w: events status=500", ErrDegradedFetch)}
	videos := &fakeVideoProvider{err: fmt.Errorf("%w: feed unreachable", ErrDegradedFetch)}

	out, err := newTestService(schedule, events, videos).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, out.PreviousResults, 1)
	result := out.PreviousResults[0]
	require.Equal(t, snapshot.EnrichmentNone, result.Enrichment)
	require.Empty(t, result.Goals)
}

func TestAggregateService_Run_ManyParallelEventFetches(t *testing.T) {
	t.Parallel()

	matches := make([]match.Match, 0, 8)
	byMatch := make(map[string][]goal.Event, 8)
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("done-%d", i)
		matches = append(matches, match.Match{
			MatchID:            id,
			CompetitionID:      "MLS-COM-000001",
			HomeTeamName:       fmt.Sprintf("Home %d", i),
			AwayTeamName:       fmt.Sprintf("Away %d", i),
			PlannedKickoffTime: fmt.Sprintf("2026-08-28T%02d:00:00Z", 10+i),
			MatchStatus:        "ft",
		})
		byMatch[id] = []goal.Event{{Minute: i + 1, PlayerName: fmt.Sprintf("Scorer %d", i)}}
	}

	out, err := newTestService(
		&fakeScheduleProvider{matches: matches},
		&fakeEventProvider{byMatch: byMatch},
		&fakeVideoProvider{},
	).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, out.PreviousResults, 8)
	for i, result := range out.PreviousResults {
		require.Equal(t, fmt.Sprintf("done-%d", i), result.Match.MatchID)
		require.Len(t, result.Goals, 1)
		require.Equal(t, i+1, result.Goals[0].Minute)
	}
}
