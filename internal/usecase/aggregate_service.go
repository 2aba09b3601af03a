package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/goal"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/snapshot"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/video"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/logging"
)

const scheduleDateLayout = "2006-01-02"

// AggregateService runs one aggregation pass: schedule fetch,
// classification, sorting, best-effort enrichment, snapshot assembly.
type AggregateService struct {
	schedule ScheduleProvider
	events   EventProvider
	videos   VideoProvider

	classifier *Classifier
	sorter     PrioritySorter

	seasonID string
	loc      *time.Location
	workers  int
	logger   *logging.Logger
	now      func() time.Time
}

type AggregateConfig struct {
	SeasonID               string
	Location               *time.Location
	EventWorkers           int
	ExcludedCompetitionIDs []string
	CompetitionPriority    map[string]int
	CompletedStatuses      []string
}

func NewAggregateService(
	schedule ScheduleProvider,
	events EventProvider,
	videos VideoProvider,
	cfg AggregateConfig,
	logger *logging.Logger,
) *AggregateService {
	if logger == nil {
		logger = logging.Default()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	workers := cfg.EventWorkers
	if workers < 1 {
		workers = 1
	}

	return &AggregateService{
		schedule:   schedule,
		events:     events,
		videos:     videos,
		classifier: NewClassifier(cfg.ExcludedCompetitionIDs, cfg.CompletedStatuses),
		sorter:     NewPrioritySorter(cfg.CompetitionPriority),
		seasonID:   cfg.SeasonID,
		loc:        loc,
		workers:    workers,
		logger:     logger,
		now:        time.Now,
	}
}

// Run executes one pass. A schedule fetch failure is fatal and returns
// an error without assembling anything; enrichment fetch failures only
// degrade the snapshot.
func (s *AggregateService) Run(ctx context.Context) (snapshot.MatchesOutput, error) {
	window := ComputeWindow(s.now(), s.loc)
	gte := window.YesterdayStart.In(s.loc).Format(scheduleDateLayout)
	lte := window.Tomorrow().In(s.loc).Format(scheduleDateLayout)

	matches, err := s.schedule.FetchSchedule(ctx, s.seasonID, gte, lte)
	if err != nil {
		return snapshot.MatchesOutput{}, fmt.Errorf("fetch schedule season_id=%s: %w", s.seasonID, err)
	}

	today, completed := s.classifier.Classify(matches, window)
	s.sorter.Sort(today)
	s.sorter.Sort(completed)

	s.logger.InfoContext(ctx, "schedule classified",
		"fetched", len(matches),
		"today", len(today),
		"completed_yesterday", len(completed),
	)

	videos, eventsByMatch := s.fetchEnrichment(ctx, completed)

	results := make([]snapshot.PreviousResult, 0, len(completed))
	for i, m := range completed {
		results = append(results, BuildResult(m, eventsByMatch[i], videos))
	}

	return snapshot.MatchesOutput{
		LastUpdated:     snapshot.FormatDisplayTime(s.now(), s.loc),
		Matches:         today,
		PreviousResults: results,
	}, nil
}

// fetchEnrichment runs the video-feed fetch concurrently with the
// per-match event fetches. Pairing happens afterwards by bucket index,
// so completion order never affects the output. Every failure here is
// degraded to an empty result.
func (s *AggregateService) fetchEnrichment(ctx context.Context, completed []match.Match) ([]video.Item, [][]goal.Event) {
	eventsByMatch := make([][]goal.Event, len(completed))
	var videosPool []video.Item

	var wg sync.WaitGroup

	if len(completed) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := s.videos.FetchRecentVideos(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "video feed fetch degraded, continuing without highlights", "error", err)
				return
			}
			videosPool = items
		}()
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		// Pool construction only fails on invalid sizes; fall back to
		// sequential fetches rather than dropping enrichment.
		s.logger.WarnContext(ctx, "create event worker pool failed, fetching sequentially", "error", err)
		for i, m := range completed {
			eventsByMatch[i] = s.fetchMatchEvents(ctx, m.MatchID)
		}
		wg.Wait()
		return videosPool, eventsByMatch
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, m := range completed {
		i, m := i, m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			eventsByMatch[i] = s.fetchMatchEvents(ctx, m.MatchID)
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit event fetch failed", "match_id", m.MatchID, "error", err)
		}
	}

	workers.Wait()
	wg.Wait()

	return videosPool, eventsByMatch
}

func (s *AggregateService) fetchMatchEvents(ctx context.Context, matchID string) []goal.Event {
	events, err := s.events.FetchGoalEvents(ctx, matchID)
	if err != nil {
		s.logger.WarnContext(ctx, "goal event fetch degraded, continuing without events", "match_id", matchID, "error", err)
		return nil
	}
	return events
}
