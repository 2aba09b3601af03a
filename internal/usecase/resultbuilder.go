package usecase

import (
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/goal"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/snapshot"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/video"
)

// BuildResult merges one completed match with its goal events and the
// full video pool into a PreviousResult. Pure function of its inputs:
// identical inputs yield identical output and the inputs are never
// mutated.
//
// With structured events the i-th goal gets the i-th matched video
// link, surplus goals reuse the last available link and no link is
// fabricated. Without events a single synthetic goal carries the first
// matched link so the display still gets a highlight, or the result
// stays goal-less when nothing matched.
func BuildResult(m match.Match, events []goal.Event, pool []video.Item) snapshot.PreviousResult {
	links := matchedLinks(pool, m.HomeTeamName, m.AwayTeamName)

	if len(events) > 0 {
		goals := make([]goal.Event, len(events))
		copy(goals, events)
		for i := range goals {
			if len(links) == 0 {
				break
			}
			idx := i
			if idx >= len(links) {
				idx = len(links) - 1
			}
			goals[i].VideoURL = links[idx]
		}
		return snapshot.PreviousResult{Match: m, Goals: goals, Enrichment: snapshot.EnrichmentEvents}
	}

	if len(links) > 0 {
		return snapshot.PreviousResult{
			Match:      m,
			Goals:      []goal.Event{goal.Placeholder(links[0])},
			Enrichment: snapshot.EnrichmentVideoOnly,
		}
	}

	return snapshot.PreviousResult{Match: m, Goals: []goal.Event{}, Enrichment: snapshot.EnrichmentNone}
}

func matchedLinks(pool []video.Item, homeTeam, awayTeam string) []string {
	matched := MatchVideos(pool, homeTeam, awayTeam)
	links := make([]string, 0, len(matched))
	for _, item := range matched {
		if link := item.Link(); link != "" {
			links = append(links, link)
		}
	}
	return links
}
