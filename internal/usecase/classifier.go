package usecase

import (
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
)

// Classifier buckets a fetched schedule into upcoming-today matches and
// completed-yesterday matches. Exclusion and completed-status sets are
// configuration data, injected at construction.
type Classifier struct {
	excluded  map[string]struct{}
	completed map[string]struct{}
}

func NewClassifier(excludedCompetitionIDs, completedStatuses []string) *Classifier {
	excluded := make(map[string]struct{}, len(excludedCompetitionIDs))
	for _, id := range excludedCompetitionIDs {
		excluded[id] = struct{}{}
	}
	completed := make(map[string]struct{}, len(completedStatuses))
	for _, status := range completedStatuses {
		completed[match.NormalizeStatus(status)] = struct{}{}
	}

	return &Classifier{excluded: excluded, completed: completed}
}

// Classify drops excluded competitions, then buckets the rest by the
// window. A match outside both windows, in the yesterday window without
// a completed status, or with an unparseable kickoff is dropped
// silently.
func (c *Classifier) Classify(matches []match.Match, window TimeWindow) (today, completed []match.Match) {
	today = make([]match.Match, 0, len(matches))
	completed = make([]match.Match, 0, len(matches))

	for _, m := range matches {
		if _, skip := c.excluded[m.CompetitionID]; skip {
			continue
		}
		kickoff, ok := m.Kickoff()
		if !ok {
			continue
		}

		switch {
		case window.InToday(kickoff):
			today = append(today, m)
		case window.InYesterday(kickoff) && c.IsCompleted(m.MatchStatus):
			completed = append(completed, m)
		}
	}

	return today, completed
}

func (c *Classifier) IsCompleted(status string) bool {
	_, ok := c.completed[match.NormalizeStatus(status)]
	return ok
}
