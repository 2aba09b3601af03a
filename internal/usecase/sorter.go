package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
)

// PrioritySorter orders matches by competition priority, then kickoff,
// then home-team name. Competitions missing from the table sort after
// every mapped one.
type PrioritySorter struct {
	priority map[string]int
}

func NewPrioritySorter(priority map[string]int) PrioritySorter {
	return PrioritySorter{priority: priority}
}

// Sort orders items in place with a stable three-key sort. Kickoffs are
// compared as parsed timestamps rather than raw strings so a provider
// offset change cannot reorder the output; unparseable values fall back
// to the raw string.
func (s PrioritySorter) Sort(items []match.Match) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := s.priorityOf(items[i].CompetitionID), s.priorityOf(items[j].CompetitionID)
		if pi != pj {
			return pi < pj
		}

		ki, iok := items[i].Kickoff()
		kj, jok := items[j].Kickoff()
		switch {
		case iok && jok:
			if !ki.Equal(kj) {
				return ki.Before(kj)
			}
		default:
			if cmp := strings.Compare(items[i].PlannedKickoffTime, items[j].PlannedKickoffTime); cmp != 0 {
				return cmp < 0
			}
		}

		return items[i].HomeTeamName < items[j].HomeTeamName
	})
}

func (s PrioritySorter) priorityOf(competitionID string) int {
	if p, ok := s.priority[competitionID]; ok {
		return p
	}
	return math.MaxInt
}
