package snapshot

import (
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/goal"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
)

// Enrichment states how a previous result's goal list was produced.
const (
	EnrichmentEvents    = "events"
	EnrichmentVideoOnly = "video-only"
	EnrichmentNone      = "none"
)

// PreviousResult pairs one completed match with its ordered goal
// sequence. Built once per run and never mutated afterwards.
type PreviousResult struct {
	Match      match.Match  `json:"match"`
	Goals      []goal.Event `json:"goals"`
	Enrichment string       `json:"enrichment"`
}

// MatchesOutput is the snapshot handed to the display layer.
type MatchesOutput struct {
	LastUpdated     string           `json:"lastUpdated"`
	Matches         []match.Match    `json:"matches"`
	PreviousResults []PreviousResult `json:"previousResults"`
}
