package match

import (
	"strings"
	"time"
)

// Match is one scheduled or completed fixture as served by the stats API.
// JSON tags mirror the upstream schedule payload so matches pass through
// to the snapshot unchanged.
type Match struct {
	MatchID            string `json:"match_id"`
	CompetitionID      string `json:"competition_id"`
	CompetitionName    string `json:"competition_name"`
	HomeTeamName       string `json:"home_team_name"`
	AwayTeamName       string `json:"away_team_name"`
	PlannedKickoffTime string `json:"planned_kickoff_time"`
	MatchStatus        string `json:"match_status"`
	StadiumName        string `json:"stadium_name"`
	StadiumCity        string `json:"stadium_city"`
	StadiumCountry     string `json:"stadium_country"`
	MatchDay           int    `json:"match_day"`
	MatchType          string `json:"match_type,omitempty"`
	Season             int    `json:"season"`
	NeutralVenue       bool   `json:"neutral_venue"`
	HomeTeamGoals      int    `json:"home_team_goals"`
	AwayTeamGoals      int    `json:"away_team_goals"`
	Result             string `json:"result,omitempty"`
}

// Kickoff parses the planned kickoff instant. The API serves RFC 3339
// with an explicit offset; a value that fails to parse reports ok=false
// and the match is treated as outside every window.
func (m Match) Kickoff() (time.Time, bool) {
	raw := strings.TrimSpace(m.PlannedKickoffTime)
	if raw == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func NormalizeStatus(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
