package goal

// Event is one goal inside a completed match. Minute 0 means the minute
// is unknown; an empty PlayerName with both flags false is the synthetic
// record emitted when no structured goal data was available.
type Event struct {
	Minute     int    `json:"minute"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id,omitempty"`
	TeamName   string `json:"team_name,omitempty"`
	IsOwnGoal  bool   `json:"is_own_goal"`
	IsPenalty  bool   `json:"is_penalty"`
	VideoURL   string `json:"video_url,omitempty"`
}

// Placeholder builds the synthetic no-structured-data record, optionally
// carrying a highlight link.
func Placeholder(videoURL string) Event {
	return Event{VideoURL: videoURL}
}

func (e Event) IsPlaceholder() bool {
	return e.PlayerName == "" && !e.IsOwnGoal && !e.IsPenalty
}
