package snapshots

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/goal"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/snapshot"
)

// UnsubscribePlaceholder is the literal token the mailing collaborator
// replaces with a per-subscriber unsubscribe link.
const UnsubscribePlaceholder = "%%UNSUBSCRIBE_URL%%"

type pageView struct {
	LastUpdated  string
	Competitions []competitionView
	Results      []resultGroupView
	HasContent   bool
	Unsubscribe  template.URL
}

type competitionView struct {
	Name    string
	Matches []matchView
}

type matchView struct {
	Home         string
	Away         string
	DateTime     string
	Stadium      string
	MatchDay     int
	Season       int
	NeutralVenue bool
}

type resultGroupView struct {
	Name     string
	Date     string
	MatchDay int
	Season   int
	Results  []resultView
}

type resultView struct {
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
	Goals     []goalView
}

type goalView struct {
	Label string
	URL   string
}

func renderHTML(w io.Writer, out snapshot.MatchesOutput, loc *time.Location) error {
	return pageTemplate.Execute(w, buildPageView(out, loc))
}

func buildPageView(out snapshot.MatchesOutput, loc *time.Location) pageView {
	// template.URL keeps the literal token out of URL escaping; the
	// mailing collaborator substitutes the real link later.
	view := pageView{
		LastUpdated: out.LastUpdated,
		Unsubscribe: template.URL(UnsubscribePlaceholder),
	}

	for _, m := range out.Matches {
		idx := len(view.Competitions) - 1
		if idx < 0 || view.Competitions[idx].Name != m.CompetitionName {
			view.Competitions = append(view.Competitions, competitionView{Name: m.CompetitionName})
			idx++
		}
		view.Competitions[idx].Matches = append(view.Competitions[idx].Matches, matchView{
			Home:         m.HomeTeamName,
			Away:         m.AwayTeamName,
			DateTime:     formatKickoff(m, loc),
			Stadium:      formatStadium(m),
			MatchDay:     m.MatchDay,
			Season:       m.Season,
			NeutralVenue: m.NeutralVenue,
		})
	}

	for _, result := range out.PreviousResults {
		m := result.Match
		idx := len(view.Results) - 1
		if idx < 0 || view.Results[idx].Name != m.CompetitionName {
			view.Results = append(view.Results, resultGroupView{
				Name:     m.CompetitionName,
				Date:     formatDate(m, loc),
				MatchDay: m.MatchDay,
				Season:   m.Season,
			})
			idx++
		}
		view.Results[idx].Results = append(view.Results[idx].Results, resultView{
			Home:      m.HomeTeamName,
			Away:      m.AwayTeamName,
			HomeGoals: m.HomeTeamGoals,
			AwayGoals: m.AwayTeamGoals,
			Goals:     buildGoalViews(result.Goals),
		})
	}

	view.HasContent = len(view.Competitions) > 0 || len(view.Results) > 0
	return view
}

func buildGoalViews(goals []goal.Event) []goalView {
	out := make([]goalView, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalView{Label: goalLabel(g), URL: g.VideoURL})
	}
	return out
}

// goalLabel renders "⚽ Name 63' (OG) (P)", degrading to "⚽ Goal" for
// the synthetic no-data record.
func goalLabel(g goal.Event) string {
	const ball = "⚽"
	if g.PlayerName == "" {
		return ball + " Goal"
	}

	var b strings.Builder
	b.WriteString(ball + " " + g.PlayerName)
	if g.Minute > 0 {
		fmt.Fprintf(&b, " %d'", g.Minute)
	}
	if g.IsOwnGoal {
		b.WriteString(" (OG)")
	}
	if g.IsPenalty {
		b.WriteString(" (P)")
	}
	return b.String()
}

func formatKickoff(m match.Match, loc *time.Location) string {
	kickoff, ok := m.Kickoff()
	if !ok {
		return m.PlannedKickoffTime
	}
	return snapshot.FormatDisplayTime(kickoff, loc)
}

func formatDate(m match.Match, loc *time.Location) string {
	kickoff, ok := m.Kickoff()
	if !ok {
		return ""
	}
	return kickoff.In(loc).Format("01/02/2006")
}

func formatStadium(m match.Match) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{m.StadiumName, m.StadiumCity, m.StadiumCountry} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

var pageTemplate = template.Must(template.New("today").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Major League Soccer Today</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container { max-width: 900px; margin: 0 auto; }
        h1 {
            color: white;
            text-align: center;
            font-size: 2.5rem;
            font-weight: 700;
            margin-bottom: 12px;
            text-shadow: 0 2px 4px rgba(0,0,0,0.3);
        }
        .last-updated { text-align: center; color: rgba(255,255,255,0.85); font-size: 13px; margin-bottom: 32px; }
        .competition-card {
            background: white;
            border-radius: 16px;
            padding: 24px;
            margin-bottom: 20px;
            box-shadow: 0 8px 32px rgba(0,0,0,0.1);
        }
        .competition {
            font-size: 12px;
            color: #8b5cf6;
            font-weight: 600;
            text-transform: uppercase;
            letter-spacing: 0.5px;
            margin-bottom: 12px;
        }
        .match { padding: 12px 0; border-bottom: 1px solid #e5e7eb; }
        .match:last-child { border-bottom: none; }
        .matchup { font-size: 20px; font-weight: 700; color: #1f2937; margin-bottom: 8px; }
        .score { font-weight: 800; color: #111827; letter-spacing: 0.5px; white-space: nowrap; }
        .datetime { font-size: 15px; font-weight: 600; color: #dc2626; margin-bottom: 8px; }
        .stadium { font-size: 15px; font-weight: 600; color: #374151; margin-bottom: 6px; }
        .details, .gray { font-size: 13px; color: #9ca3af; font-weight: 500; }
        .results-header { font-size: 12px; color: #64748b; font-weight: 600; margin-bottom: 12px; }
        .goal-links { margin-top: 6px; }
        .goal-link, .goal-item { font-size: 11px; color: #6b7280; font-weight: 400; margin-right: 8px; text-decoration: none; }
        .goal-link:hover { color: #3b82f6; text-decoration: underline; }
        .no-games { text-align: center; color: white; font-size: 18px; font-weight: 500; margin-top: 100px; opacity: 0.9; }
        .footer { text-align: center; margin-top: 32px; }
        .footer a { color: rgba(255,255,255,0.7); font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Major League Soccer Today</h1>
        <div class="last-updated">Last updated: {{.LastUpdated}}</div>
{{- if .HasContent}}
{{- range .Competitions}}
        <div class="competition-card">
            <div class="competition">{{.Name}}</div>
{{- range .Matches}}
            <div class="match">
                <div class="matchup"><strong>{{.Home}} vs {{.Away}}</strong></div>
                <div class="datetime">{{.DateTime}}</div>
                <div class="stadium">{{.Stadium}}</div>
                <div class="details">
                    <span class="gray">Match Day {{.MatchDay}}</span> &bull;
                    <span class="gray">{{.Season}} Season</span>
                    {{- if .NeutralVenue}} &bull; <span class="gray">Neutral Venue</span>{{end}}
                </div>
            </div>
{{- end}}
        </div>
{{- end}}
{{- range .Results}}
        <div class="competition-card">
            <div class="competition">{{.Name}}</div>
            <div class="results-header">{{.Date}} &middot; Match Day {{.MatchDay}} &middot; {{.Season}} Season</div>
{{- range .Results}}
            <div class="match">
                <div class="matchup">
                    <strong>{{.Home}}</strong>
                    <span class="score">{{.HomeGoals}} &ndash; {{.AwayGoals}}</span>
                    <strong>{{.Away}}</strong>
                </div>
{{- if .Goals}}
                <div class="goal-links">
{{- range .Goals}}
{{- if .URL}}
                    <a href="{{.URL}}" class="goal-link" target="_blank" rel="noopener">{{.Label}}</a>
{{- else}}
                    <span class="goal-item">{{.Label}}</span>
{{- end}}
{{- end}}
                </div>
{{- end}}
            </div>
{{- end}}
        </div>
{{- end}}
{{- else}}
        <div class="no-games">No games scheduled for today</div>
{{- end}}
        <div class="footer"><a href="{{.Unsubscribe}}">Unsubscribe</a></div>
    </div>
</body>
</html>
`))
