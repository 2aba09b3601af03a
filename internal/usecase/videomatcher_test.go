package usecase

import (
	"testing"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/video"
)

func TestMatchVideos_TitleAndTagMatching(t *testing.T) {
	t.Parallel()

	pool := []video.Item{
		{Title: "HIGHLIGHTS: Columbus Crew vs. FC Cincinnati"},
		{Title: "Weekly roundup", Tags: []string{"cincinnati", "goals"}},
		{Title: "Top saves of the week"},
	}

	matched := MatchVideos(pool, "Columbus Crew", "FC Cincinnati")
	if len(matched) != 2 {
		t.Fatalf("expected two relevant videos, got %d", len(matched))
	}
	if matched[0].Title != pool[0].Title || matched[1].Title != pool[1].Title {
		t.Fatalf("unexpected matches: %+v", matched)
	}
}

func TestMatchVideos_SymmetricInTeamOrder(t *testing.T) {
	t.Parallel()

	pool := []video.Item{
		{Title: "Crew strike twice in derby win"},
		{Title: "Lions hold on in Orlando"},
		{Title: "Unrelated preview show"},
	}

	forward := MatchVideos(pool, "Columbus Crew", "Orlando City")
	reversed := MatchVideos(pool, "Orlando City", "Columbus Crew")

	if len(forward) != len(reversed) {
		t.Fatalf("matching not symmetric: %d vs %d", len(forward), len(reversed))
	}
	for i := range forward {
		if forward[i].Title != reversed[i].Title {
			t.Fatalf("matching not symmetric at %d: %q vs %q", i, forward[i].Title, reversed[i].Title)
		}
	}
}

func TestMatchVideos_IgnoresShortWordsAndPunctuation(t *testing.T) {
	t.Parallel()

	pool := []video.Item{
		{Title: "FC on the rise"},
		{Title: "St. Louis CITY stun the visitors!"},
	}

	// Every word of the team name is too short to be distinctive.
	if matched := MatchVideos(pool, "FC", "A B C"); matched != nil {
		t.Fatalf("expected no distinctive words to match nothing, got %+v", matched)
	}

	matched := MatchVideos(pool, "St. Louis CITY SC", "Sporting Kansas City")
	if len(matched) != 1 || matched[0].Title != pool[1].Title {
		t.Fatalf("expected normalized match on distinctive words, got %+v", matched)
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"St. Louis CITY SC":  "st louis city sc",
		"D.C. United!":       "dc united",
		"  Atlanta  United ": "  atlanta  united ",
	}
	for in, want := range cases {
		if got := normalizeText(in); got != want {
			t.Fatalf("normalizeText(%q)=%q want %q", in, got, want)
		}
	}
}
