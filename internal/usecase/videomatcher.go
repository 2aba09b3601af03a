package usecase

import (
	"strings"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/video"
)

// minDistinctiveLen excludes short connector words ("FC", "de", "of")
// from team-name matching.
const minDistinctiveLen = 3

// MatchVideos returns the videos relevant to a match, in feed order. A
// video is relevant when its normalized title or any normalized tag
// contains a distinctive word from either team's name. Precision-lossy
// on purpose: shared words can pull in unrelated videos and team names
// made of short words match nothing.
func MatchVideos(pool []video.Item, homeTeam, awayTeam string) []video.Item {
	words := distinctiveWords(homeTeam)
	words = append(words, distinctiveWords(awayTeam)...)
	if len(words) == 0 {
		return nil
	}

	out := make([]video.Item, 0, len(pool))
	for _, item := range pool {
		if videoMentionsAny(item, words) {
			out = append(out, item)
		}
	}
	return out
}

func videoMentionsAny(item video.Item, words []string) bool {
	title := normalizeText(item.Title)
	for _, word := range words {
		if title != "" && strings.Contains(title, word) {
			return true
		}
		for _, tag := range item.Tags {
			if normalized := normalizeText(tag); normalized != "" && strings.Contains(normalized, word) {
				return true
			}
		}
	}
	return false
}

// normalizeText lowercases and strips everything but letters, digits
// and spaces.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func distinctiveWords(teamName string) []string {
	fields := strings.Fields(normalizeText(teamName))
	out := make([]string, 0, len(fields))
	for _, word := range fields {
		if len(word) >= minDistinctiveLen {
			out = append(out, word)
		}
	}
	return out
}
