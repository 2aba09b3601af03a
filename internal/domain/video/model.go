package video

import "strings"

const slugBaseURL = "https://www.mlssoccer.com/video/"

// Item is one highlight video candidate from the content feed. Nothing
// about the feed shape is guaranteed; every field is optional and
// association to a match happens purely by text matching.
type Item struct {
	Title      string
	Slug       string
	ContentURL string
	URL        string
	Tags       []string
	Date       string
}

// Link resolves the best available URL for the item, or "" when the
// item carries nothing linkable.
func (i Item) Link() string {
	if u := strings.TrimSpace(i.ContentURL); u != "" {
		return u
	}
	if u := strings.TrimSpace(i.URL); u != "" {
		return u
	}
	if s := strings.TrimSpace(i.Slug); s != "" {
		return slugBaseURL + strings.TrimPrefix(s, "/")
	}
	return ""
}
