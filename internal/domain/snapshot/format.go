package snapshot

import "time"

const displayTimeLayout = "01/02/2006 3:04 PM"

// zoneLabels collapses the US standard/daylight abbreviation pairs to
// the season-neutral label the snapshot has always shown.
var zoneLabels = map[string]string{
	"EST": "ET",
	"EDT": "ET",
	"CST": "CT",
	"CDT": "CT",
	"MST": "MT",
	"MDT": "MT",
	"PST": "PT",
	"PDT": "PT",
}

// FormatDisplayTime renders t in loc with a short zone label, e.g.
// "08/29/2026 7:30 PM ET". Zones outside the US pairs keep their own
// abbreviation so a reconfigured APP_TIME_ZONE never shows a wrong
// label.
func FormatDisplayTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return local.Format(displayTimeLayout) + " " + zoneLabel(local)
}

func zoneLabel(t time.Time) string {
	abbr := t.Format("MST")
	if label, ok := zoneLabels[abbr]; ok {
		return label
	}
	return abbr
}
