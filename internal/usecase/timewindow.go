package usecase

import "time"

// TimeWindow holds the civil-day boundaries one run classifies against.
// All three instants are derived from "now" in a single configured
// timezone; the same zone drives display formatting so classification
// and rendering agree on what "today" means.
type TimeWindow struct {
	TodayStart     time.Time
	TodayEnd       time.Time
	YesterdayStart time.Time
}

// ComputeWindow derives the window from the current instant in loc.
// TodayEnd is the last representable millisecond of the civil day.
func ComputeWindow(now time.Time, loc *time.Location) TimeWindow {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	todayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	return TimeWindow{
		TodayStart:     todayStart,
		TodayEnd:       todayStart.Add(24*time.Hour - time.Millisecond),
		YesterdayStart: todayStart.Add(-24 * time.Hour),
	}
}

// InToday reports whether t falls inside [TodayStart, TodayEnd].
func (w TimeWindow) InToday(t time.Time) bool {
	return !t.Before(w.TodayStart) && !t.After(w.TodayEnd)
}

// InYesterday reports whether t falls inside [YesterdayStart, TodayStart).
func (w TimeWindow) InYesterday(t time.Time) bool {
	return !t.Before(w.YesterdayStart) && t.Before(w.TodayStart)
}

// Tomorrow is the civil day after today, used as the far edge of the
// three-day schedule query.
func (w TimeWindow) Tomorrow() time.Time {
	return w.TodayStart.Add(24 * time.Hour)
}
