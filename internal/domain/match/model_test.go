package match

import (
	"testing"
	"time"
)

func TestKickoff(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{
			name: "utc",
			raw:  "2026-08-29T23:30:00Z",
			want: time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "offset",
			raw:  "2026-08-29T19:30:00-04:00",
			want: time.Date(2026, 8, 29, 19, 30, 0, 0, time.FixedZone("", -4*3600)),
			ok:   true,
		},
		{name: "empty", raw: "", ok: false},
		{name: "whitespace", raw: "   ", ok: false},
		{name: "date only", raw: "2026-08-29", ok: false},
		{name: "garbage", raw: "soon", ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := (Match{PlannedKickoffTime: tc.raw}).Kickoff()
			if ok != tc.ok {
				t.Fatalf("Kickoff(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if tc.ok && !got.Equal(tc.want) {
				t.Fatalf("Kickoff(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestKickoff_OffsetEquivalence(t *testing.T) {
	t.Parallel()

	utc, ok := (Match{PlannedKickoffTime: "2026-08-29T23:30:00Z"}).Kickoff()
	if !ok {
		t.Fatal("utc form failed to parse")
	}
	eastern, ok := (Match{PlannedKickoffTime: "2026-08-29T19:30:00-04:00"}).Kickoff()
	if !ok {
		t.Fatal("offset form failed to parse")
	}
	if !utc.Equal(eastern) {
		t.Fatalf("equivalent kickoffs differ: %v vs %v", utc, eastern)
	}
}

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Full-Time":    "full-time",
		"  FINAL  ":    "final",
		"ft":           "ft",
		"":             "",
		"Post-Match\t": "post-match",
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}
