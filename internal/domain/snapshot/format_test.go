package snapshot

import (
	"testing"
	"time"
)

func TestFormatDisplayTime(t *testing.T) {
	t.Parallel()

	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load America/New_York: %v", err)
	}
	central, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load America/Chicago: %v", err)
	}

	cases := []struct {
		name string
		t    time.Time
		loc  *time.Location
		want string
	}{
		{
			name: "eastern summer",
			t:    time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC),
			loc:  eastern,
			want: "08/29/2026 7:30 PM ET",
		},
		{
			name: "eastern winter",
			t:    time.Date(2026, 1, 15, 0, 30, 0, 0, time.UTC),
			loc:  eastern,
			want: "01/14/2026 7:30 PM ET",
		},
		{
			name: "central",
			t:    time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC),
			loc:  central,
			want: "08/29/2026 6:30 PM CT",
		},
		{
			name: "utc",
			t:    time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "08/29/2026 11:30 PM UTC",
		},
		{
			name: "named fixed zone keeps its abbreviation",
			t:    time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC),
			loc:  time.FixedZone("JST", 9*3600),
			want: "08/30/2026 8:30 AM JST",
		},
		{
			name: "nil location falls back to utc",
			t:    time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC),
			loc:  nil,
			want: "08/29/2026 11:30 PM UTC",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDisplayTime(tc.t, tc.loc); got != tc.want {
				t.Fatalf("FormatDisplayTime = %q, want %q", got, tc.want)
			}
		})
	}
}
