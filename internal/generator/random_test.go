package generator

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

var fixedNow = time.Date(2026, 5, 20, 14, 37, 12, 500, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestIntStaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := NewSeeded(rapid.Uint64().Draw(rt, "seed"), fixedClock)
		min := rapid.IntRange(-100, 100).Draw(rt, "min")
		max := rapid.IntRange(min, min+50).Draw(rt, "max")

		for i := 0; i < 50; i++ {
			got := r.Int(min, max)
			if got < min || got > max {
				rt.Fatalf("Int(%d, %d) = %d", min, max, got)
			}
		}
	})
}

func TestIntCoversBothEnds(t *testing.T) {
	r := NewSeeded(7, fixedClock)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[r.Int(1, 3)] = true
	}
	for _, want := range []int{1, 2, 3} {
		if !seen[want] {
			t.Errorf("Int(1, 3) never returned %d", want)
		}
	}
}

func TestPickPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pick on an empty slice should panic")
		}
	}()
	Pick(NewSeeded(1, fixedClock), []int64{})
}

func TestPickReturnsMember(t *testing.T) {
	r := NewSeeded(3, fixedClock)
	items := []string{"mobile", "tablet", "desktop"}
	for i := 0; i < 20; i++ {
		got := Pick(r, items)
		if got != "mobile" && got != "tablet" && got != "desktop" {
			t.Fatalf("Pick() = %q, not in items", got)
		}
	}
}

func TestPastDate(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo int
		wantDay time.Time
	}{
		{"today", 0, time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)},
		{"one day", 1, time.Date(2026, 5, 19, 0, 0, 0, 0, time.UTC)},
		{"two weeks", 14, time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC)},
		{"across month", 25, time.Date(2026, 4, 25, 0, 0, 0, 0, time.UTC)},
	}

	r := NewSeeded(11, fixedClock)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				got := r.PastDate(tt.daysAgo)
				y, m, d := got.Date()
				if y != tt.wantDay.Year() || m != tt.wantDay.Month() || d != tt.wantDay.Day() {
					t.Fatalf("PastDate(%d) = %v, want day %v", tt.daysAgo, got, tt.wantDay.Format("2006-01-02"))
				}
				if got.Hour() < 8 || got.Hour() > 20 {
					t.Errorf("hour %d outside [8,20]", got.Hour())
				}
				if got.Minute() < 0 || got.Minute() > 59 {
					t.Errorf("minute %d outside [0,59]", got.Minute())
				}
				if got.Second() != 0 || got.Nanosecond() != 0 {
					t.Errorf("seconds not zeroed: %v", got)
				}
			}
		})
	}
}

func TestParseTimeline(t *testing.T) {
	tests := []struct {
		in      string
		want    Timeline
		wantErr bool
	}{
		{"", TimelineSequential, false},
		{"sequential", TimelineSequential, false},
		{"Indexed", TimelineIndexed, false},
		{"random", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeline(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeline(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTimeline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
