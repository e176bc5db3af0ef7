package schedule

import (
	"testing"
	"time"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

func TestDailySlots(t *testing.T) {
	day := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		window   domain.Window
		interval domain.Interval
		want     []time.Time
	}{
		{
			name:     "hourly over full day window",
			window:   domain.NewWindow(8, 22),
			interval: 60,
			want: []time.Time{
				at(8, 0), at(9, 0), at(10, 0), at(11, 0), at(12, 0),
				at(13, 0), at(14, 0), at(15, 0), at(16, 0), at(17, 0),
				at(18, 0), at(19, 0), at(20, 0), at(21, 0), at(22, 0),
			},
		},
		{
			name:     "half hourly includes window end",
			window:   domain.NewWindow(7, 9),
			interval: 30,
			want: []time.Time{
				at(7, 0), at(7, 30), at(8, 0), at(8, 30), at(9, 0),
			},
		},
		{
			name:     "interval not dividing span keeps window start",
			window:   domain.NewWindow(8, 10),
			interval: 45,
			want: []time.Time{
				at(8, 0), at(8, 45), at(9, 30),
			},
		},
		{
			name:     "interval wider than window yields start only",
			window:   domain.NewWindow(9, 10),
			interval: 90,
			want:     []time.Time{at(9, 0)},
		},
		{
			name:     "zero length window yields single slot",
			window:   domain.NewWindow(12, 12),
			interval: 15,
			want:     []time.Time{at(12, 0)},
		},
		{
			name:     "once per day yields window start",
			window:   domain.NewWindow(8, 22),
			interval: domain.OnceDaily,
			want:     []time.Time{at(8, 0)},
		},
		{
			name:     "inverted window yields nothing",
			window:   domain.NewWindow(22, 8),
			interval: 60,
			want:     nil,
		},
		{
			name:     "out of range start hour yields nothing",
			window:   domain.NewWindow(-1, 22),
			interval: 60,
			want:     nil,
		},
		{
			name:     "negative interval yields nothing",
			window:   domain.NewWindow(8, 22),
			interval: -15,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailySlots(day, tt.window, tt.interval)
			if len(got) != len(tt.want) {
				t.Fatalf("DailySlots() returned %d slots, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("DailySlots()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDailySlotsUsesDayOfArgument(t *testing.T) {
	window := domain.NewWindow(8, 10)

	day := time.Date(2025, 6, 11, 23, 59, 0, 0, time.UTC)
	got := DailySlots(day, window, 60)

	if len(got) != 3 {
		t.Fatalf("DailySlots() returned %d slots, want 3", len(got))
	}
	for i, slot := range got {
		if slot.Day() != 11 {
			t.Errorf("DailySlots()[%d] = %v, want a slot on day 11", i, slot)
		}
	}
}

func TestFilterAfter(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
	}
	slots := []time.Time{at(8, 0), at(9, 0), at(10, 0)}

	tests := []struct {
		name   string
		cutoff time.Time
		want   int
	}{
		{name: "cutoff before all keeps all", cutoff: at(7, 0), want: 3},
		{name: "cutoff between keeps later", cutoff: at(8, 30), want: 2},
		{name: "cutoff equal to slot drops that slot", cutoff: at(9, 0), want: 1},
		{name: "cutoff after all keeps none", cutoff: at(11, 0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterAfter(slots, tt.cutoff)
			if len(got) != tt.want {
				t.Errorf("filterAfter() kept %d slots, want %d", len(got), tt.want)
			}
			for _, kept := range got {
				if !kept.After(tt.cutoff) {
					t.Errorf("filterAfter() kept %v, not after cutoff %v", kept, tt.cutoff)
				}
			}
		})
	}
}

func TestSlotsFromAnchor(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
	}

	got := slotsFrom(at(7, 45), at(9, 0), 30)
	want := []time.Time{at(7, 45), at(8, 15), at(8, 45)}

	if len(got) != len(want) {
		t.Fatalf("slotsFrom() returned %d slots, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("slotsFrom()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := slotsFrom(at(10, 0), at(9, 0), 30); got != nil {
		t.Errorf("slotsFrom() with anchor past end = %v, want nil", got)
	}
}
