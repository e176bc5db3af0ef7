package domain

import (
	"testing"
	"time"
)

func TestWindowValid(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{name: "normal range", window: NewWindow(8, 22), want: true},
		{name: "zero length", window: NewWindow(12, 12), want: true},
		{name: "full day", window: NewWindow(0, 23), want: true},
		{name: "inverted", window: NewWindow(22, 8), want: false},
		{name: "start below range", window: NewWindow(-1, 22), want: false},
		{name: "end above range", window: NewWindow(8, 24), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowBoundsOnDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	window := NewWindow(8, 22)
	day := time.Date(2025, 3, 9, 15, 0, 0, 0, loc) // DST transition day

	start := window.StartOn(day)
	if start.Hour() != 8 || start.Day() != 9 {
		t.Errorf("StartOn() = %v, want 08:00 on day 9", start)
	}
	if start.Location() != loc {
		t.Errorf("StartOn() location = %v, want %v", start.Location(), loc)
	}

	end := window.EndOn(day)
	if end.Hour() != 22 || end.Day() != 9 {
		t.Errorf("EndOn() = %v, want 22:00 on day 9", end)
	}
}

func TestWindowContains(t *testing.T) {
	window := NewWindow(8, 22)
	day := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "inside", t: day(12, 30), want: true},
		{name: "on start boundary", t: day(8, 0), want: true},
		{name: "on end boundary", t: day(22, 0), want: true},
		{name: "before start", t: day(7, 59), want: false},
		{name: "after end", t: day(22, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	if NewWindow(22, 8).Contains(day(12, 0)) {
		t.Error("Contains() on inverted window = true, want false")
	}
}

func TestReminderID(t *testing.T) {
	if got := ReminderID(TodayIDPrefix, 0); got != "today_0" {
		t.Errorf("ReminderID() = %q, want %q", got, "today_0")
	}
	if got := ReminderID(TomorrowIDPrefix, 14); got != "tomorrow_14" {
		t.Errorf("ReminderID() = %q, want %q", got, "tomorrow_14")
	}
}

func TestIntervalModes(t *testing.T) {
	if !OnceDaily.IsOnceDaily() {
		t.Error("OnceDaily.IsOnceDaily() = false, want true")
	}
	if Interval(30).IsOnceDaily() {
		t.Error("Interval(30).IsOnceDaily() = true, want false")
	}
	if Interval(-1).IsValid() {
		t.Error("Interval(-1).IsValid() = true, want false")
	}
	if got := OnceDaily.Step(); got != 24*time.Hour {
		t.Errorf("OnceDaily.Step() = %v, want 24h", got)
	}
	if got := Interval(45).Step(); got != 45*time.Minute {
		t.Errorf("Interval(45).Step() = %v, want 45m", got)
	}
}

func TestReminderSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings ReminderSettings
		wantErr  error
	}{
		{
			name: "valid",
			settings: ReminderSettings{
				Window:          NewWindow(8, 22),
				IntervalMinutes: 60,
				DailyGoalML:     2000,
			},
		},
		{
			name: "hour out of range",
			settings: ReminderSettings{
				Window: NewWindow(8, 25),
			},
			wantErr: ErrHourOutOfRange,
		},
		{
			name: "negative goal",
			settings: ReminderSettings{
				Window:      NewWindow(8, 22),
				DailyGoalML: -100,
			},
			wantErr: ErrNegativeDailyGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	if got := DayKey(ts); got != "2025-06-10" {
		t.Errorf("DayKey() = %q, want %q", got, "2025-06-10")
	}
}
