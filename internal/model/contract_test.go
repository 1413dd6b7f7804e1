package model

import (
	"testing"
	"time"
)

func tp(t time.Time) *time.Time { return &t }

func TestContractStatus(t *testing.T) {
	locEnd := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		locReturning *time.Time
		now          time.Time
		want         []string
	}{
		{
			name: "ongoing before deadline",
			now:  locEnd.Add(-2 * time.Hour),
			want: []string{StatusOngoing},
		},
		{
			name: "ongoing inside grace hour",
			now:  locEnd.Add(30 * time.Minute),
			want: []string{StatusOngoing},
		},
		{
			name: "ongoing exactly at grace boundary",
			now:  locEnd.Add(time.Hour),
			want: []string{StatusOngoing},
		},
		{
			name: "ongoing past grace hour",
			now:  locEnd.Add(time.Hour + time.Minute),
			want: []string{StatusOngoing, StatusLate},
		},
		{
			name:         "returned early",
			locReturning: tp(locEnd.Add(-3 * time.Hour)),
			now:          locEnd.Add(48 * time.Hour),
			want:         []string{StatusCompleted},
		},
		{
			name:         "returned inside grace hour",
			locReturning: tp(locEnd.Add(59 * time.Minute)),
			now:          locEnd.Add(48 * time.Hour),
			want:         []string{StatusCompleted},
		},
		{
			name:         "returned past grace hour",
			locReturning: tp(locEnd.Add(2 * time.Hour)),
			now:          locEnd.Add(48 * time.Hour),
			want:         []string{StatusCompleted, StatusLate},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ContractStatus(locEnd, tc.locReturning, tc.now)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestReturnDelayHours(t *testing.T) {
	locEnd := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	if got := ReturnDelayHours(locEnd, locEnd.Add(90*time.Minute)); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
	if got := ReturnDelayHours(locEnd, locEnd.Add(-30*time.Minute)); got != -0.5 {
		t.Fatalf("expected -0.5, got %v", got)
	}
	if got := ReturnDelayHours(locEnd, locEnd.Add(100*time.Minute)); got != 1.67 {
		t.Fatalf("expected 1.67, got %v", got)
	}
}

func TestDelayReference(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	returned := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	if got := DelayReference(&returned, now); !got.Equal(returned) {
		t.Fatalf("expected returning time, got %v", got)
	}
	if got := DelayReference(nil, now); !got.Equal(now) {
		t.Fatalf("expected now, got %v", got)
	}
}

func TestNewContractView(t *testing.T) {
	locEnd := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	contract := Contract{
		ID:               1,
		LocBeginDatetime: locEnd.Add(-48 * time.Hour),
		LocEndDatetime:   locEnd,
	}

	view := NewContractView(contract, locEnd.Add(2*time.Hour))
	if view.Status[0] != StatusOngoing || len(view.Status) != 2 {
		t.Fatalf("expected ongoing+late, got %v", view.Status)
	}
	if view.CarReturnDelayHours != 2 {
		t.Fatalf("expected delay of 2 hours, got %v", view.CarReturnDelayHours)
	}
}
