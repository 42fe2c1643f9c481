package job

import (
	"testing"
	"time"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name   string
		stored Status
		expiry *time.Time
		want   Status
	}{
		{"active without expiry", StatusActive, nil, StatusActive},
		{"active not yet expired", StatusActive, &future, StatusActive},
		{"active past expiry reads inactive", StatusActive, &past, StatusInactive},
		{"inactive never overlaid", StatusInactive, &past, StatusInactive},
		{"on hold past expiry unchanged", StatusOnHold, &past, StatusOnHold},
		{"draft past expiry unchanged", StatusDraft, &past, StatusDraft},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EffectiveStatus(tc.stored, tc.expiry, now); got != tc.want {
				t.Fatalf("EffectiveStatus(%s) = %s, want %s", tc.stored, got, tc.want)
			}
		})
	}
}

func TestEffectiveStatus_BoundaryInstant(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	exact := now

	// Expiry equal to now is not yet past.
	if got := EffectiveStatus(StatusActive, &exact, now); got != StatusActive {
		t.Fatalf("expiry at the exact instant should still read Active, got %s", got)
	}
}
