package types

import (
	"testing"
	"time"
)

func TestNormalizeCarries(t *testing.T) {
	tests := []struct {
		name string
		in   Duration
		want Duration
	}{
		{"already normalized", Duration{1, 2, 3}, Duration{1, 2, 3}},
		{"seconds carry", Duration{0, 0, 90}, Duration{0, 1, 30}},
		{"minutes carry", Duration{0, 130, 0}, Duration{2, 10, 0}},
		{"chained carry", Duration{0, 59, 61}, Duration{1, 0, 1}},
		{"hours clamp", Duration{98, 130, 0}, Duration{99, 10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got != tt.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			// Normalizing is idempotent.
			if again := got.Normalize(); again != got {
				t.Fatalf("Normalize not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestNormalizeOrderIndependent(t *testing.T) {
	// Carrying seconds first or minutes first must agree.
	d := Duration{0, 61, 75}
	bySeconds := Duration{0, d.Minutes + d.Seconds/60, d.Seconds % 60}.Normalize()
	whole := d.Normalize()
	if bySeconds != whole {
		t.Fatalf("field order changed the result: %v vs %v", bySeconds, whole)
	}
}

func TestTotalAndString(t *testing.T) {
	d := Duration{1, 2, 3}
	if want := time.Hour + 2*time.Minute + 3*time.Second; d.Total() != want {
		t.Fatalf("Total() = %v, want %v", d.Total(), want)
	}
	if d.String() != "01:02:03" {
		t.Fatalf("String() = %q", d.String())
	}
}

func TestDurationFromSeconds(t *testing.T) {
	if got := DurationFromSeconds(3723); got != (Duration{1, 2, 3}) {
		t.Fatalf("DurationFromSeconds(3723) = %v", got)
	}
	if got := DurationFromSeconds(-5); !got.IsZero() {
		t.Fatalf("negative input should clamp to zero, got %v", got)
	}
}
