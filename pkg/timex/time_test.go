package timex

import (
	"testing"
	"time"
)

func TestTimeJSON(t *testing.T) {
	ts := FromMilli(1700000000000)
	data, err := ts.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != "1700000000000" {
		t.Errorf("MarshalJSON = %s, want 1700000000000", data)
	}

	var back Time
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back.UnixMilli() != 1700000000000 {
		t.Errorf("round trip = %d, want 1700000000000", back.UnixMilli())
	}
}

func TestRoundSlot(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{
			name:      "half hour offsets round outward",
			start:     day.Add(13*time.Hour + 30*time.Minute),
			end:       day.Add(14*time.Hour + 30*time.Minute),
			wantStart: day.Add(13 * time.Hour),
			wantEnd:   day.Add(15 * time.Hour),
		},
		{
			name:      "aligned window unchanged",
			start:     day.Add(13 * time.Hour),
			end:       day.Add(14 * time.Hour),
			wantStart: day.Add(13 * time.Hour),
			wantEnd:   day.Add(14 * time.Hour),
		},
		{
			name:      "one minute past end hour still blocks the slot",
			start:     day.Add(9 * time.Hour),
			end:       day.Add(10*time.Hour + time.Minute),
			wantStart: day.Add(9 * time.Hour),
			wantEnd:   day.Add(11 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := RoundSlot(tt.start, tt.end)
			if !gotStart.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", gotStart, tt.wantStart)
			}
			if !gotEnd.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", gotEnd, tt.wantEnd)
			}
		})
	}
}

func TestRoundSlotMilli(t *testing.T) {
	start := time.Date(2024, 3, 4, 13, 30, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC).UnixMilli()

	gotStart, gotEnd := RoundSlotMilli(start, end)
	if gotStart != time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("start = %d", gotStart)
	}
	if gotEnd != time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("end = %d", gotEnd)
	}
}
