package service

import (
	"context"
	"testing"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"
)

type mockEventRepo struct {
	domain.EventRepository
	events  []*domain.Event
	created []*domain.Event
	updated []*domain.Event
	entries []*domain.History

	deleteSeriesCount int64
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	for _, e := range m.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errNotFound()
}

func (m *mockEventRepo) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range m.events {
		if e.RepeatingID == seriesID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) CreateWithHistory(ctx context.Context, events []*domain.Event, entries []*domain.History) error {
	m.created = append(m.created, events...)
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *mockEventRepo) UpdateWithHistory(ctx context.Context, events []*domain.Event, entries []*domain.History) error {
	m.updated = append(m.updated, events...)
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *mockEventRepo) DeleteSeriesWithHistory(ctx context.Context, seriesID string) (int64, error) {
	return m.deleteSeriesCount, nil
}

func newTestEventService(repo *mockEventRepo) EventService {
	hist := &historyService{clock: time.Now}
	return &eventService{eventRepo: repo, historySvc: hist}
}

const hour = int64(time.Hour / time.Millisecond)
const day = 24 * hour
const week = 7 * day

func TestCreateRepeatingWeekly(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestEventService(repo)

	start := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC).UnixMilli()
	_, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.EventCreateRequest{
		Type:         "event",
		Name:         "Chess Club Meeting",
		Start:        start,
		End:          start + 2*hour,
		Repeats:      "week",
		RepeatsUntil: start + 3*week,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Origin plus exactly three weekly instances, the until boundary
	// inclusive, none past week 3.
	if len(repo.created) != 4 {
		t.Fatalf("created %d instances, want 4", len(repo.created))
	}
	origin := repo.created[0]
	if origin.RepeatingID != origin.ID {
		t.Errorf("origin RepeatingID = %q, want its own id %q", origin.RepeatingID, origin.ID)
	}
	for i, inst := range repo.created {
		wantStart := start + int64(i)*week
		if inst.Start != wantStart {
			t.Errorf("instance %d start = %d, want %d", i, inst.Start, wantStart)
		}
		if inst.End-inst.Start != 2*hour {
			t.Errorf("instance %d duration changed", i)
		}
		if inst.RepeatingID != origin.ID {
			t.Errorf("instance %d not linked to series", i)
		}
		if i > 0 && inst.ID == origin.ID {
			t.Errorf("instance %d shares the origin id", i)
		}
	}

	// One creation history entry per instance, each on its own chain.
	if len(repo.entries) != 4 {
		t.Fatalf("wrote %d history entries, want 4", len(repo.entries))
	}
	seen := map[string]bool{}
	for _, h := range repo.entries {
		if h.Resource != domain.ResourceEvents {
			t.Errorf("entry resource = %q", h.Resource)
		}
		if seen[h.EditID] {
			t.Errorf("duplicate history chain for %q", h.EditID)
		}
		seen[h.EditID] = true
	}
}

func TestCreateRepeatingUntilBeforeFirstStep(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestEventService(repo)

	start := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC).UnixMilli()
	_, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.EventCreateRequest{
		Type:         "event",
		Name:         "One Off",
		Start:        start,
		End:          start + hour,
		Repeats:      "week",
		RepeatsUntil: start + 3*day,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d instances, want just the origin", len(repo.created))
	}
}

func TestCreateRepeatingMonthly(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestEventService(repo)

	origin := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)
	until := time.Date(2026, 12, 15, 18, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.EventCreateRequest{
		Type:         "event",
		Name:         "Monthly Social",
		Start:        origin.UnixMilli(),
		End:          origin.Add(2 * time.Hour).UnixMilli(),
		Repeats:      "month",
		RepeatsUntil: until.UnixMilli(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(repo.created) != 4 {
		t.Fatalf("created %d instances, want 4 (Sep-Dec)", len(repo.created))
	}
	last := repo.created[3]
	if got := time.UnixMilli(last.Start).UTC(); !got.Equal(until) {
		t.Errorf("last instance start = %v, want %v", got, until)
	}
}

func TestCreateInvalidTimeRange(t *testing.T) {
	svc := newTestEventService(&mockEventRepo{})

	_, err := svc.Create(context.Background(), domain.Editor{}, &dto.EventCreateRequest{
		Type:  "event",
		Name:  "Backwards",
		Start: 2000,
		End:   1000,
	})
	if err != code.ErrorInvalidTimeRange {
		t.Fatalf("err = %v, want ErrorInvalidTimeRange", err)
	}
}

func TestUpdateSeriesShiftsTimes(t *testing.T) {
	start := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC).UnixMilli()
	repo := &mockEventRepo{
		events: []*domain.Event{
			{ID: "a", Name: "Old", RepeatingID: "a", Start: start, End: start + hour},
			{ID: "b", Name: "Old", RepeatingID: "a", Start: start + week, End: start + week + hour},
			{ID: "c", Name: "Old", RepeatingID: "a", Start: start + 2*week, End: start + 2*week + hour},
		},
	}
	svc := newTestEventService(repo)

	// Move the origin one day later and rename everything.
	res, err := svc.UpdateSeries(context.Background(), domain.Editor{UID: 7}, "a", &dto.EventUpdateRequest{
		Type:  "event",
		Name:  "New",
		Start: start + day,
		End:   start + day + hour,
	})
	if err != nil {
		t.Fatalf("UpdateSeries failed: %v", err)
	}
	if res.Count != 3 {
		t.Fatalf("count = %d, want 3", res.Count)
	}

	for i, e := range repo.updated {
		if e.Name != "New" {
			t.Errorf("instance %d name not updated", i)
		}
		wantStart := start + int64(i)*week + day
		if e.Start != wantStart {
			t.Errorf("instance %d start = %d, want %d (shifted by the origin delta)", i, e.Start, wantStart)
		}
	}
	if len(repo.entries) != 3 {
		t.Errorf("wrote %d history entries, want one per instance", len(repo.entries))
	}
}

func TestUpdateSeriesEmptyIsNoop(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestEventService(repo)

	res, err := svc.UpdateSeries(context.Background(), domain.Editor{}, "missing", &dto.EventUpdateRequest{
		Type: "event", Name: "x", Start: 1, End: 2,
	})
	if err != nil {
		t.Fatalf("empty series update should succeed, got %v", err)
	}
	if res.Count != 0 {
		t.Errorf("count = %d, want 0", res.Count)
	}
	if len(repo.updated) != 0 {
		t.Errorf("no instances should be written")
	}
}

func TestDeleteSeriesZeroIsError(t *testing.T) {
	repo := &mockEventRepo{deleteSeriesCount: 0}
	svc := newTestEventService(repo)

	_, err := svc.DeleteSeries(context.Background(), "missing")
	if err != code.ErrorRepeatingNotFound {
		t.Fatalf("err = %v, want ErrorRepeatingNotFound", err)
	}
}

func TestDeleteSeriesReportsCount(t *testing.T) {
	repo := &mockEventRepo{deleteSeriesCount: 5}
	svc := newTestEventService(repo)

	res, err := svc.DeleteSeries(context.Background(), "a")
	if err != nil {
		t.Fatalf("DeleteSeries failed: %v", err)
	}
	if res.Count != 5 {
		t.Errorf("count = %d, want 5", res.Count)
	}
}
