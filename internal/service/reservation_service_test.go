package service

import (
	"context"
	"testing"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"
)

type mockReservationRepo struct {
	domain.ReservationRepository
	reservations []*domain.Reservation
	created      []*domain.Reservation
	entries      []*domain.History

	deleteSeriesCount int64
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	for _, r := range m.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errNotFound()
}

func (m *mockReservationRepo) FindOverlap(ctx context.Context, location string, start, end int64, excludeIDs []string) ([]*domain.Reservation, error) {
	excluded := map[string]bool{}
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []*domain.Reservation
	for _, r := range m.reservations {
		if r.Location == location && r.Start < end && r.End > start && !excluded[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReservationRepo) CreateWithHistory(ctx context.Context, reservations []*domain.Reservation, entries []*domain.History) error {
	m.created = append(m.created, reservations...)
	m.reservations = append(m.reservations, reservations...)
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *mockReservationRepo) DeleteSeriesWithHistory(ctx context.Context, seriesID string) (int64, error) {
	return m.deleteSeriesCount, nil
}

func newTestReservationService(repo *mockReservationRepo) ReservationService {
	hist := &historyService{clock: time.Now}
	return &reservationService{reservationRepo: repo, historySvc: hist}
}

func TestCreateReservationRoundsToHours(t *testing.T) {
	repo := &mockReservationRepo{}
	svc := newTestReservationService(repo)

	start := time.Date(2026, 9, 1, 13, 30, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	res, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.ReservationCreateRequest{
		Name:     "Study Group",
		Location: "room-a",
		Start:    start.UnixMilli(),
		End:      end.UnixMilli(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	wantStart := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC).UnixMilli()
	wantEnd := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC).UnixMilli()
	if res.Start != wantStart || res.End != wantEnd {
		t.Errorf("slot = [%d, %d], want [%d, %d]", res.Start, res.End, wantStart, wantEnd)
	}
}

func TestCreateReservationAlignedTimesUnchanged(t *testing.T) {
	repo := &mockReservationRepo{}
	svc := newTestReservationService(repo)

	start := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	res, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.ReservationCreateRequest{
		Name:     "Officer Meeting",
		Location: "room-a",
		Start:    start.UnixMilli(),
		End:      end.UnixMilli(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if res.Start != start.UnixMilli() || res.End != end.UnixMilli() {
		t.Errorf("aligned slot must not be advanced: [%d, %d]", res.Start, res.End)
	}
}

func TestCreateReservationRejectsOverlap(t *testing.T) {
	start := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC).UnixMilli()
	repo := &mockReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "held", Name: "Robotics", Location: "room-a", Start: start, End: start + 2*hour},
		},
	}
	svc := newTestReservationService(repo)

	_, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.ReservationCreateRequest{
		Name:     "Study Group",
		Location: "room-a",
		Start:    start + hour,
		End:      start + 3*hour,
	})
	var c *code.Code
	if !asCode(err, &c) || c.Code() != code.ErrorReservationOverlap.Code() {
		t.Fatalf("err = %v, want ErrorReservationOverlap", err)
	}
}

func TestCreateReservationOtherRoomAllowed(t *testing.T) {
	start := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC).UnixMilli()
	repo := &mockReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "held", Name: "Robotics", Location: "room-b", Start: start, End: start + 2*hour},
		},
	}
	svc := newTestReservationService(repo)

	_, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.ReservationCreateRequest{
		Name:     "Study Group",
		Location: "room-a",
		Start:    start,
		End:      start + hour,
	})
	if err != nil {
		t.Fatalf("different room must not conflict: %v", err)
	}
}

func TestCreateRepeatingReservation(t *testing.T) {
	repo := &mockReservationRepo{}
	svc := newTestReservationService(repo)

	start := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC).UnixMilli()
	res, err := svc.Create(context.Background(), domain.Editor{UID: 1}, &dto.ReservationCreateRequest{
		Name:         "Weekly Practice",
		Location:     "room-a",
		Start:        start,
		End:          start + hour,
		Repeats:      true,
		RepeatsUntil: start + 2*week,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(repo.created) != 3 {
		t.Fatalf("created %d instances, want 3", len(repo.created))
	}
	for i, r := range repo.created {
		if r.RepeatOriginID != res.ID {
			t.Errorf("instance %d not linked to origin", i)
		}
	}
	for _, h := range repo.entries {
		if h.Resource != domain.ResourceRepeatingReservations {
			t.Errorf("entry resource = %q, want repeating-reservations", h.Resource)
		}
	}
}

func TestDeleteReservationSeriesZeroIsError(t *testing.T) {
	svc := newTestReservationService(&mockReservationRepo{deleteSeriesCount: 0})

	_, err := svc.DeleteSeries(context.Background(), "missing")
	if err != code.ErrorRepeatingNotFound {
		t.Fatalf("err = %v, want ErrorRepeatingNotFound", err)
	}
}
