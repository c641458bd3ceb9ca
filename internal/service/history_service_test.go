package service

import (
	"context"
	"testing"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/diff"
)

type mockHistoryRepo struct {
	domain.HistoryRepository
	entries []*domain.History
}

func (m *mockHistoryRepo) GetByID(ctx context.Context, id string) (*domain.History, error) {
	for _, h := range m.entries {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, errNotFound()
}

func (m *mockHistoryRepo) ListByEdit(ctx context.Context, resource, editID string) ([]*domain.History, error) {
	var out []*domain.History
	for _, h := range m.entries {
		if h.Resource == resource && h.EditID == editID {
			out = append(out, h)
		}
	}
	return out, nil
}

type mockUserRepo struct {
	domain.UserRepository
	users []*domain.User
}

func (m *mockUserRepo) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	for _, u := range m.users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, errNotFound()
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound()
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestBuildEntryCreation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := &historyService{clock: fixedClock(now)}

	event := &dto.EventDTO{
		ID:    "abc",
		Type:  "event",
		Name:  "Game Night",
		Start: 1000,
	}
	entry, err := svc.BuildEntry(domain.Editor{UID: 42}, domain.ResourceEvents, "abc", nil, event)
	if err != nil {
		t.Fatalf("BuildEntry failed: %v", err)
	}

	if entry.Time != now.UnixMilli() {
		t.Errorf("time = %d, want clock value %d", entry.Time, now.UnixMilli())
	}
	if entry.Editor.UID != 42 || entry.Editor.IP != "" {
		t.Errorf("editor = %+v, want uid only", entry.Editor)
	}
	if entry.ID == "" {
		t.Error("entry must get its own id")
	}

	// Creation records every unfiltered field with a null old value; "id"
	// and "repeatEnd" never appear.
	for _, f := range entry.Fields {
		if f.Key == "id" || f.Key == "repeatingId" || f.Key == "repeatEnd" {
			t.Errorf("filtered key %q leaked into the entry", f.Key)
		}
		if !f.OldValue.IsNull() {
			t.Errorf("creation field %q has non-null old value", f.Key)
		}
	}
	if len(entry.Fields) == 0 {
		t.Fatal("creation entry must not be empty")
	}
}

func TestBuildEntryUpdateDiffsOnlyChanges(t *testing.T) {
	svc := &historyService{clock: time.Now}

	prev := &dto.EventDTO{ID: "abc", Type: "event", Name: "Old Name", Location: "hub", Start: 1000, End: 2000}
	next := &dto.EventDTO{ID: "abc", Type: "event", Name: "New Name", Location: "hub", Start: 1000, End: 2000}

	entry, err := svc.BuildEntry(domain.Editor{IP: "10.0.0.1"}, domain.ResourceEvents, "abc", prev, next)
	if err != nil {
		t.Fatalf("BuildEntry failed: %v", err)
	}
	if len(entry.Fields) != 1 {
		t.Fatalf("fields = %+v, want exactly the name change", entry.Fields)
	}
	f := entry.Fields[0]
	if f.Key != "name" || f.OldValue.StringVal() != "Old Name" || f.NewValue.StringVal() != "New Name" {
		t.Errorf("unexpected field: %+v", f)
	}
	if entry.Editor.IP != "10.0.0.1" || entry.Editor.UID != 0 {
		t.Errorf("editor = %+v, want ip only", entry.Editor)
	}
}

func TestBuildEntryIdenticalStatesEmpty(t *testing.T) {
	svc := &historyService{clock: time.Now}

	event := &dto.EventDTO{ID: "abc", Type: "event", Name: "Same"}
	entry, err := svc.BuildEntry(domain.Editor{}, domain.ResourceEvents, "abc", event, event)
	if err != nil {
		t.Fatalf("BuildEntry failed: %v", err)
	}
	if len(entry.Fields) != 0 {
		t.Errorf("identical states produced fields: %+v", entry.Fields)
	}
}

func TestRestoreEventAppliesOldValues(t *testing.T) {
	current := &domain.Event{ID: "abc", Type: "event", Name: "Renamed", Location: "hub", Start: 1000, End: 2000}
	eventRepo := &mockEventRepo{events: []*domain.Event{current}}

	entry := &domain.History{
		ID:       "h1",
		Resource: domain.ResourceEvents,
		EditID:   "abc",
		Time:     500,
		Fields: []diff.Field{
			{Key: "name", OldValue: diff.String("Original"), NewValue: diff.String("Renamed")},
		},
	}
	histRepo := &mockHistoryRepo{entries: []*domain.History{entry}}

	svc := &historyService{
		historyRepo: histRepo,
		eventRepo:   eventRepo,
		userRepo:    &mockUserRepo{users: []*domain.User{{UID: 9, Name: "Editor"}}},
		clock:       time.Now,
	}

	res, err := svc.Restore(context.Background(), domain.Editor{UID: 9}, "h1")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if len(eventRepo.updated) != 1 {
		t.Fatalf("restore wrote %d events, want 1", len(eventRepo.updated))
	}
	if got := eventRepo.updated[0].Name; got != "Original" {
		t.Errorf("restored name = %q, want the old value", got)
	}
	if eventRepo.updated[0].Location != "hub" {
		t.Errorf("untouched fields must survive the rollback")
	}

	// The rollback itself lands on the history chain.
	if len(eventRepo.entries) != 1 {
		t.Fatalf("restore wrote %d history entries, want 1", len(eventRepo.entries))
	}
	if res.Fields[0].Key != "name" {
		t.Errorf("rollback entry fields = %+v", res.Fields)
	}
}

func TestRestoreUnknownEntry(t *testing.T) {
	svc := &historyService{historyRepo: &mockHistoryRepo{}, clock: time.Now}

	_, err := svc.Restore(context.Background(), domain.Editor{}, "missing")
	if err == nil {
		t.Fatal("expected an error for an unknown entry")
	}
}
