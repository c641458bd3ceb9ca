package domain

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/pkg/diff"
)

// Resource tags identifying which collection a history entry documents.
const (
	ResourceEvents                = "events"
	ResourceClubs                 = "clubs"
	ResourceVolunteering          = "volunteering"
	ResourceReservations          = "reservations"
	ResourceRepeatingReservations = "repeating-reservations"
)

// Editor attributes an edit to an authenticated user or, failing that, to
// the request address. The two are mutually exclusive; both may be empty
// when no editor context could be resolved, which is tolerated.
type Editor struct {
	UID int64  `json:"id,omitempty"`
	IP  string `json:"ip,omitempty"`
}

// History is one immutable audit record of a create or update.
type History struct {
	ID       string
	Resource string
	EditID   string
	Time     int64
	Editor   Editor
	Fields   []diff.Field
}

type HistoryRepository interface {
	GetByID(ctx context.Context, id string) (*History, error)

	// ListByEdit returns entries for one resource instance, newest first.
	ListByEdit(ctx context.Context, resource, editID string) ([]*History, error)

	// ListFeed returns the global feed, newest first, paginated.
	ListFeed(ctx context.Context, page, pageSize int) ([]*History, int64, error)

	// Create appends entries outside of a resource write, e.g. a restore.
	Create(ctx context.Context, entries []*History) error
}
