package domain

import "context"

// Reservation blocks whole-hour slots of one room.
type Reservation struct {
	ID             string
	EventID        string
	Name           string
	Club           string
	Description    string
	Location       string
	Start          int64
	End            int64
	AllDay         bool
	RepeatOriginID string
	RepeatEnd      int64
}

type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*Reservation, error)

	// ListRange returns reservations overlapping [start, end), optionally
	// restricted to one room.
	ListRange(ctx context.Context, location string, start, end int64) ([]*Reservation, error)

	// FindOverlap returns reservations in the room whose window intersects
	// [start, end), excluding the given IDs (the record being edited and
	// its own series siblings).
	FindOverlap(ctx context.Context, location string, start, end int64, excludeIDs []string) ([]*Reservation, error)

	CreateWithHistory(ctx context.Context, reservations []*Reservation, entries []*History) error
	UpdateWithHistory(ctx context.Context, reservations []*Reservation, entries []*History) error
	DeleteWithHistory(ctx context.Context, id string) error
	ListBySeries(ctx context.Context, seriesID string) ([]*Reservation, error)
	DeleteSeriesWithHistory(ctx context.Context, seriesID string) (int64, error)

	// DeleteEndedBefore prunes reservations whose window closed before the
	// cutoff. Returns the pruned count.
	DeleteEndedBefore(ctx context.Context, cutoff int64) (int64, error)
}
