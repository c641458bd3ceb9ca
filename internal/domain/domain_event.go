// Package domain defines the calendar domain models and repository
// interfaces.
package domain

import "context"

// RepeatInterval is the unit a series steps by.
type RepeatInterval string

const (
	RepeatNone    RepeatInterval = ""
	RepeatWeekly  RepeatInterval = "week"
	RepeatMonthly RepeatInterval = "month"
)

// Event is a calendar event or signup slot. Start/End/RepeatEnd are UTC
// milliseconds. Every instance of a repeating series is an independent
// record with its own ID and history chain, sharing RepeatingID.
type Event struct {
	ID          string
	Type        string
	Name        string
	Club        string
	Description string
	Location    string
	Start       int64
	End         int64
	NoEnd       bool
	AllDay      bool
	RepeatingID string
	RepeatEnd   int64
}

// EventRepository persists events. The *WithHistory operations write the
// resource rows and their audit entries inside one database transaction, so
// a partial failure can never leave history and resource state divergent.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)

	// List returns events overlapping [start, end); zero bounds list all.
	List(ctx context.Context, start, end int64, page, pageSize int) ([]*Event, int64, error)

	// ListBySeries returns all instances sharing a RepeatingID.
	ListBySeries(ctx context.Context, seriesID string) ([]*Event, error)

	CreateWithHistory(ctx context.Context, events []*Event, entries []*History) error

	UpdateWithHistory(ctx context.Context, events []*Event, entries []*History) error

	// DeleteWithHistory removes one event and its history entries.
	DeleteWithHistory(ctx context.Context, id string) error

	// DeleteSeriesWithHistory removes every instance of a series plus all
	// history entries naming those instances. Returns the instance count.
	DeleteSeriesWithHistory(ctx context.Context, seriesID string) (int64, error)
}
