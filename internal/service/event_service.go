package service

import (
	"context"
	"errors"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"gorm.io/gorm"
)

// EventService manages calendar events and signup slots, including
// repeating series where every instance is an independent record.
type EventService interface {
	Get(ctx context.Context, id string) (*dto.EventDTO, error)
	List(ctx context.Context, params *dto.EventListRequest) ([]*dto.EventDTO, int, error)
	Create(ctx context.Context, editor domain.Editor, params *dto.EventCreateRequest) (*dto.EventDTO, error)
	Update(ctx context.Context, editor domain.Editor, id string, params *dto.EventUpdateRequest) (*dto.EventDTO, error)
	Delete(ctx context.Context, id string) error

	// UpdateSeries applies identical non-temporal fields to every instance
	// and shifts each instance's own times by the origin's start delta.
	// An empty series is a no-op, not an error.
	UpdateSeries(ctx context.Context, editor domain.Editor, seriesID string, params *dto.EventUpdateRequest) (*dto.EventSeriesDTO, error)

	// DeleteSeries removes all instances and their history. Zero matches
	// is a client error.
	DeleteSeries(ctx context.Context, seriesID string) (*dto.EventSeriesDTO, error)

	// ExportICS renders events overlapping the window as an iCalendar
	// document.
	ExportICS(ctx context.Context, params *dto.EventListRequest) (string, error)
}

type eventService struct {
	eventRepo  domain.EventRepository
	historySvc HistoryService
}

func NewEventService(eventRepo domain.EventRepository, historySvc HistoryService) EventService {
	return &eventService{eventRepo: eventRepo, historySvc: historySvc}
}

func eventToDTO(e *domain.Event) *dto.EventDTO {
	if e == nil {
		return nil
	}
	return &dto.EventDTO{
		ID:          e.ID,
		Type:        e.Type,
		Name:        e.Name,
		Club:        e.Club,
		Description: e.Description,
		Location:    e.Location,
		Start:       e.Start,
		End:         e.End,
		NoEnd:       e.NoEnd,
		AllDay:      e.AllDay,
		RepeatingID: e.RepeatingID,
		RepeatEnd:   e.RepeatEnd,
	}
}

// restoredDTOToDomain writes the editable DTO fields back onto an event,
// leaving identity and series linkage untouched.
func restoredDTOToDomain(d *dto.EventDTO, e *domain.Event) {
	e.Type = d.Type
	e.Name = d.Name
	e.Club = d.Club
	e.Description = d.Description
	e.Location = d.Location
	e.Start = d.Start
	e.End = d.End
	e.NoEnd = d.NoEnd
	e.AllDay = d.AllDay
}

// expandOccurrences lists the series times after the origin, stepping one
// unit at a time up to and including the until boundary.
func expandOccurrences(start time.Time, unit domain.RepeatInterval, until time.Time) ([]time.Time, error) {
	var freq rrule.Frequency
	switch unit {
	case domain.RepeatWeekly:
		freq = rrule.WEEKLY
	case domain.RepeatMonthly:
		freq = rrule.MONTHLY
	default:
		return nil, code.ErrorInvalidRepeatInterval
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Dtstart: start.UTC(),
		Until:   until.UTC(),
	})
	if err != nil {
		return nil, err
	}

	occ := r.All()
	// Dtstart is itself an occurrence; the origin record already covers it.
	if len(occ) > 0 && occ[0].Equal(start.UTC()) {
		occ = occ[1:]
	}
	return occ, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*dto.EventDTO, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorEventNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return eventToDTO(e), nil
}

func (s *eventService) List(ctx context.Context, params *dto.EventListRequest) ([]*dto.EventDTO, int, error) {
	events, count, err := s.eventRepo.List(ctx, params.Start, params.End, params.Page, params.PageSize)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.EventDTO, 0, len(events))
	for _, e := range events {
		res = append(res, eventToDTO(e))
	}
	return res, int(count), nil
}

func (s *eventService) Create(ctx context.Context, editor domain.Editor, params *dto.EventCreateRequest) (*dto.EventDTO, error) {
	if !params.NoEnd && params.End <= params.Start {
		return nil, code.ErrorInvalidTimeRange
	}

	origin := &domain.Event{
		ID:          uuid.NewString(),
		Type:        params.Type,
		Name:        params.Name,
		Club:        params.Club,
		Description: params.Description,
		Location:    params.Location,
		Start:       params.Start,
		End:         params.End,
		NoEnd:       params.NoEnd,
		AllDay:      params.AllDay,
	}

	instances := []*domain.Event{origin}
	if params.Repeats != "" {
		origin.RepeatingID = origin.ID
		origin.RepeatEnd = params.RepeatsUntil

		occ, err := expandOccurrences(
			time.UnixMilli(params.Start).UTC(),
			domain.RepeatInterval(params.Repeats),
			time.UnixMilli(params.RepeatsUntil).UTC(),
		)
		if err != nil {
			var c *code.Code
			if errors.As(err, &c) {
				return nil, c
			}
			return nil, code.ErrorInvalidParams.WithDetails(err.Error())
		}

		duration := params.End - params.Start
		for _, t := range occ {
			inst := *origin
			inst.ID = uuid.NewString()
			inst.Start = t.UnixMilli()
			inst.End = t.UnixMilli() + duration
			instances = append(instances, &inst)
		}
	}

	entries := make([]*domain.History, 0, len(instances))
	for _, inst := range instances {
		entry, err := s.historySvc.BuildEntry(editor, domain.ResourceEvents, inst.ID, nil, eventToDTO(inst))
		if err != nil {
			return nil, code.ErrorServerInternal.WithDetails(err.Error())
		}
		entries = append(entries, entry)
	}

	if err := s.eventRepo.CreateWithHistory(ctx, instances, entries); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return eventToDTO(origin), nil
}

func (s *eventService) Update(ctx context.Context, editor domain.Editor, id string, params *dto.EventUpdateRequest) (*dto.EventDTO, error) {
	if !params.NoEnd && params.End <= params.Start {
		return nil, code.ErrorInvalidTimeRange
	}

	current, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorEventNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	updated := *current
	updated.Type = params.Type
	updated.Name = params.Name
	updated.Club = params.Club
	updated.Description = params.Description
	updated.Location = params.Location
	updated.Start = params.Start
	updated.End = params.End
	updated.NoEnd = params.NoEnd
	updated.AllDay = params.AllDay

	entry, err := s.historySvc.BuildEntry(editor, domain.ResourceEvents, id, eventToDTO(current), eventToDTO(&updated))
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	err = s.eventRepo.UpdateWithHistory(ctx, []*domain.Event{&updated}, []*domain.History{entry})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return eventToDTO(&updated), nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	err := s.eventRepo.DeleteWithHistory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorEventNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}

func (s *eventService) UpdateSeries(ctx context.Context, editor domain.Editor, seriesID string, params *dto.EventUpdateRequest) (*dto.EventSeriesDTO, error) {
	instances, err := s.eventRepo.ListBySeries(ctx, seriesID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if len(instances) == 0 {
		return &dto.EventSeriesDTO{RepeatingID: seriesID, Count: 0}, nil
	}

	// The series key is the origin's id. If the origin itself was removed,
	// the earliest surviving instance anchors the time delta.
	origin := instances[0]
	for _, inst := range instances {
		if inst.ID == seriesID {
			origin = inst
			break
		}
	}
	deltaStart := params.Start - origin.Start
	deltaEnd := params.End - origin.End

	updated := make([]*domain.Event, 0, len(instances))
	entries := make([]*domain.History, 0, len(instances))
	for _, inst := range instances {
		next := *inst
		next.Type = params.Type
		next.Name = params.Name
		next.Club = params.Club
		next.Description = params.Description
		next.Location = params.Location
		next.NoEnd = params.NoEnd
		next.AllDay = params.AllDay
		next.Start = inst.Start + deltaStart
		next.End = inst.End + deltaEnd

		entry, err := s.historySvc.BuildEntry(editor, domain.ResourceEvents, inst.ID, eventToDTO(inst), eventToDTO(&next))
		if err != nil {
			return nil, code.ErrorServerInternal.WithDetails(err.Error())
		}
		updated = append(updated, &next)
		entries = append(entries, entry)
	}

	if err := s.eventRepo.UpdateWithHistory(ctx, updated, entries); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return &dto.EventSeriesDTO{RepeatingID: seriesID, Count: int64(len(updated))}, nil
}

func (s *eventService) DeleteSeries(ctx context.Context, seriesID string) (*dto.EventSeriesDTO, error) {
	count, err := s.eventRepo.DeleteSeriesWithHistory(ctx, seriesID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if count == 0 {
		return nil, code.ErrorRepeatingNotFound
	}
	return &dto.EventSeriesDTO{RepeatingID: seriesID, Count: count}, nil
}

func (s *eventService) ExportICS(ctx context.Context, params *dto.EventListRequest) (string, error) {
	events, _, err := s.eventRepo.List(ctx, params.Start, params.End, 1, 10000)
	if err != nil {
		return "", code.ErrorDBQuery.WithDetails(err.Error())
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TAMS Club Calendar//EN")

	for _, e := range events {
		ev := cal.AddEvent(e.ID)
		ev.SetSummary(e.Name)
		ev.SetStartAt(time.UnixMilli(e.Start).UTC())
		if e.NoEnd {
			ev.SetEndAt(time.UnixMilli(e.Start).UTC())
		} else {
			ev.SetEndAt(time.UnixMilli(e.End).UTC())
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Club != "" {
			ev.SetOrganizer(e.Club)
		}
	}
	return cal.Serialize(), nil
}
