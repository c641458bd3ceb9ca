package service

import (
	"context"
	"errors"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/timex"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService books whole-hour slots of rooms. Raw times are rounded
// outward to hour boundaries before any overlap check, so a 1:30-2:30
// request blocks 1:00-3:00.
type ReservationService interface {
	Get(ctx context.Context, id string) (*dto.ReservationDTO, error)
	List(ctx context.Context, params *dto.ReservationListRequest) ([]*dto.ReservationDTO, error)
	Create(ctx context.Context, editor domain.Editor, params *dto.ReservationCreateRequest) (*dto.ReservationDTO, error)
	Update(ctx context.Context, editor domain.Editor, id string, params *dto.ReservationUpdateRequest) (*dto.ReservationDTO, error)
	Delete(ctx context.Context, id string) error

	// DeleteSeries removes every instance of a repeating reservation. Zero
	// matches is a client error.
	DeleteSeries(ctx context.Context, seriesID string) (*dto.ReservationSeriesDTO, error)

	// PruneEnded drops reservations whose slot closed before the cutoff.
	PruneEnded(ctx context.Context, cutoff int64) (int64, error)
}

type reservationService struct {
	reservationRepo domain.ReservationRepository
	historySvc      HistoryService
}

func NewReservationService(reservationRepo domain.ReservationRepository, historySvc HistoryService) ReservationService {
	return &reservationService{reservationRepo: reservationRepo, historySvc: historySvc}
}

func reservationToDTO(r *domain.Reservation) *dto.ReservationDTO {
	if r == nil {
		return nil
	}
	return &dto.ReservationDTO{
		ID:             r.ID,
		EventID:        r.EventID,
		Name:           r.Name,
		Club:           r.Club,
		Description:    r.Description,
		Location:       r.Location,
		Start:          r.Start,
		End:            r.End,
		AllDay:         r.AllDay,
		RepeatOriginID: r.RepeatOriginID,
		RepeatEnd:      r.RepeatEnd,
	}
}

// checkOverlap rejects the slot if any other reservation holds part of it.
func (s *reservationService) checkOverlap(ctx context.Context, location string, start, end int64, excludeIDs []string) error {
	overlapping, err := s.reservationRepo.FindOverlap(ctx, location, start, end, excludeIDs)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if len(overlapping) > 0 {
		return code.ErrorReservationOverlap.WithDetails("conflicts with " + overlapping[0].Name)
	}
	return nil
}

func (s *reservationService) resourceTag(r *domain.Reservation) string {
	if r.RepeatOriginID != "" {
		return domain.ResourceRepeatingReservations
	}
	return domain.ResourceReservations
}

func (s *reservationService) Get(ctx context.Context, id string) (*dto.ReservationDTO, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorReservationNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return reservationToDTO(r), nil
}

func (s *reservationService) List(ctx context.Context, params *dto.ReservationListRequest) ([]*dto.ReservationDTO, error) {
	start, end := params.Start, params.End
	if start == 0 && end == 0 {
		// Default to the current week.
		now := time.Now().UTC()
		weekStart := now.Truncate(24 * time.Hour).AddDate(0, 0, -int(now.Weekday()))
		start = weekStart.UnixMilli()
		end = weekStart.AddDate(0, 0, 7).UnixMilli()
	}

	reservations, err := s.reservationRepo.ListRange(ctx, params.Location, start, end)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.ReservationDTO, 0, len(reservations))
	for _, r := range reservations {
		res = append(res, reservationToDTO(r))
	}
	return res, nil
}

func (s *reservationService) Create(ctx context.Context, editor domain.Editor, params *dto.ReservationCreateRequest) (*dto.ReservationDTO, error) {
	start, end := timex.RoundSlotMilli(params.Start, params.End)
	if end <= start {
		return nil, code.ErrorInvalidTimeRange
	}

	origin := &domain.Reservation{
		ID:          uuid.NewString(),
		EventID:     params.EventID,
		Name:        params.Name,
		Club:        params.Club,
		Description: params.Description,
		Location:    params.Location,
		Start:       start,
		End:         end,
		AllDay:      params.AllDay,
	}

	instances := []*domain.Reservation{origin}
	if params.Repeats {
		origin.RepeatOriginID = origin.ID
		origin.RepeatEnd = params.RepeatsUntil

		occ, err := expandOccurrences(
			time.UnixMilli(start).UTC(),
			domain.RepeatWeekly,
			time.UnixMilli(params.RepeatsUntil).UTC(),
		)
		if err != nil {
			return nil, code.ErrorInvalidParams.WithDetails(err.Error())
		}

		duration := end - start
		for _, t := range occ {
			inst := *origin
			inst.ID = uuid.NewString()
			inst.Start = t.UnixMilli()
			inst.End = t.UnixMilli() + duration
			instances = append(instances, &inst)
		}
	}

	for _, inst := range instances {
		if err := s.checkOverlap(ctx, inst.Location, inst.Start, inst.End, nil); err != nil {
			return nil, err
		}
	}

	entries := make([]*domain.History, 0, len(instances))
	for _, inst := range instances {
		entry, err := s.historySvc.BuildEntry(editor, s.resourceTag(inst), inst.ID, nil, reservationToDTO(inst))
		if err != nil {
			return nil, code.ErrorServerInternal.WithDetails(err.Error())
		}
		entries = append(entries, entry)
	}

	if err := s.reservationRepo.CreateWithHistory(ctx, instances, entries); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return reservationToDTO(origin), nil
}

func (s *reservationService) Update(ctx context.Context, editor domain.Editor, id string, params *dto.ReservationUpdateRequest) (*dto.ReservationDTO, error) {
	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorReservationNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	start, end := timex.RoundSlotMilli(params.Start, params.End)
	if end <= start {
		return nil, code.ErrorInvalidTimeRange
	}

	if err := s.checkOverlap(ctx, params.Location, start, end, []string{id}); err != nil {
		return nil, err
	}

	updated := *current
	updated.EventID = params.EventID
	updated.Name = params.Name
	updated.Club = params.Club
	updated.Description = params.Description
	updated.Location = params.Location
	updated.Start = start
	updated.End = end
	updated.AllDay = params.AllDay

	entry, err := s.historySvc.BuildEntry(editor, s.resourceTag(current), id, reservationToDTO(current), reservationToDTO(&updated))
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	err = s.reservationRepo.UpdateWithHistory(ctx, []*domain.Reservation{&updated}, []*domain.History{entry})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return reservationToDTO(&updated), nil
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	err := s.reservationRepo.DeleteWithHistory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorReservationNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}

func (s *reservationService) DeleteSeries(ctx context.Context, seriesID string) (*dto.ReservationSeriesDTO, error) {
	count, err := s.reservationRepo.DeleteSeriesWithHistory(ctx, seriesID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if count == 0 {
		return nil, code.ErrorRepeatingNotFound
	}
	return &dto.ReservationSeriesDTO{RepeatOriginID: seriesID, Count: count}, nil
}

func (s *reservationService) PruneEnded(ctx context.Context, cutoff int64) (int64, error) {
	return s.reservationRepo.DeleteEndedBefore(ctx, cutoff)
}
