package service

import (
	"context"
	"errors"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VolunteeringService interface {
	Get(ctx context.Context, id string) (*dto.VolunteeringDTO, error)
	List(ctx context.Context, params *dto.VolunteeringListRequest) ([]*dto.VolunteeringDTO, int, error)
	Create(ctx context.Context, editor domain.Editor, params *dto.VolunteeringSaveRequest) (*dto.VolunteeringDTO, error)
	Update(ctx context.Context, editor domain.Editor, id string, params *dto.VolunteeringSaveRequest) (*dto.VolunteeringDTO, error)
	Delete(ctx context.Context, id string) error
}

type volunteeringService struct {
	volunteeringRepo domain.VolunteeringRepository
	historySvc       HistoryService
}

func NewVolunteeringService(volunteeringRepo domain.VolunteeringRepository, historySvc HistoryService) VolunteeringService {
	return &volunteeringService{volunteeringRepo: volunteeringRepo, historySvc: historySvc}
}

func volunteeringToDTO(v *domain.Volunteering) *dto.VolunteeringDTO {
	if v == nil {
		return nil
	}
	return &dto.VolunteeringDTO{
		ID:          v.ID,
		Name:        v.Name,
		Club:        v.Club,
		Description: v.Description,
		Filters:     dto.FiltersDTO(v.Filters),
	}
}

func volunteeringDTOToDomain(d *dto.VolunteeringDTO) *domain.Volunteering {
	return &domain.Volunteering{
		ID:          d.ID,
		Name:        d.Name,
		Club:        d.Club,
		Description: d.Description,
		Filters:     domain.Filters(d.Filters),
	}
}

func (s *volunteeringService) Get(ctx context.Context, id string) (*dto.VolunteeringDTO, error) {
	v, err := s.volunteeringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVolunteeringNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return volunteeringToDTO(v), nil
}

func (s *volunteeringService) List(ctx context.Context, params *dto.VolunteeringListRequest) ([]*dto.VolunteeringDTO, int, error) {
	vols, count, err := s.volunteeringRepo.List(ctx, params.Page, params.PageSize)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.VolunteeringDTO, 0, len(vols))
	for _, v := range vols {
		res = append(res, volunteeringToDTO(v))
	}
	return res, int(count), nil
}

func (s *volunteeringService) Create(ctx context.Context, editor domain.Editor, params *dto.VolunteeringSaveRequest) (*dto.VolunteeringDTO, error) {
	vol := &domain.Volunteering{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Club:        params.Club,
		Description: params.Description,
		Filters:     domain.Filters(params.Filters),
	}

	entry, err := s.historySvc.BuildEntry(editor, domain.ResourceVolunteering, vol.ID, nil, volunteeringToDTO(vol))
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	if err := s.volunteeringRepo.CreateWithHistory(ctx, vol, entry); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return volunteeringToDTO(vol), nil
}

func (s *volunteeringService) Update(ctx context.Context, editor domain.Editor, id string, params *dto.VolunteeringSaveRequest) (*dto.VolunteeringDTO, error) {
	current, err := s.volunteeringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVolunteeringNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	updated := &domain.Volunteering{
		ID:          id,
		Name:        params.Name,
		Club:        params.Club,
		Description: params.Description,
		Filters:     domain.Filters(params.Filters),
	}

	entry, err := s.historySvc.BuildEntry(editor, domain.ResourceVolunteering, id, volunteeringToDTO(current), volunteeringToDTO(updated))
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	if err := s.volunteeringRepo.UpdateWithHistory(ctx, updated, entry); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return volunteeringToDTO(updated), nil
}

func (s *volunteeringService) Delete(ctx context.Context, id string) error {
	err := s.volunteeringRepo.DeleteWithHistory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorVolunteeringNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}
