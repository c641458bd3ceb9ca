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

type ClubService interface {
	Get(ctx context.Context, id string) (*dto.ClubDTO, error)
	List(ctx context.Context, params *dto.ClubListRequest) ([]*dto.ClubDTO, int, error)
	Create(ctx context.Context, editor domain.Editor, params *dto.ClubSaveRequest) (*dto.ClubDTO, error)
	Update(ctx context.Context, editor domain.Editor, id string, params *dto.ClubSaveRequest) (*dto.ClubDTO, error)
	Delete(ctx context.Context, id string) error
}

type clubService struct {
	clubRepo   domain.ClubRepository
	historySvc HistoryService
}

func NewClubService(clubRepo domain.ClubRepository, historySvc HistoryService) ClubService {
	return &clubService{clubRepo: clubRepo, historySvc: historySvc}
}

func clubToDTO(c *domain.Club) *dto.ClubDTO {
	if c == nil {
		return nil
	}
	execs := make([]dto.ExecDTO, 0, len(c.Execs))
	for _, e := range c.Execs {
		execs = append(execs, dto.ExecDTO(e))
	}
	committees := make([]dto.CommitteeDTO, 0, len(c.Committees))
	for _, cm := range c.Committees {
		committees = append(committees, dto.CommitteeDTO(cm))
	}
	links := c.Links
	if links == nil {
		links = []string{}
	}
	return &dto.ClubDTO{
		ID:                c.ID,
		Name:              c.Name,
		Advised:           c.Advised,
		Description:       c.Description,
		Links:             links,
		CoverImg:          c.CoverImg,
		CoverImgThumbnail: c.CoverImgThumbnail,
		Execs:             execs,
		Committees:        committees,
	}
}

func clubDTOToDomain(d *dto.ClubDTO) *domain.Club {
	execs := make([]domain.Exec, 0, len(d.Execs))
	for _, e := range d.Execs {
		execs = append(execs, domain.Exec(e))
	}
	committees := make([]domain.Committee, 0, len(d.Committees))
	for _, cm := range d.Committees {
		committees = append(committees, domain.Committee(cm))
	}
	return &domain.Club{
		ID:                d.ID,
		Name:              d.Name,
		Advised:           d.Advised,
		Description:       d.Description,
		Links:             d.Links,
		CoverImg:          d.CoverImg,
		CoverImgThumbnail: d.CoverImgThumbnail,
		Execs:             execs,
		Committees:        committees,
	}
}

func clubFromSaveRequest(id string, params *dto.ClubSaveRequest) *domain.Club {
	return clubDTOToDomain(&dto.ClubDTO{
		ID:                id,
		Name:              params.Name,
		Advised:           params.Advised,
		Description:       params.Description,
		Links:             params.Links,
		CoverImg:          params.CoverImg,
		CoverImgThumbnail: params.CoverImgThumbnail,
		Execs:             params.Execs,
		Committees:        params.Committees,
	})
}

func (s *clubService) Get(ctx context.Context, id string) (*dto.ClubDTO, error) {
	c, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorClubNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return clubToDTO(c), nil
}

func (s *clubService) List(ctx context.Context, params *dto.ClubListRequest) ([]*dto.ClubDTO, int, error) {
	clubs, count, err := s.clubRepo.List(ctx, params.Page, params.PageSize)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.ClubDTO, 0, len(clubs))
	for _, c := range clubs {
		res = append(res, clubToDTO(c))
	}
	return res, int(count), nil
}

func (s *clubService) Create(ctx context.Context, editor domain.Editor, params *dto.ClubSaveRequest) (*dto.ClubDTO, error) {
	club := clubFromSaveRequest(uuid.NewString(), params)

	entry, err := s.historySvc.BuildEntry(editor, domain.ResourceClubs, club.ID, nil, clubToDTO(club))
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	if err := s.clubRepo.CreateWithHistory(ctx, club, entry); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return clubToDTO(club), nil
}

func (s *clubService) Update(ctx context.Context, editor domain.Editor, id string, params *dto.ClubSaveRequest) (*dto.ClubDTO, error) {
	current, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorClubNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	updated := clubFromSaveRequest(id, params)

	entry, err := s.historySvc.BuildEntry(editor, domain.ResourceClubs, id, clubToDTO(current), clubToDTO(updated))
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	if err := s.clubRepo.UpdateWithHistory(ctx, updated, entry); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return clubToDTO(updated), nil
}

func (s *clubService) Delete(ctx context.Context, id string) error {
	err := s.clubRepo.DeleteWithHistory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorClubNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}
