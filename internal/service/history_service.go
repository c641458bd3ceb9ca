package service

import (
	"context"
	"errors"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/diff"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryService builds and serves the immutable audit trail. BuildEntry is
// pure so resource services can assemble entries before opening their write
// transaction.
type HistoryService interface {
	// BuildEntry diffs prev against next (API shapes with json tags) and
	// wraps the result in a History record. A nil prev records a creation.
	BuildEntry(editor domain.Editor, resource, editID string, prev, next any) (*domain.History, error)

	Feed(ctx context.Context, params *dto.HistoryFeedRequest) ([]*dto.HistoryFeedItemDTO, int, error)
	ListByEdit(ctx context.Context, resource, editID string) ([]*dto.HistoryDTO, error)
	Get(ctx context.Context, id string) (*dto.HistoryDTO, error)

	// Restore writes the entry's old values back onto the live resource and
	// records the rollback as a fresh history entry.
	Restore(ctx context.Context, editor domain.Editor, entryID string) (*dto.HistoryDTO, error)
}

type historyService struct {
	historyRepo      domain.HistoryRepository
	eventRepo        domain.EventRepository
	clubRepo         domain.ClubRepository
	volunteeringRepo domain.VolunteeringRepository
	userRepo         domain.UserRepository
	clock            func() time.Time
}

func NewHistoryService(
	historyRepo domain.HistoryRepository,
	eventRepo domain.EventRepository,
	clubRepo domain.ClubRepository,
	volunteeringRepo domain.VolunteeringRepository,
	userRepo domain.UserRepository,
) HistoryService {
	return &historyService{
		historyRepo:      historyRepo,
		eventRepo:        eventRepo,
		clubRepo:         clubRepo,
		volunteeringRepo: volunteeringRepo,
		userRepo:         userRepo,
		clock:            time.Now,
	}
}

func (s *historyService) BuildEntry(editor domain.Editor, resource, editID string, prev, next any) (*domain.History, error) {
	nextVal, err := diff.FromStruct(next)
	if err != nil {
		return nil, err
	}
	nextObj := nextVal.ObjectVal()
	if nextObj == nil {
		return nil, errors.New("history: next state is not an object")
	}

	var fields []diff.Field
	if prev == nil {
		fields = diff.Creation(nextObj)
	} else {
		prevVal, err := diff.FromStruct(prev)
		if err != nil {
			return nil, err
		}
		prevObj := prevVal.ObjectVal()
		if prevObj == nil {
			return nil, errors.New("history: previous state is not an object")
		}
		fields = diff.Compare(prevObj, nextObj)
	}

	return &domain.History{
		ID:       uuid.NewString(),
		Resource: resource,
		EditID:   editID,
		Time:     s.clock().UTC().UnixMilli(),
		Editor:   editor,
		Fields:   fields,
	}, nil
}

func (s *historyService) domainToDTO(ctx context.Context, h *domain.History) *dto.HistoryDTO {
	if h == nil {
		return nil
	}
	editor := dto.EditorDTO{ID: h.Editor.UID, IP: h.Editor.IP}
	if h.Editor.UID != 0 {
		if u, err := s.userRepo.GetByUID(ctx, h.Editor.UID); err == nil {
			editor.Name = u.Name
		}
	}
	fields := h.Fields
	if fields == nil {
		fields = []diff.Field{}
	}
	return &dto.HistoryDTO{
		ID:       h.ID,
		Resource: h.Resource,
		EditID:   h.EditID,
		Time:     h.Time,
		Editor:   editor,
		Fields:   fields,
	}
}

// resourceName resolves the display name of the edited resource; a deleted
// resource yields an empty name rather than an error.
func (s *historyService) resourceName(ctx context.Context, resource, editID string) string {
	switch resource {
	case domain.ResourceEvents:
		if e, err := s.eventRepo.GetByID(ctx, editID); err == nil {
			return e.Name
		}
	case domain.ResourceClubs:
		if c, err := s.clubRepo.GetByID(ctx, editID); err == nil {
			return c.Name
		}
	case domain.ResourceVolunteering:
		if v, err := s.volunteeringRepo.GetByID(ctx, editID); err == nil {
			return v.Name
		}
	}
	return ""
}

func (s *historyService) Feed(ctx context.Context, params *dto.HistoryFeedRequest) ([]*dto.HistoryFeedItemDTO, int, error) {
	entries, count, err := s.historyRepo.ListFeed(ctx, params.Page, params.PageSize)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.HistoryFeedItemDTO, 0, len(entries))
	for _, h := range entries {
		res = append(res, &dto.HistoryFeedItemDTO{
			HistoryDTO: *s.domainToDTO(ctx, h),
			Name:       s.resourceName(ctx, h.Resource, h.EditID),
		})
	}
	return res, int(count), nil
}

func (s *historyService) ListByEdit(ctx context.Context, resource, editID string) ([]*dto.HistoryDTO, error) {
	entries, err := s.historyRepo.ListByEdit(ctx, resource, editID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	res := make([]*dto.HistoryDTO, 0, len(entries))
	for _, h := range entries {
		res = append(res, s.domainToDTO(ctx, h))
	}
	return res, nil
}

func (s *historyService) Get(ctx context.Context, id string) (*dto.HistoryDTO, error) {
	h, err := s.historyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorHistoryNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(ctx, h), nil
}

func (s *historyService) Restore(ctx context.Context, editor domain.Editor, entryID string) (*dto.HistoryDTO, error) {
	entry, err := s.historyRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorHistoryNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if len(entry.Fields) == 0 {
		return nil, code.ErrorHistoryNotRestorable.WithDetails("entry has no field changes")
	}

	switch entry.Resource {
	case domain.ResourceEvents:
		return s.restoreEvent(ctx, editor, entry)
	case domain.ResourceClubs:
		return s.restoreClub(ctx, editor, entry)
	case domain.ResourceVolunteering:
		return s.restoreVolunteering(ctx, editor, entry)
	default:
		return nil, code.ErrorHistoryNotRestorable.WithDetails("resource " + entry.Resource + " does not support restore")
	}
}

// rollBack patches the entry's old values onto the current API shape and
// decodes the result into out.
func rollBack(current any, entry *domain.History, out any) error {
	val, err := diff.FromStruct(current)
	if err != nil {
		return err
	}
	obj := val.ObjectVal()
	if obj == nil {
		return errors.New("history: current state is not an object")
	}
	for _, f := range entry.Fields {
		if err := diff.Apply(obj, f.Key, f.OldValue); err != nil {
			return err
		}
	}
	data, err := diff.ObjectValue(obj).MarshalJSON()
	if err != nil {
		return err
	}
	return sonic.Unmarshal(data, out)
}

func (s *historyService) restoreEvent(ctx context.Context, editor domain.Editor, entry *domain.History) (*dto.HistoryDTO, error) {
	current, err := s.eventRepo.GetByID(ctx, entry.EditID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorEventNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	currentDTO := eventToDTO(current)
	var restoredDTO dto.EventDTO
	if err := rollBack(currentDTO, entry, &restoredDTO); err != nil {
		return nil, code.ErrorHistoryNotRestorable.WithDetails(err.Error())
	}

	restored := *current
	restoredDTOToDomain(&restoredDTO, &restored)

	newEntry, err := s.BuildEntry(editor, domain.ResourceEvents, entry.EditID, currentDTO, &restoredDTO)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	err = s.eventRepo.UpdateWithHistory(ctx, []*domain.Event{&restored}, []*domain.History{newEntry})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(ctx, newEntry), nil
}

func (s *historyService) restoreClub(ctx context.Context, editor domain.Editor, entry *domain.History) (*dto.HistoryDTO, error) {
	current, err := s.clubRepo.GetByID(ctx, entry.EditID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorClubNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	currentDTO := clubToDTO(current)
	var restoredDTO dto.ClubDTO
	if err := rollBack(currentDTO, entry, &restoredDTO); err != nil {
		return nil, code.ErrorHistoryNotRestorable.WithDetails(err.Error())
	}

	restored := clubDTOToDomain(&restoredDTO)
	restored.ID = current.ID

	newEntry, err := s.BuildEntry(editor, domain.ResourceClubs, entry.EditID, currentDTO, &restoredDTO)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	if err := s.clubRepo.UpdateWithHistory(ctx, restored, newEntry); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(ctx, newEntry), nil
}

func (s *historyService) restoreVolunteering(ctx context.Context, editor domain.Editor, entry *domain.History) (*dto.HistoryDTO, error) {
	current, err := s.volunteeringRepo.GetByID(ctx, entry.EditID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVolunteeringNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	currentDTO := volunteeringToDTO(current)
	var restoredDTO dto.VolunteeringDTO
	if err := rollBack(currentDTO, entry, &restoredDTO); err != nil {
		return nil, code.ErrorHistoryNotRestorable.WithDetails(err.Error())
	}

	restored := volunteeringDTOToDomain(&restoredDTO)
	restored.ID = current.ID

	newEntry, err := s.BuildEntry(editor, domain.ResourceVolunteering, entry.EditID, currentDTO, &restoredDTO)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	if err := s.volunteeringRepo.UpdateWithHistory(ctx, restored, newEntry); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(ctx, newEntry), nil
}
