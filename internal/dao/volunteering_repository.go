package dao

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/model"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"

	"gorm.io/gorm"
)

type volunteeringRepository struct {
	dao *Dao
}

func NewVolunteeringRepository(dao *Dao) domain.VolunteeringRepository {
	return &volunteeringRepository{dao: dao}
}

func volunteeringToModel(v *domain.Volunteering) *model.Volunteering {
	if v == nil {
		return nil
	}
	return &model.Volunteering{
		ID:          v.ID,
		Name:        v.Name,
		Club:        v.Club,
		Description: v.Description,
		Filters:     model.NewJSONColumn(model.Filters(v.Filters)),
	}
}

func volunteeringToDomain(m *model.Volunteering) *domain.Volunteering {
	if m == nil {
		return nil
	}
	return &domain.Volunteering{
		ID:          m.ID,
		Name:        m.Name,
		Club:        m.Club,
		Description: m.Description,
		Filters:     domain.Filters(m.Filters.Data),
	}
}

func (r *volunteeringRepository) GetByID(ctx context.Context, id string) (*domain.Volunteering, error) {
	var m model.Volunteering
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return volunteeringToDomain(&m), nil
}

func (r *volunteeringRepository) List(ctx context.Context, page, pageSize int) ([]*domain.Volunteering, int64, error) {
	q := r.dao.db.WithContext(ctx).Model(&model.Volunteering{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []*model.Volunteering
	err := q.Order("name ASC").
		Limit(pageSize).
		Offset(app.GetPageOffset(page, pageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	list := make([]*domain.Volunteering, 0, len(rows))
	for _, m := range rows {
		list = append(list, volunteeringToDomain(m))
	}
	return list, count, nil
}

func (r *volunteeringRepository) CreateWithHistory(ctx context.Context, vol *domain.Volunteering, entry *domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(volunteeringToModel(vol)).Error; err != nil {
			return err
		}
		if entry != nil {
			return tx.Create(historyToModel(entry)).Error
		}
		return nil
	})
}

func (r *volunteeringRepository) UpdateWithHistory(ctx context.Context, vol *domain.Volunteering, entry *domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := volunteeringToModel(vol)
		if err := tx.Model(&model.Volunteering{}).Where("id = ?", m.ID).
			Select("*").Omit("id", "created_at").Updates(m).Error; err != nil {
			return err
		}
		if entry != nil {
			return tx.Create(historyToModel(entry)).Error
		}
		return nil
	})
}

func (r *volunteeringRepository) DeleteWithHistory(ctx context.Context, id string) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Volunteering{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("resource = ? AND edit_id = ?", domain.ResourceVolunteering, id).
			Delete(&model.History{}).Error
	})
}
