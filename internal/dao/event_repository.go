package dao

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/model"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/convert"

	"gorm.io/gorm"
)

type eventRepository struct {
	dao *Dao
}

func NewEventRepository(dao *Dao) domain.EventRepository {
	return &eventRepository{dao: dao}
}

func (r *eventRepository) toDomain(m *model.Event) *domain.Event {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.Event{}).(*domain.Event)
}

func (r *eventRepository) toModel(e *domain.Event) *model.Event {
	if e == nil {
		return nil
	}
	return convert.StructAssign(e, &model.Event{}).(*model.Event)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var m model.Event
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *eventRepository) List(ctx context.Context, start, end int64, page, pageSize int) ([]*domain.Event, int64, error) {
	q := r.dao.db.WithContext(ctx).Model(&model.Event{})
	if start != 0 || end != 0 {
		q = q.Where("start < ? AND end_time > ?", end, start)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []*model.Event
	err := q.Order("start ASC").
		Limit(pageSize).
		Offset(app.GetPageOffset(page, pageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	list := make([]*domain.Event, 0, len(rows))
	for _, m := range rows {
		list = append(list, r.toDomain(m))
	}
	return list, count, nil
}

func (r *eventRepository) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Event, error) {
	var rows []*model.Event
	err := r.dao.db.WithContext(ctx).
		Where("repeating_id = ?", seriesID).
		Order("start ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Event, 0, len(rows))
	for _, m := range rows {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

func (r *eventRepository) CreateWithHistory(ctx context.Context, events []*domain.Event, entries []*domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range events {
			if err := tx.Create(r.toModel(e)).Error; err != nil {
				return err
			}
		}
		if len(entries) > 0 {
			if err := tx.Create(historiesToModel(entries)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *eventRepository) UpdateWithHistory(ctx context.Context, events []*domain.Event, entries []*domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range events {
			m := r.toModel(e)
			if err := tx.Model(&model.Event{}).Where("id = ?", m.ID).
				Select("*").Omit("id", "created_at").Updates(m).Error; err != nil {
				return err
			}
		}
		if len(entries) > 0 {
			if err := tx.Create(historiesToModel(entries)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *eventRepository) DeleteWithHistory(ctx context.Context, id string) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Event{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("resource = ? AND edit_id = ?", domain.ResourceEvents, id).
			Delete(&model.History{}).Error
	})
}

func (r *eventRepository) DeleteSeriesWithHistory(ctx context.Context, seriesID string) (int64, error) {
	var count int64
	err := r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&model.Event{}).
			Where("repeating_id = ?", seriesID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		res := tx.Where("id IN ?", ids).Delete(&model.Event{})
		if res.Error != nil {
			return res.Error
		}
		count = res.RowsAffected

		return tx.Where("resource = ? AND edit_id IN ?", domain.ResourceEvents, ids).
			Delete(&model.History{}).Error
	})
	return count, err
}
