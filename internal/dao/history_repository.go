package dao

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/model"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"
)

type historyRepository struct {
	dao *Dao
}

func NewHistoryRepository(dao *Dao) domain.HistoryRepository {
	return &historyRepository{dao: dao}
}

func (r *historyRepository) GetByID(ctx context.Context, id string) (*domain.History, error) {
	var m model.History
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return historyToDomain(&m), nil
}

func (r *historyRepository) ListByEdit(ctx context.Context, resource, editID string) ([]*domain.History, error) {
	var rows []*model.History
	err := r.dao.db.WithContext(ctx).
		Where("resource = ? AND edit_id = ?", resource, editID).
		Order("time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.History, 0, len(rows))
	for _, m := range rows {
		list = append(list, historyToDomain(m))
	}
	return list, nil
}

func (r *historyRepository) ListFeed(ctx context.Context, page, pageSize int) ([]*domain.History, int64, error) {
	q := r.dao.db.WithContext(ctx).Model(&model.History{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []*model.History
	err := q.Order("time DESC").
		Limit(pageSize).
		Offset(app.GetPageOffset(page, pageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	list := make([]*domain.History, 0, len(rows))
	for _, m := range rows {
		list = append(list, historyToDomain(m))
	}
	return list, count, nil
}

func (r *historyRepository) Create(ctx context.Context, entries []*domain.History) error {
	if len(entries) == 0 {
		return nil
	}
	return r.dao.db.WithContext(ctx).Create(historiesToModel(entries)).Error
}
