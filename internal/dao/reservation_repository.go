package dao

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/model"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/convert"

	"gorm.io/gorm"
)

type reservationRepository struct {
	dao *Dao
}

func NewReservationRepository(dao *Dao) domain.ReservationRepository {
	return &reservationRepository{dao: dao}
}

func (r *reservationRepository) toDomain(m *model.Reservation) *domain.Reservation {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.Reservation{}).(*domain.Reservation)
}

func (r *reservationRepository) toModel(res *domain.Reservation) *model.Reservation {
	if res == nil {
		return nil
	}
	return convert.StructAssign(res, &model.Reservation{}).(*model.Reservation)
}

func (r *reservationRepository) toDomainList(rows []*model.Reservation) []*domain.Reservation {
	list := make([]*domain.Reservation, 0, len(rows))
	for _, m := range rows {
		list = append(list, r.toDomain(m))
	}
	return list
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var m model.Reservation
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *reservationRepository) ListRange(ctx context.Context, location string, start, end int64) ([]*domain.Reservation, error) {
	q := r.dao.db.WithContext(ctx).Where("start < ? AND end_time > ?", end, start)
	if location != "" {
		q = q.Where("location = ?", location)
	}

	var rows []*model.Reservation
	if err := q.Order("start ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *reservationRepository) FindOverlap(ctx context.Context, location string, start, end int64, excludeIDs []string) ([]*domain.Reservation, error) {
	q := r.dao.db.WithContext(ctx).
		Where("location = ? AND start < ? AND end_time > ?", location, end, start)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var rows []*model.Reservation
	if err := q.Order("start ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *reservationRepository) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Reservation, error) {
	var rows []*model.Reservation
	err := r.dao.db.WithContext(ctx).
		Where("repeat_origin_id = ?", seriesID).
		Order("start ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *reservationRepository) CreateWithHistory(ctx context.Context, reservations []*domain.Reservation, entries []*domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, res := range reservations {
			if err := tx.Create(r.toModel(res)).Error; err != nil {
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

func (r *reservationRepository) UpdateWithHistory(ctx context.Context, reservations []*domain.Reservation, entries []*domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, res := range reservations {
			m := r.toModel(res)
			if err := tx.Model(&model.Reservation{}).Where("id = ?", m.ID).
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

func (r *reservationRepository) DeleteWithHistory(ctx context.Context, id string) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Reservation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("resource = ? AND edit_id = ?", domain.ResourceReservations, id).
			Delete(&model.History{}).Error
	})
}

func (r *reservationRepository) DeleteSeriesWithHistory(ctx context.Context, seriesID string) (int64, error) {
	var count int64
	err := r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&model.Reservation{}).
			Where("repeat_origin_id = ?", seriesID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		res := tx.Where("id IN ?", ids).Delete(&model.Reservation{})
		if res.Error != nil {
			return res.Error
		}
		count = res.RowsAffected

		return tx.Where("resource IN ? AND edit_id IN ?",
			[]string{domain.ResourceReservations, domain.ResourceRepeatingReservations}, ids).
			Delete(&model.History{}).Error
	})
	return count, err
}

func (r *reservationRepository) DeleteEndedBefore(ctx context.Context, cutoff int64) (int64, error) {
	res := r.dao.db.WithContext(ctx).
		Where("end_time < ?", cutoff).
		Delete(&model.Reservation{})
	return res.RowsAffected, res.Error
}
