package dao

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/model"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"

	"gorm.io/gorm"
)

type clubRepository struct {
	dao *Dao
}

func NewClubRepository(dao *Dao) domain.ClubRepository {
	return &clubRepository{dao: dao}
}

func clubToModel(c *domain.Club) *model.Club {
	if c == nil {
		return nil
	}
	execs := make([]model.Exec, 0, len(c.Execs))
	for _, e := range c.Execs {
		execs = append(execs, model.Exec(e))
	}
	committees := make([]model.Committee, 0, len(c.Committees))
	for _, cm := range c.Committees {
		committees = append(committees, model.Committee(cm))
	}
	return &model.Club{
		ID:                c.ID,
		Name:              c.Name,
		Advised:           c.Advised,
		Description:       c.Description,
		Links:             model.NewJSONColumn(c.Links),
		CoverImg:          c.CoverImg,
		CoverImgThumbnail: c.CoverImgThumbnail,
		Execs:             model.NewJSONColumn(execs),
		Committees:        model.NewJSONColumn(committees),
	}
}

func clubToDomain(m *model.Club) *domain.Club {
	if m == nil {
		return nil
	}
	execs := make([]domain.Exec, 0, len(m.Execs.Data))
	for _, e := range m.Execs.Data {
		execs = append(execs, domain.Exec(e))
	}
	committees := make([]domain.Committee, 0, len(m.Committees.Data))
	for _, cm := range m.Committees.Data {
		committees = append(committees, domain.Committee(cm))
	}
	return &domain.Club{
		ID:                m.ID,
		Name:              m.Name,
		Advised:           m.Advised,
		Description:       m.Description,
		Links:             m.Links.Data,
		CoverImg:          m.CoverImg,
		CoverImgThumbnail: m.CoverImgThumbnail,
		Execs:             execs,
		Committees:        committees,
	}
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	var m model.Club
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return clubToDomain(&m), nil
}

func (r *clubRepository) List(ctx context.Context, page, pageSize int) ([]*domain.Club, int64, error) {
	q := r.dao.db.WithContext(ctx).Model(&model.Club{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []*model.Club
	err := q.Order("name ASC").
		Limit(pageSize).
		Offset(app.GetPageOffset(page, pageSize)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	list := make([]*domain.Club, 0, len(rows))
	for _, m := range rows {
		list = append(list, clubToDomain(m))
	}
	return list, count, nil
}

func (r *clubRepository) CreateWithHistory(ctx context.Context, club *domain.Club, entry *domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clubToModel(club)).Error; err != nil {
			return err
		}
		if entry != nil {
			return tx.Create(historyToModel(entry)).Error
		}
		return nil
	})
}

func (r *clubRepository) UpdateWithHistory(ctx context.Context, club *domain.Club, entry *domain.History) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := clubToModel(club)
		if err := tx.Model(&model.Club{}).Where("id = ?", m.ID).
			Select("*").Omit("id", "created_at").Updates(m).Error; err != nil {
			return err
		}
		if entry != nil {
			return tx.Create(historyToModel(entry)).Error
		}
		return nil
	})
}

func (r *clubRepository) DeleteWithHistory(ctx context.Context, id string) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Club{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("resource = ? AND edit_id = ?", domain.ResourceClubs, id).
			Delete(&model.History{}).Error
	})
}
