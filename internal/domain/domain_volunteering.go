package domain

import "context"

type Filters struct {
	Limited  bool `json:"limited"`
	Semester bool `json:"semester"`
	SetTimes bool `json:"setTimes"`
	Weekly   bool `json:"weekly"`
	Open     bool `json:"open"`
}

type Volunteering struct {
	ID          string
	Name        string
	Club        string
	Description string
	Filters     Filters
}

type VolunteeringRepository interface {
	GetByID(ctx context.Context, id string) (*Volunteering, error)
	List(ctx context.Context, page, pageSize int) ([]*Volunteering, int64, error)
	CreateWithHistory(ctx context.Context, vol *Volunteering, entry *History) error
	UpdateWithHistory(ctx context.Context, vol *Volunteering, entry *History) error
	DeleteWithHistory(ctx context.Context, id string) error
}
