package model

import "github.com/tams-cso/tams-club-cal-sub000/pkg/timex"

// Filters describe how a volunteering opportunity can be signed up for.
type Filters struct {
	Limited  bool `json:"limited"`
	Semester bool `json:"semester"`
	SetTimes bool `json:"setTimes"`
	Weekly   bool `json:"weekly"`
	Open     bool `json:"open"`
}

type Volunteering struct {
	ID          string              `gorm:"primaryKey;size:64" json:"id"`
	Name        string              `gorm:"size:256;index" json:"name"`
	Club        string              `gorm:"size:256" json:"club"`
	Description string              `json:"description"`
	Filters     JSONColumn[Filters] `gorm:"type:text" json:"filters"`
	CreatedAt   timex.Time          `json:"createdAt"`
	UpdatedAt   timex.Time          `json:"updatedAt"`
}
