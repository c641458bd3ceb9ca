package model

import "github.com/tams-cso/tams-club-cal-sub000/pkg/timex"

type User struct {
	UID       int64      `gorm:"primaryKey;autoIncrement" json:"uid"`
	Email     string     `gorm:"size:256;uniqueIndex" json:"email"`
	Name      string     `gorm:"size:256" json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
