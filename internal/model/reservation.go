package model

import "github.com/tams-cso/tams-club-cal-sub000/pkg/timex"

// Reservation blocks whole-hour slots of one room. Repeating reservations
// are independent rows linked by RepeatOriginID.
type Reservation struct {
	ID             string     `gorm:"primaryKey;size:64" json:"id"`
	EventID        string     `gorm:"size:64;index" json:"eventId"`
	Name           string     `gorm:"size:256" json:"name"`
	Club           string     `gorm:"size:256" json:"club"`
	Description    string     `json:"description"`
	Location       string     `gorm:"size:128;index" json:"location"`
	Start          int64      `gorm:"index" json:"start"`
	End            int64      `gorm:"column:end_time" json:"end"`
	AllDay         bool       `json:"allDay"`
	RepeatOriginID string     `gorm:"size:64;index" json:"repeatOriginId"`
	RepeatEnd      int64      `json:"repeatEnd"`
	CreatedAt      timex.Time `json:"createdAt"`
	UpdatedAt      timex.Time `json:"updatedAt"`
}
