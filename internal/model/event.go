package model

import "github.com/tams-cso/tams-club-cal-sub000/pkg/timex"

// Event is a calendar event or signup slot. Instances of a repeating
// series are independent rows linked by RepeatingID.
type Event struct {
	ID          string     `gorm:"primaryKey;size:64" json:"id"`
	Type        string     `gorm:"size:16;index" json:"type"`
	Name        string     `gorm:"size:256" json:"name"`
	Club        string     `gorm:"size:256" json:"club"`
	Description string     `json:"description"`
	Location    string     `gorm:"size:256" json:"location"`
	Start       int64      `gorm:"index" json:"start"`
	End         int64      `gorm:"column:end_time" json:"end"`
	NoEnd       bool       `json:"noEnd"`
	AllDay      bool       `json:"allDay"`
	RepeatingID string     `gorm:"size:64;index" json:"repeatingId"`
	RepeatEnd   int64      `json:"repeatEnd"`
	CreatedAt   timex.Time `json:"createdAt"`
	UpdatedAt   timex.Time `json:"updatedAt"`
}
