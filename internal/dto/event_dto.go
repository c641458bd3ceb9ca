// Package dto defines data transfer objects (request parameters and
// response structs).
package dto

// EventListRequest bounds the calendar window in UTC milliseconds. Zero
// bounds list everything.
type EventListRequest struct {
	Start    int64 `json:"start" form:"start"`
	End      int64 `json:"end" form:"end"`
	Page     int   `json:"page" form:"page"`
	PageSize int   `json:"pageSize" form:"pageSize"`
}

// EventCreateRequest creates a single event or, when Repeats is set, the
// whole series up to RepeatsUntil (inclusive).
type EventCreateRequest struct {
	Type         string `json:"type" form:"type" binding:"required,oneof=event signup"`
	Name         string `json:"name" form:"name" binding:"required"`
	Club         string `json:"club" form:"club"`
	Description  string `json:"description" form:"description"`
	Location     string `json:"location" form:"location"`
	Start        int64  `json:"start" form:"start" binding:"required"`
	End          int64  `json:"end" form:"end"`
	NoEnd        bool   `json:"noEnd" form:"noEnd"`
	AllDay       bool   `json:"allDay" form:"allDay"`
	Repeats      string `json:"repeats" form:"repeats" binding:"omitempty,oneof=week month"`
	RepeatsUntil int64  `json:"repeatsUntil" form:"repeatsUntil"`
}

// EventUpdateRequest replaces the editable fields of one instance.
type EventUpdateRequest struct {
	Type        string `json:"type" form:"type" binding:"required,oneof=event signup"`
	Name        string `json:"name" form:"name" binding:"required"`
	Club        string `json:"club" form:"club"`
	Description string `json:"description" form:"description"`
	Location    string `json:"location" form:"location"`
	Start       int64  `json:"start" form:"start" binding:"required"`
	End         int64  `json:"end" form:"end"`
	NoEnd       bool   `json:"noEnd" form:"noEnd"`
	AllDay      bool   `json:"allDay" form:"allDay"`
}

// EventDTO is the API shape of one event instance.
type EventDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Club        string `json:"club"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	NoEnd       bool   `json:"noEnd"`
	AllDay      bool   `json:"allDay"`
	RepeatingID string `json:"repeatingId"`
	RepeatEnd   int64  `json:"repeatEnd"`
}

// EventSeriesDTO reports a bulk series operation.
type EventSeriesDTO struct {
	RepeatingID string `json:"repeatingId"`
	Count       int64  `json:"count"`
}
