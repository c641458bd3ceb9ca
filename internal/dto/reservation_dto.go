package dto

// ReservationListRequest bounds the booking grid window in UTC
// milliseconds. Location narrows to one room.
type ReservationListRequest struct {
	Location string `json:"location" form:"location"`
	Start    int64  `json:"start" form:"start"`
	End      int64  `json:"end" form:"end"`
}

// ReservationCreateRequest books whole-hour slots of one room. Raw times
// are rounded outward to hour boundaries before the overlap check. Repeats
// only supports weekly series.
type ReservationCreateRequest struct {
	EventID      string `json:"eventId" form:"eventId"`
	Name         string `json:"name" form:"name" binding:"required"`
	Club         string `json:"club" form:"club"`
	Description  string `json:"description" form:"description"`
	Location     string `json:"location" form:"location" binding:"required"`
	Start        int64  `json:"start" form:"start" binding:"required"`
	End          int64  `json:"end" form:"end" binding:"required"`
	AllDay       bool   `json:"allDay" form:"allDay"`
	Repeats      bool   `json:"repeats" form:"repeats"`
	RepeatsUntil int64  `json:"repeatsUntil" form:"repeatsUntil"`
}

type ReservationUpdateRequest struct {
	EventID     string `json:"eventId" form:"eventId"`
	Name        string `json:"name" form:"name" binding:"required"`
	Club        string `json:"club" form:"club"`
	Description string `json:"description" form:"description"`
	Location    string `json:"location" form:"location" binding:"required"`
	Start       int64  `json:"start" form:"start" binding:"required"`
	End         int64  `json:"end" form:"end" binding:"required"`
	AllDay      bool   `json:"allDay" form:"allDay"`
}

type ReservationDTO struct {
	ID             string `json:"id"`
	EventID        string `json:"eventId"`
	Name           string `json:"name"`
	Club           string `json:"club"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Start          int64  `json:"start"`
	End            int64  `json:"end"`
	AllDay         bool   `json:"allDay"`
	RepeatOriginID string `json:"repeatOriginId"`
	RepeatEnd      int64  `json:"repeatEnd"`
}

// ReservationSeriesDTO reports a bulk series operation.
type ReservationSeriesDTO struct {
	RepeatOriginID string `json:"repeatOriginId"`
	Count          int64  `json:"count"`
}
