package dto

// FiltersDTO describes how a volunteering opportunity can be signed up for.
type FiltersDTO struct {
	Limited  bool `json:"limited" form:"limited"`
	Semester bool `json:"semester" form:"semester"`
	SetTimes bool `json:"setTimes" form:"setTimes"`
	Weekly   bool `json:"weekly" form:"weekly"`
	Open     bool `json:"open" form:"open"`
}

type VolunteeringListRequest struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

type VolunteeringSaveRequest struct {
	Name        string     `json:"name" form:"name" binding:"required"`
	Club        string     `json:"club" form:"club"`
	Description string     `json:"description" form:"description"`
	Filters     FiltersDTO `json:"filters" form:"filters"`
}

type VolunteeringDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Club        string     `json:"club"`
	Description string     `json:"description"`
	Filters     FiltersDTO `json:"filters"`
}
