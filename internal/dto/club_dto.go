package dto

// ExecDTO is one club officer entry.
type ExecDTO struct {
	Name        string `json:"name" form:"name"`
	Position    string `json:"position" form:"position"`
	Description string `json:"description" form:"description"`
	Img         string `json:"img" form:"img"`
}

// CommitteeDTO is one club committee entry.
type CommitteeDTO struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Heads       []string `json:"heads" form:"heads"`
	Links       []string `json:"links" form:"links"`
}

type ClubListRequest struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

// ClubSaveRequest carries the full editable club payload. Image fields are
// URLs produced by an external upload pipeline.
type ClubSaveRequest struct {
	Name              string         `json:"name" form:"name" binding:"required"`
	Advised           bool           `json:"advised" form:"advised"`
	Description       string         `json:"description" form:"description"`
	Links             []string       `json:"links" form:"links"`
	CoverImg          string         `json:"coverImg" form:"coverImg"`
	CoverImgThumbnail string         `json:"coverImgThumbnail" form:"coverImgThumbnail"`
	Execs             []ExecDTO      `json:"execs" form:"execs"`
	Committees        []CommitteeDTO `json:"committees" form:"committees"`
}

type ClubDTO struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Advised           bool           `json:"advised"`
	Description       string         `json:"description"`
	Links             []string       `json:"links"`
	CoverImg          string         `json:"coverImg"`
	CoverImgThumbnail string         `json:"coverImgThumbnail"`
	Execs             []ExecDTO      `json:"execs"`
	Committees        []CommitteeDTO `json:"committees"`
}
