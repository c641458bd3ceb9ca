package model

import "github.com/tams-cso/tams-club-cal-sub000/pkg/timex"

type Exec struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Description string `json:"description"`
	Img         string `json:"img"`
}

type Committee struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Heads       []string `json:"heads"`
	Links       []string `json:"links"`
}

type Club struct {
	ID                string                  `gorm:"primaryKey;size:64" json:"id"`
	Name              string                  `gorm:"size:256;index" json:"name"`
	Advised           bool                    `json:"advised"`
	Description       string                  `json:"description"`
	Links             JSONColumn[[]string]    `gorm:"type:text" json:"links"`
	CoverImg          string                  `gorm:"size:512" json:"coverImg"`
	CoverImgThumbnail string                  `gorm:"size:512" json:"coverImgThumbnail"`
	Execs             JSONColumn[[]Exec]      `gorm:"type:text" json:"execs"`
	Committees        JSONColumn[[]Committee] `gorm:"type:text" json:"committees"`
	CreatedAt         timex.Time              `json:"createdAt"`
	UpdatedAt         timex.Time              `json:"updatedAt"`
}
