package domain

import "context"

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

// Club cover images are URLs produced by an external upload pipeline.
type Club struct {
	ID                string
	Name              string
	Advised           bool
	Description       string
	Links             []string
	CoverImg          string
	CoverImgThumbnail string
	Execs             []Exec
	Committees        []Committee
}

type ClubRepository interface {
	GetByID(ctx context.Context, id string) (*Club, error)
	List(ctx context.Context, page, pageSize int) ([]*Club, int64, error)
	CreateWithHistory(ctx context.Context, club *Club, entry *History) error
	UpdateWithHistory(ctx context.Context, club *Club, entry *History) error
	DeleteWithHistory(ctx context.Context, id string) error
}
