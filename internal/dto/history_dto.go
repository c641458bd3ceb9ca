package dto

import "github.com/tams-cso/tams-club-cal-sub000/pkg/diff"

type HistoryFeedRequest struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

// EditorDTO names who made an edit: a registered user or, for anonymous
// edits, the request address.
type EditorDTO struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	IP   string `json:"ip,omitempty"`
}

// HistoryDTO is one audit record. Fields is empty for deletions recorded
// implicitly by removing the chain.
type HistoryDTO struct {
	ID       string       `json:"id"`
	Resource string       `json:"resource"`
	EditID   string       `json:"editId"`
	Time     int64        `json:"time"`
	Editor   EditorDTO    `json:"editor"`
	Fields   []diff.Field `json:"fields"`
}

// HistoryFeedItemDTO is one row of the global feed, with the resource name
// resolved for display.
type HistoryFeedItemDTO struct {
	HistoryDTO
	Name string `json:"name"`
}
