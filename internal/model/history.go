package model

import (
	"github.com/tams-cso/tams-club-cal-sub000/pkg/diff"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/timex"
)

// History is one immutable audit record of a create or update. EditorID and
// EditorIP are mutually exclusive: authenticated edits carry the user ID,
// anonymous edits carry the client address.
type History struct {
	ID        string                   `gorm:"primaryKey;size:64" json:"id"`
	Resource  string                   `gorm:"size:32;index:idx_history_edit" json:"resource"`
	EditID    string                   `gorm:"size:64;index:idx_history_edit" json:"editId"`
	Time      int64                    `gorm:"index" json:"time"`
	EditorID  int64                    `json:"editorId,omitempty"`
	EditorIP  string                   `gorm:"size:64" json:"editorIp,omitempty"`
	Fields    JSONColumn[[]diff.Field] `gorm:"type:text" json:"fields"`
	CreatedAt timex.Time               `json:"createdAt"`
}
