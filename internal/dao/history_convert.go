package dao

import (
	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/model"
)

func historyToModel(h *domain.History) *model.History {
	if h == nil {
		return nil
	}
	return &model.History{
		ID:       h.ID,
		Resource: h.Resource,
		EditID:   h.EditID,
		Time:     h.Time,
		EditorID: h.Editor.UID,
		EditorIP: h.Editor.IP,
		Fields:   model.NewJSONColumn(h.Fields),
	}
}

func historyToDomain(m *model.History) *domain.History {
	if m == nil {
		return nil
	}
	return &domain.History{
		ID:       m.ID,
		Resource: m.Resource,
		EditID:   m.EditID,
		Time:     m.Time,
		Editor:   domain.Editor{UID: m.EditorID, IP: m.EditorIP},
		Fields:   m.Fields.Data,
	}
}

func historiesToModel(entries []*domain.History) []*model.History {
	out := make([]*model.History, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyToModel(e))
	}
	return out
}
