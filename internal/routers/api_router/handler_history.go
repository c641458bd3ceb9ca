package api_router

import (
	"github.com/tams-cso/tams-club-cal-sub000/internal/app"
	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	pkgapp "github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/apperrors"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the audit trail: the global feed, per-resource
// chains, single entries and rollbacks.
type HistoryHandler struct {
	*Handler
}

func NewHistoryHandler(a *app.App) *HistoryHandler {
	return &HistoryHandler{Handler: NewHandler(a)}
}

var validResources = map[string]bool{
	domain.ResourceEvents:                true,
	domain.ResourceClubs:                 true,
	domain.ResourceVolunteering:          true,
	domain.ResourceReservations:          true,
	domain.ResourceRepeatingReservations: true,
}

func (h *HistoryHandler) Feed(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.HistoryFeedRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}
	if params.Page == 0 {
		params.Page = pkgapp.GetPage(c)
	}
	if params.PageSize == 0 {
		params.PageSize = pkgapp.GetPageSizeWithConfig(c, h.App.Config().GetPaginationConfig())
	}

	entries, total, err := h.App.HistoryService.Feed(c.Request.Context(), params)
	if err != nil {
		h.logError(c.Request.Context(), "HistoryHandler.Feed", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponseList(code.Success, entries, total)
}

// ListByEdit returns the full chain for one resource instance.
func (h *HistoryHandler) ListByEdit(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	resource := c.Param("resource")
	if !validResources[resource] {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("unknown resource " + resource))
		return
	}

	entries, err := h.App.HistoryService.ListByEdit(c.Request.Context(), resource, c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "HistoryHandler.ListByEdit", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(entries))
}

func (h *HistoryHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	entry, err := h.App.HistoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "HistoryHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(entry))
}

// Restore rolls a resource back to its state before the entry.
func (h *HistoryHandler) Restore(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	entry, err := h.App.HistoryService.Restore(c.Request.Context(), editorFromContext(c), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "HistoryHandler.Restore", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(entry))
}
