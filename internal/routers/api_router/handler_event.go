package api_router

import (
	"net/http"

	"github.com/tams-cso/tams-club-cal-sub000/internal/app"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	pkgapp "github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/apperrors"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"github.com/gin-gonic/gin"
)

// EventHandler serves calendar events and repeating series.
type EventHandler struct {
	*Handler
}

func NewEventHandler(a *app.App) *EventHandler {
	return &EventHandler{Handler: NewHandler(a)}
}

func (h *EventHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EventListRequest{}

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

	events, total, err := h.App.EventService.List(c.Request.Context(), params)
	if err != nil {
		h.logError(c.Request.Context(), "EventHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponseList(code.Success, events, total)
}

func (h *EventHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	event, err := h.App.EventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "EventHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(event))
}

func (h *EventHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EventCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	event, err := h.App.EventService.Create(c.Request.Context(), editorFromContext(c), params)
	if err != nil {
		h.logError(c.Request.Context(), "EventHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(event))
}

func (h *EventHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EventUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	event, err := h.App.EventService.Update(c.Request.Context(), editorFromContext(c), c.Param("id"), params)
	if err != nil {
		h.logError(c.Request.Context(), "EventHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(event))
}

func (h *EventHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if err := h.App.EventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logError(c.Request.Context(), "EventHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success)
}

// UpdateSeries applies one edit to every instance of a repeating series.
func (h *EventHandler) UpdateSeries(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EventUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	res, err := h.App.EventService.UpdateSeries(c.Request.Context(), editorFromContext(c), c.Param("id"), params)
	if err != nil {
		h.logError(c.Request.Context(), "EventHandler.UpdateSeries", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(res))
}

func (h *EventHandler) DeleteSeries(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	res, err := h.App.EventService.DeleteSeries(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "EventHandler.DeleteSeries", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(res))
}

// ExportICS streams the calendar as text/calendar for feed subscribers.
func (h *EventHandler) ExportICS(c *gin.Context) {
	params := &dto.EventListRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		pkgapp.NewResponse(c).ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	body, err := h.App.EventService.ExportICS(c.Request.Context(), params)
	if err != nil {
		h.logError(c.Request.Context(), "EventHandler.ExportICS", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
