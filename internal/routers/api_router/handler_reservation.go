package api_router

import (
	"github.com/tams-cso/tams-club-cal-sub000/internal/app"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	pkgapp "github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/apperrors"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"github.com/gin-gonic/gin"
)

// ReservationHandler serves room bookings on the whole-hour grid.
type ReservationHandler struct {
	*Handler
}

func NewReservationHandler(a *app.App) *ReservationHandler {
	return &ReservationHandler{Handler: NewHandler(a)}
}

func (h *ReservationHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ReservationListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	reservations, err := h.App.ReservationService.List(c.Request.Context(), params)
	if err != nil {
		h.logError(c.Request.Context(), "ReservationHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(reservations))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	reservation, err := h.App.ReservationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "ReservationHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(reservation))
}

func (h *ReservationHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ReservationCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	reservation, err := h.App.ReservationService.Create(c.Request.Context(), editorFromContext(c), params)
	if err != nil {
		h.logError(c.Request.Context(), "ReservationHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(reservation))
}

func (h *ReservationHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ReservationUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	reservation, err := h.App.ReservationService.Update(c.Request.Context(), editorFromContext(c), c.Param("id"), params)
	if err != nil {
		h.logError(c.Request.Context(), "ReservationHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(reservation))
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if err := h.App.ReservationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logError(c.Request.Context(), "ReservationHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success)
}

func (h *ReservationHandler) DeleteSeries(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	res, err := h.App.ReservationService.DeleteSeries(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "ReservationHandler.DeleteSeries", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(res))
}
