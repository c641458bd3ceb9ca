package api_router

import (
	"github.com/tams-cso/tams-club-cal-sub000/internal/app"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	pkgapp "github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/apperrors"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"github.com/gin-gonic/gin"
)

type VolunteeringHandler struct {
	*Handler
}

func NewVolunteeringHandler(a *app.App) *VolunteeringHandler {
	return &VolunteeringHandler{Handler: NewHandler(a)}
}

func (h *VolunteeringHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.VolunteeringListRequest{}

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

	vols, total, err := h.App.VolunteeringService.List(c.Request.Context(), params)
	if err != nil {
		h.logError(c.Request.Context(), "VolunteeringHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponseList(code.Success, vols, total)
}

func (h *VolunteeringHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	vol, err := h.App.VolunteeringService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "VolunteeringHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(vol))
}

func (h *VolunteeringHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.VolunteeringSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	vol, err := h.App.VolunteeringService.Create(c.Request.Context(), editorFromContext(c), params)
	if err != nil {
		h.logError(c.Request.Context(), "VolunteeringHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(vol))
}

func (h *VolunteeringHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.VolunteeringSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	vol, err := h.App.VolunteeringService.Update(c.Request.Context(), editorFromContext(c), c.Param("id"), params)
	if err != nil {
		h.logError(c.Request.Context(), "VolunteeringHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(vol))
}

func (h *VolunteeringHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if err := h.App.VolunteeringService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logError(c.Request.Context(), "VolunteeringHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success)
}
