package api_router

import (
	"github.com/tams-cso/tams-club-cal-sub000/internal/app"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	pkgapp "github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/apperrors"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	*Handler
}

func NewClubHandler(a *app.App) *ClubHandler {
	return &ClubHandler{Handler: NewHandler(a)}
}

func (h *ClubHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ClubListRequest{}

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

	clubs, total, err := h.App.ClubService.List(c.Request.Context(), params)
	if err != nil {
		h.logError(c.Request.Context(), "ClubHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponseList(code.Success, clubs, total)
}

func (h *ClubHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	club, err := h.App.ClubService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(c.Request.Context(), "ClubHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(club))
}

func (h *ClubHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ClubSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	club, err := h.App.ClubService.Create(c.Request.Context(), editorFromContext(c), params)
	if err != nil {
		h.logError(c.Request.Context(), "ClubHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(club))
}

func (h *ClubHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ClubSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	club, err := h.App.ClubService.Update(c.Request.Context(), editorFromContext(c), c.Param("id"), params)
	if err != nil {
		h.logError(c.Request.Context(), "ClubHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(club))
}

func (h *ClubHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if err := h.App.ClubService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logError(c.Request.Context(), "ClubHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success)
}
