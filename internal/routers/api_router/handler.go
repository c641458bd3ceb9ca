// Package api_router provides the HTTP API route handlers.
package api_router

import (
	"context"

	"github.com/tams-cso/tams-club-cal-sub000/internal/app"
	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/middleware"
	pkgapp "github.com/tams-cso/tams-club-cal-sub000/pkg/app"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is the base embedded by every API handler, carrying the app
// container.
type Handler struct {
	App *app.App
}

func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// editorFromContext attributes the request to the authenticated user, or
// falls back to the client address for anonymous edits.
func editorFromContext(c *gin.Context) domain.Editor {
	if uid := pkgapp.GetUID(c); uid != 0 {
		return domain.Editor{UID: uid}
	}
	return domain.Editor{IP: pkgapp.GetRequestIP(c)}
}

func (h *Handler) logError(ctx context.Context, op string, err error) {
	h.App.Logger().Error(op,
		zap.String("trace_id", middleware.GetTraceID(ctx)),
		zap.Error(err),
	)
}
