package api_router

import (
	"context"

	"github.com/haierkeys/note-recall-service/internal/app"
	"github.com/haierkeys/note-recall-service/internal/dto"
	"github.com/haierkeys/note-recall-service/internal/middleware"
	pkgapp "github.com/haierkeys/note-recall-service/pkg/app"
	"github.com/haierkeys/note-recall-service/pkg/code"
	"github.com/haierkeys/note-recall-service/pkg/convert"
	apperrors "github.com/haierkeys/note-recall-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler 会话 API 路由处理器
type SessionHandler struct {
	*Handler
}

// NewSessionHandler 创建 SessionHandler 实例
func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{
		Handler: NewHandler(a),
	}
}

// List 获取当前用户的全部会话
func (h *SessionHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	sessions, err := h.App.SessionService.List(ctx, uid)
	if err != nil {
		h.logError(ctx, "SessionHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(sessions))
}

// Create 创建会话
func (h *SessionHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SessionCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("SessionHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	session, err := h.App.SessionService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "SessionHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreate.WithData(session))
}

// Rename 重命名会话
func (h *SessionHandler) Rename(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SessionRenameRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("SessionHandler.Rename.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	id := convert.StrTo(c.Param("id")).MustInt64()
	ctx := c.Request.Context()

	session, err := h.App.SessionService.Rename(ctx, uid, id, params)
	if err != nil {
		h.logError(ctx, "SessionHandler.Rename", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(session))
}

// Delete 删除会话
func (h *SessionHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	id := convert.StrTo(c.Param("id")).MustInt64()
	ctx := c.Request.Context()

	if err := h.App.SessionService.Delete(ctx, uid, id); err != nil {
		h.logError(ctx, "SessionHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoContent)
}

// logError 记录错误日志，包含 Trace ID
func (h *SessionHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
