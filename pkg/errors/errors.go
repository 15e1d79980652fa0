package errors

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haierkeys/note-recall-service/pkg/code"
)

// AppError 统一应用错误结构体
// The JSON shape is the public error body: {"error": "..."}.
type AppError struct {
	// Status HTTP 状态码（不序列化）
	Status int `json:"-"`
	// Message 错误消息
	Message string `json:"error"`
	// Details 错误详情（可选）
	Details []string `json:"details,omitempty"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间（不序列化）
	Timestamp time.Time `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Status:    c.StatusCode(),
		Message:   c.Msg(),
		Details:   c.Details(),
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// WithDetails 设置详情并返回自身（链式调用）
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = details
	return e
}

// ErrorResponse 统一错误响应处理
// Writes the error as {"error": "..."} with the HTTP status carried by the
// error; unknown errors become a generic 500.
// 将错误转换为统一 JSON 响应，未知错误返回通用 500
func ErrorResponse(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, appErr)
		return
	}

	// Service layer returns *code.Code values directly
	// Service 层直接返回 *code.Code
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		msg := codeErr.Msg()
		if codeErr.HaveDetails() {
			msg = msg + ": " + strings.Join(codeErr.Details(), ", ")
		}
		c.JSON(codeErr.StatusCode(), &AppError{
			Status:    codeErr.StatusCode(),
			Message:   msg,
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, &AppError{
		Status:    http.StatusInternalServerError,
		Message:   "Internal Server Error",
		Timestamp: time.Now(),
	})
}

// IsAppError 检查错误是否为 AppError 类型
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
