package api_router

import (
	"net/http"
	"time"

	"github.com/haierkeys/note-recall-service/internal/app"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查 API 处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建 HealthHandler 实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(a),
	}
}

// HealthResponse health check response structure
// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}

// Health health check endpoint, reports database connectivity
// Health 健康检查端点，报告数据库连通性
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:   "ok",
		Version:  h.App.Version(),
		Uptime:   time.Since(h.App.StartTime).Round(time.Second).String(),
		Database: "ok",
	}

	httpStatus := http.StatusOK
	if err := h.App.DB.WithContext(c.Request.Context()).Raw("SELECT 1").Error; err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, resp)
}

// VersionResponse 版本信息响应结构
type VersionResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitTag    string `json:"gitTag,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
}

// ServerVersion 返回服务版本信息
func (h *HealthHandler) ServerVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Name:      app.Name,
		Version:   app.Version,
		GitTag:    app.GitTag,
		BuildTime: app.BuildTime,
	})
}
