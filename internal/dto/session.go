package dto

import "github.com/haierkeys/note-recall-service/pkg/timex"

// SessionCreateRequest 创建会话请求参数
type SessionCreateRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// SessionRenameRequest 重命名会话请求参数
type SessionRenameRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// SessionDTO 会话数据传输对象
type SessionDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
