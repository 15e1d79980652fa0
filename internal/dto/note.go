package dto

import "github.com/haierkeys/note-recall-service/pkg/timex"

// NoteListRequest 笔记列表过滤参数，各维度之间取交集
type NoteListRequest struct {
	SessionID int64    `form:"sessionId"`
	Tags      []string `form:"tag"`
	Search    string   `form:"search"`
}

// NoteCreateRequest 创建笔记请求参数
type NoteCreateRequest struct {
	SessionID int64    `json:"sessionId" form:"sessionId" binding:"required"`
	Title     string   `json:"title" form:"title" binding:"required"`
	Content   string   `json:"content" form:"content"`
	Tags      []string `json:"tags" form:"tags"`
	OrderKey  float64  `json:"orderKey" form:"orderKey"`
}

// NoteUpdateRequest 更新笔记请求参数。
// 指针字段为 nil 表示该字段未出现、保持原值；Keybinding 按键是否出现判定，
// 显式 null 表示清除绑定。
type NoteUpdateRequest struct {
	Title      *string           `json:"title"`
	Content    *string           `json:"content"`
	Tags       *[]string         `json:"tags"`
	OrderKey   *float64          `json:"orderKey"`
	Keybinding Optional[*string] `json:"keybinding"`
}

// NoteDTO 笔记数据传输对象，SessionName 为冗余的会话名称
type NoteDTO struct {
	ID          int64      `json:"id"`
	SessionID   int64      `json:"sessionId"`
	SessionName string     `json:"sessionName"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	Keybinding  *string    `json:"keybinding"`
	OrderKey    float64    `json:"orderKey"`
	CreatedAt   timex.Time `json:"createdAt"`
	UpdatedAt   timex.Time `json:"updatedAt"`
}
