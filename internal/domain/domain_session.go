package domain

import "time"

// Session 会话领域模型，笔记的命名分组
type Session struct {
	ID        int64
	UID       int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy 判断会话是否属于指定用户
func (s *Session) OwnedBy(uid int64) bool {
	return s.UID == uid
}
