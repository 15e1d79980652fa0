package domain

import "time"

// Note 笔记领域模型
// SessionName 为冗余字段，从所属会话带出，避免列表接口逐条回查
type Note struct {
	ID          int64
	UID         int64
	SessionID   int64
	SessionName string
	Title       string
	Content     string
	Tags        []string
	Keybinding  string
	OrderKey    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy 判断笔记是否属于指定用户
func (n *Note) OwnedBy(uid int64) bool {
	return n.UID == uid
}

// HasKeybinding 判断笔记是否绑定了快捷键
func (n *Note) HasKeybinding() bool {
	return n.Keybinding != ""
}

// NoteListFilter 笔记列表过滤条件，各条件之间为交集
type NoteListFilter struct {
	// SessionID 为 0 表示不按会话过滤
	SessionID int64
	// Tags 非空时命中任一标签即匹配
	Tags []string
	// Search 对标题做大小写不敏感的子串匹配
	Search string
}

// IsEmpty reports whether no filter is set; an unfiltered list request
// returns nothing rather than every note.
// IsEmpty 判断是否未设置任何过滤条件
func (f NoteListFilter) IsEmpty() bool {
	return f.SessionID == 0 && len(f.Tags) == 0 && f.Search == ""
}

// KeybindingScope 快捷键唯一性检查范围
type KeybindingScope string

const (
	// KeybindingScopeSession 同一会话内快捷键唯一
	KeybindingScopeSession KeybindingScope = "session"
	// KeybindingScopeUser 同一用户所有笔记内快捷键唯一
	KeybindingScopeUser KeybindingScope = "user"
	// KeybindingScopeNone 不检查快捷键冲突
	KeybindingScopeNone KeybindingScope = "none"
)

// Valid 判断取值是否合法
func (s KeybindingScope) Valid() bool {
	switch s {
	case KeybindingScopeSession, KeybindingScopeUser, KeybindingScopeNone:
		return true
	}
	return false
}
