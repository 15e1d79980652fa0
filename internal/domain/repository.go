package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户，未找到时返回 (nil, nil)
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByEmail 根据邮箱获取用户，未找到时返回 (nil, nil)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)
}

// SessionRepository 会话仓储接口
type SessionRepository interface {
	// GetByID 根据ID获取会话，不限所有者，归属校验由服务层完成
	// 未找到时返回 (nil, nil)
	GetByID(ctx context.Context, id int64) (*Session, error)

	// ListByUID 获取用户全部会话
	ListByUID(ctx context.Context, uid int64) ([]*Session, error)

	// Create 创建会话
	Create(ctx context.Context, session *Session) (*Session, error)

	// UpdateName 重命名会话
	UpdateName(ctx context.Context, name string, id int64) error

	// Delete 删除会话
	Delete(ctx context.Context, id int64) error
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// GetByID 根据ID获取笔记，不限所有者，归属校验由服务层完成
	// 未找到时返回 (nil, nil)
	GetByID(ctx context.Context, id int64) (*Note, error)

	// List 按过滤条件获取用户笔记，按 order_key 升序返回
	List(ctx context.Context, uid int64, filter NoteListFilter) ([]*Note, error)

	// Create 创建笔记
	Create(ctx context.Context, note *Note) (*Note, error)

	// Update 更新笔记
	Update(ctx context.Context, note *Note) (*Note, error)

	// Delete 删除笔记
	Delete(ctx context.Context, id, uid int64) error

	// FindKeybindingConflict finds another note holding the same binding
	// within scope. excludeID skips the note being updated. Returns nil when
	// the binding is free.
	// FindKeybindingConflict 在指定范围内查找占用同一快捷键的其他笔记
	FindKeybindingConflict(ctx context.Context, key string, uid, sessionID, excludeID int64, scope KeybindingScope) (*Note, error)

	// ListTagSets 获取用户全部笔记的标签集合，未去重
	ListTagSets(ctx context.Context, uid int64) ([][]string, error)
}
