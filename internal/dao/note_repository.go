package dao

import (
	"context"
	"strings"
	"time"

	"github.com/haierkeys/note-recall-service/internal/domain"
	"github.com/haierkeys/note-recall-service/internal/model"
	"github.com/haierkeys/note-recall-service/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) db() *gorm.DB {
	// 会话名称查询依赖会话表，一并迁移
	r.dao.useWithMigrate("Session")
	return r.dao.useWithMigrate("Note")
}

// noteRow 笔记查询行，带出所属会话名称
type noteRow struct {
	model.Note
	SessionName string `gorm:"column:session_name"`
}

func (r *noteRepository) toDomain(m *noteRow) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:          m.ID,
		UID:         m.UID,
		SessionID:   m.SessionID,
		SessionName: m.SessionName,
		Title:       m.Title,
		Content:     m.Content,
		Tags:        []string(m.Tags),
		Keybinding:  m.Keybinding,
		OrderKey:    m.OrderKey,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

// withSessionName joins the session table so every row carries its session
// name without per-row lookups.
// withSessionName 关联会话表带出会话名称
func (r *noteRepository) withSessionName(ctx context.Context) *gorm.DB {
	return r.db().WithContext(ctx).
		Table("note").
		Select("note.*, session.name AS session_name").
		Joins("LEFT JOIN session ON session.id = note.session_id")
}

// GetByID 根据ID获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var row noteRow
	err := r.withSessionName(ctx).
		Where("note.id = ? AND note.is_deleted = 0", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&row), nil
}

// List 按过滤条件获取用户笔记，按 order_key 升序返回。
// 过滤条件之间取交集，Tags 内部命中任一标签即匹配。
func (r *noteRepository) List(ctx context.Context, uid int64, filter domain.NoteListFilter) ([]*domain.Note, error) {
	q := r.withSessionName(ctx).
		Where("note.uid = ? AND note.is_deleted = 0", uid)

	if filter.SessionID != 0 {
		q = q.Where("note.session_id = ?", filter.SessionID)
	}
	if len(filter.Tags) > 0 {
		// tags 列为 JSON 数组文本，按带引号的完整标签匹配
		tagCond := r.db().Where("note.tags LIKE ? ESCAPE '!'", tagPattern(filter.Tags[0]))
		for _, tag := range filter.Tags[1:] {
			tagCond = tagCond.Or("note.tags LIKE ? ESCAPE '!'", tagPattern(tag))
		}
		q = q.Where(tagCond)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(note.title) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(filter.Search))+"%")
	}

	var rows []*noteRow
	if err := q.Order("note.order_key ASC, note.id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.toDomain(row))
	}
	return out, nil
}

// escapeLike 转义 LIKE 通配符，须配合 ESCAPE '!' 使用
// 不用反斜杠做转义符，各数据库对字符串里反斜杠的处理不一致
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

func tagPattern(tag string) string {
	return `%"` + escapeLike(tag) + `"%`
}

// Create 创建笔记
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	now := timex.Now()
	m := &model.Note{
		UID:        note.UID,
		SessionID:  note.SessionID,
		Title:      note.Title,
		Content:    note.Content,
		Tags:       model.TagList(note.Tags),
		Keybinding: note.Keybinding,
		OrderKey:   note.OrderKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.db().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, m.ID)
}

// Update 更新笔记全部可变字段
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	err := r.db().WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND uid = ? AND is_deleted = 0", note.ID, note.UID).
		Updates(map[string]interface{}{
			"session_id": note.SessionID,
			"title":      note.Title,
			"content":    note.Content,
			"tags":       model.TagList(note.Tags),
			"keybinding": note.Keybinding,
			"order_key":  note.OrderKey,
			"updated_at": timex.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, note.ID)
}

// Delete 删除笔记
func (r *noteRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.db().WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_at": timex.Now(),
		}).Error
}

// FindKeybindingConflict 在指定范围内查找占用同一快捷键的其他笔记
func (r *noteRepository) FindKeybindingConflict(ctx context.Context, key string, uid, sessionID, excludeID int64, scope domain.KeybindingScope) (*domain.Note, error) {
	if scope == domain.KeybindingScopeNone || key == "" {
		return nil, nil
	}

	q := r.withSessionName(ctx).
		Where("note.uid = ? AND note.is_deleted = 0 AND note.keybinding = ?", uid, key)
	if scope == domain.KeybindingScopeSession {
		q = q.Where("note.session_id = ?", sessionID)
	}
	if excludeID != 0 {
		q = q.Where("note.id != ?", excludeID)
	}

	var row noteRow
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&row), nil
}

// ListTagSets 获取用户全部笔记的标签集合，未去重
func (r *noteRepository) ListTagSets(ctx context.Context, uid int64) ([][]string, error) {
	var tagLists []model.TagList
	err := r.db().WithContext(ctx).
		Model(&model.Note{}).
		Where("uid = ? AND is_deleted = 0", uid).
		Pluck("tags", &tagLists).Error
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(tagLists))
	for _, tags := range tagLists {
		out = append(out, []string(tags))
	}
	return out, nil
}
