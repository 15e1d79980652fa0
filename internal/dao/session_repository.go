package dao

import (
	"context"
	"time"

	"github.com/haierkeys/note-recall-service/internal/domain"
	"github.com/haierkeys/note-recall-service/internal/model"
	"github.com/haierkeys/note-recall-service/pkg/convert"
	"github.com/haierkeys/note-recall-service/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository 实现 domain.SessionRepository 接口
type sessionRepository struct {
	dao *Dao
}

// NewSessionRepository 创建 SessionRepository 实例
func NewSessionRepository(dao *Dao) domain.SessionRepository {
	return &sessionRepository{dao: dao}
}

func (r *sessionRepository) db() *gorm.DB {
	return r.dao.useWithMigrate("Session")
}

func (r *sessionRepository) toDomain(m *model.Session) *domain.Session {
	if m == nil {
		return nil
	}
	s := &domain.Session{}
	_ = convert.StructAssign(s, m)
	s.CreatedAt = time.Time(m.CreatedAt)
	s.UpdatedAt = time.Time(m.UpdatedAt)
	return s
}

// GetByID 根据ID获取会话
func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	var m model.Session
	err := r.db().WithContext(ctx).
		Where("id = ? AND is_deleted = 0", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByUID 获取用户全部会话，按创建时间升序
func (r *sessionRepository) ListByUID(ctx context.Context, uid int64) ([]*domain.Session, error) {
	var ms []*model.Session
	err := r.db().WithContext(ctx).
		Where("uid = ? AND is_deleted = 0", uid).
		Order("created_at ASC, id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Session, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.toDomain(m))
	}
	return out, nil
}

// Create 创建会话
func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	now := timex.Now()
	m := &model.Session{
		UID:       session.UID,
		Name:      session.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdateName 重命名会话
func (r *sessionRepository) UpdateName(ctx context.Context, name string, id int64) error {
	return r.db().WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ? AND is_deleted = 0", id).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": timex.Now(),
		}).Error
}

// Delete 删除会话
func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	return r.db().WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_at": timex.Now(),
		}).Error
}
