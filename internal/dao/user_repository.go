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

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

// db 获取用户表查询句柄
func (r *userRepository) db() *gorm.DB {
	return r.dao.useWithMigrate("User")
}

// toDomain 将数据库模型转换为领域模型
// 同名同类型字段批量复制，类型不同的字段单独转换
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	u := &domain.User{}
	_ = convert.StructAssign(u, m)
	u.IsDeleted = m.IsDeleted == 1
	u.CreatedAt = time.Time(m.CreatedAt)
	u.UpdatedAt = time.Time(m.UpdatedAt)
	return u
}

// toModel 将领域模型转换为数据库模型
func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	m := &model.User{}
	_ = convert.StructAssign(m, user)
	m.IsDeleted = 0
	if user.IsDeleted {
		m.IsDeleted = 1
	}
	m.CreatedAt = timex.Time(user.CreatedAt)
	m.UpdatedAt = timex.Time(user.UpdatedAt)
	return m
}

// GetByUID 根据UID获取用户
func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.db().WithContext(ctx).
		Where("uid = ? AND is_deleted = 0", uid).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m model.User
	err := r.db().WithContext(ctx).
		Where("email = ? AND is_deleted = 0", email).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	now := timex.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := r.db().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}
