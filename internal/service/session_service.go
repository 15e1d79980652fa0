package service

import (
	"context"

	"github.com/haierkeys/note-recall-service/internal/domain"
	"github.com/haierkeys/note-recall-service/internal/dto"
	"github.com/haierkeys/note-recall-service/pkg/code"
	"github.com/haierkeys/note-recall-service/pkg/timex"

	"go.uber.org/zap"
)

// SessionService 定义会话业务服务接口
type SessionService interface {
	// List 获取用户全部会话
	List(ctx context.Context, uid int64) ([]*dto.SessionDTO, error)

	// Create 创建会话
	Create(ctx context.Context, uid int64, params *dto.SessionCreateRequest) (*dto.SessionDTO, error)

	// Rename 重命名会话
	Rename(ctx context.Context, uid, id int64, params *dto.SessionRenameRequest) (*dto.SessionDTO, error)

	// Delete 删除会话，不级联删除其中的笔记
	Delete(ctx context.Context, uid, id int64) error
}

// sessionService 实现 SessionService 接口
type sessionService struct {
	sessionRepo domain.SessionRepository
	logger      *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(sessionRepo domain.SessionRepository, logger *zap.Logger) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *sessionService) domainToDTO(session *domain.Session) *dto.SessionDTO {
	if session == nil {
		return nil
	}
	return &dto.SessionDTO{
		ID:        session.ID,
		Name:      session.Name,
		CreatedAt: timex.Time(session.CreatedAt),
		UpdatedAt: timex.Time(session.UpdatedAt),
	}
}

// getOwned loads a session and enforces ownership: absent rows map to not
// found, foreign rows to forbidden.
// getOwned 加载会话并校验归属
func (s *sessionService) getOwned(ctx context.Context, uid, id int64) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if session == nil {
		return nil, code.ErrorSessionNotFound
	}
	if !session.OwnedBy(uid) {
		return nil, code.ErrorSessionForbidden
	}
	return session, nil
}

// List 获取用户全部会话
func (s *sessionService) List(ctx context.Context, uid int64) ([]*dto.SessionDTO, error) {
	sessions, err := s.sessionRepo.ListByUID(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	out := make([]*dto.SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, s.domainToDTO(session))
	}
	return out, nil
}

// Create 创建会话
func (s *sessionService) Create(ctx context.Context, uid int64, params *dto.SessionCreateRequest) (*dto.SessionDTO, error) {
	session, err := s.sessionRepo.Create(ctx, &domain.Session{
		UID:  uid,
		Name: params.Name,
	})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(session), nil
}

// Rename 重命名会话
func (s *sessionService) Rename(ctx context.Context, uid, id int64, params *dto.SessionRenameRequest) (*dto.SessionDTO, error) {
	if _, err := s.getOwned(ctx, uid, id); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.UpdateName(ctx, params.Name, id); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(session), nil
}

// Delete 删除会话
func (s *sessionService) Delete(ctx context.Context, uid, id int64) error {
	if _, err := s.getOwned(ctx, uid, id); err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.logger.Info("session deleted",
		zap.Int64("uid", uid),
		zap.Int64("sessionId", id))
	return nil
}
