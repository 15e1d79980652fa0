package service

import (
	"context"
	"strings"

	"github.com/haierkeys/note-recall-service/internal/domain"
	"github.com/haierkeys/note-recall-service/internal/dto"
	"github.com/haierkeys/note-recall-service/pkg/app"
	"github.com/haierkeys/note-recall-service/pkg/code"
	"github.com/haierkeys/note-recall-service/pkg/timex"
	"github.com/haierkeys/note-recall-service/pkg/util"

	"go.uber.org/zap"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Register 用户注册
	Register(ctx context.Context, params *dto.UserSignupRequest) (*dto.UserSignupDTO, error)

	// Login 用户登录，返回携带 Token 的用户信息
	Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserLoginDTO, error)

	// GetInfo 获取用户信息
	GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// Register 用户注册，邮箱统一转为小写存储，重复注册返回冲突错误
func (s *userService) Register(ctx context.Context, params *dto.UserSignupRequest) (*dto.UserSignupDTO, error) {
	if s.config == nil || !s.config.User.RegisterIsEnable {
		return nil, code.ErrorUserRegisterDisabled
	}

	email := strings.ToLower(strings.TrimSpace(params.Email))
	if !util.IsValidEmail(email) {
		return nil, code.ErrorInvalidParams
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if existing != nil {
		return nil, code.ErrorUserEmailAlreadyExists
	}

	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorUserRegister.WithDetails(err.Error())
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:    email,
		Username: params.Name,
		Password: password,
	})
	if err != nil {
		return nil, code.ErrorUserRegister.WithDetails(err.Error())
	}

	s.logger.Info("user registered",
		zap.Int64("uid", user.UID),
		zap.String("email", user.Email))

	return &dto.UserSignupDTO{
		ID:    user.UID,
		Email: user.Email,
	}, nil
}

// Login 用户登录
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserLoginDTO, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if user == nil {
		return nil, code.ErrorUserLoginFailed
	}

	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserLoginFailed
	}

	token, err := s.tokenManager.Generate(user.UID, user.Email, clientIP)
	if err != nil {
		return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
	}

	return &dto.UserLoginDTO{
		ID:    user.UID,
		Email: user.Email,
		Name:  user.Username,
		Token: token,
	}, nil
}

// GetInfo 获取用户信息
func (s *userService) GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if user == nil {
		return nil, code.ErrorUserNotFound
	}

	return &dto.UserDTO{
		ID:        user.UID,
		Email:     user.Email,
		Name:      user.Username,
		CreatedAt: timex.Time(user.CreatedAt),
	}, nil
}
