package service

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/note-recall-service/internal/dao"
	"github.com/haierkeys/note-recall-service/internal/domain"
	"github.com/haierkeys/note-recall-service/internal/dto"
	"github.com/haierkeys/note-recall-service/pkg/app"
	"github.com/haierkeys/note-recall-service/pkg/code"
	"github.com/haierkeys/note-recall-service/pkg/writequeue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv 聚合服务层测试所需依赖
type testEnv struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	noteRepo    domain.NoteRepository

	users    UserService
	sessions SessionService
	notes    NoteService
	tags     TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		AutoMigrate:  true,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}
	db, err := dao.NewDBEngine(cfg)
	require.NoError(t, err)
	d := dao.New(db, context.Background(), dao.WithConfig(cfg))

	logger := zap.NewNop()
	svcConfig := &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: true},
		App:  AppServiceConfig{KeybindingScope: domain.KeybindingScopeSession},
	}
	tokenManager := app.NewTokenManager(app.TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})

	env := &testEnv{
		userRepo:    dao.NewUserRepository(d),
		sessionRepo: dao.NewSessionRepository(d),
		noteRepo:    dao.NewNoteRepository(d),
	}
	wq := writequeue.New(nil, logger)
	t.Cleanup(func() { _ = wq.Shutdown(context.Background()) })

	env.users = NewUserService(env.userRepo, tokenManager, logger, svcConfig)
	env.sessions = NewSessionService(env.sessionRepo, logger)
	env.notes = NewNoteService(env.noteRepo, env.sessionRepo, wq, logger, svcConfig)
	env.tags = NewTagService(env.noteRepo)
	return env
}

// assertCode 断言错误携带预期的业务错误码
func assertCode(t *testing.T, err error, want *code.Code) {
	t.Helper()
	require.Error(t, err)
	got, ok := err.(*code.Code)
	require.True(t, ok, "expected *code.Code, got %T: %v", err, err)
	assert.Equal(t, want.Code(), got.Code())
}

func (e *testEnv) signup(t *testing.T, email string) int64 {
	t.Helper()
	user, err := e.users.Register(context.Background(), &dto.UserSignupRequest{
		Email:    email,
		Password: "secret123",
		Name:     "tester",
	})
	require.NoError(t, err)
	return user.ID
}

func (e *testEnv) createSession(t *testing.T, uid int64, name string) *dto.SessionDTO {
	t.Helper()
	session, err := e.sessions.Create(context.Background(), uid, &dto.SessionCreateRequest{Name: name})
	require.NoError(t, err)
	return session
}

func (e *testEnv) createNote(t *testing.T, uid, sessionID int64, title string, tags []string) *dto.NoteDTO {
	t.Helper()
	note, err := e.notes.Create(context.Background(), uid, &dto.NoteCreateRequest{
		SessionID: sessionID,
		Title:     title,
		Tags:      tags,
	})
	require.NoError(t, err)
	return note
}

func strPtr(s string) *string { return &s }
