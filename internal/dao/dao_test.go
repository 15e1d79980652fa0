package dao

import (
	"context"
	"testing"

	"github.com/haierkeys/note-recall-service/global"
	"github.com/haierkeys/note-recall-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDao 构建基于内存 SQLite 的 Dao
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	cfg := &DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		AutoMigrate:  true,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}
	db, err := NewDBEngine(cfg)
	require.NoError(t, err)

	return New(db, context.Background(), WithConfig(cfg))
}

func seedUserSession(t *testing.T, d *Dao, uid int64) *domain.Session {
	t.Helper()

	sessionRepo := NewSessionRepository(d)
	session, err := sessionRepo.Create(context.Background(), &domain.Session{
		UID:  uid,
		Name: "work",
	})
	require.NoError(t, err)
	return session
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "hashed",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.UID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.UID, byEmail.UID)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryEmailUniqueIndex(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Email: "dup@example.com", Username: "a", Password: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "dup@example.com", Username: "b", Password: "y"})
	assert.Error(t, err)
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	d := newTestDao(t)
	repo := NewSessionRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Session{UID: 1, Name: "research"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateName(ctx, "renamed", created.ID))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "renamed", got.Name)

	require.NoError(t, repo.Delete(ctx, created.ID))

	gone, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	list, err := repo.ListByUID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNoteRepositoryListFilters(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	ctx := context.Background()

	session := seedUserSession(t, d, 1)
	other := seedUserSession(t, d, 2)

	notes := []*domain.Note{
		{UID: 1, SessionID: session.ID, Title: "Meeting notes", Tags: []string{"work", "meeting"}, OrderKey: 2},
		{UID: 1, SessionID: session.ID, Title: "Grocery list", Tags: []string{"home"}, OrderKey: 1},
		{UID: 2, SessionID: other.ID, Title: "Meeting notes", Tags: []string{"work"}, OrderKey: 3},
	}
	for _, n := range notes {
		_, err := noteRepo.Create(ctx, n)
		require.NoError(t, err)
	}

	// 会话过滤，按 order_key 升序
	got, err := noteRepo.List(ctx, 1, domain.NoteListFilter{SessionID: session.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Grocery list", got[0].Title)
	assert.Equal(t, "Meeting notes", got[1].Title)
	assert.Equal(t, "work", got[0].SessionName)

	// 标签过滤，命中任一标签即匹配
	got, err = noteRepo.List(ctx, 1, domain.NoteListFilter{Tags: []string{"meeting", "home"}})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// 标题搜索大小写不敏感
	got, err = noteRepo.List(ctx, 1, domain.NoteListFilter{Search: "MEETING"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Meeting notes", got[0].Title)

	// 过滤条件为交集
	got, err = noteRepo.List(ctx, 1, domain.NoteListFilter{SessionID: session.ID, Search: "grocery"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// 其他用户的笔记不可见
	got, err = noteRepo.List(ctx, 1, domain.NoteListFilter{Search: "meeting"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNoteRepositoryTagMatchIsExact(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	ctx := context.Background()

	session := seedUserSession(t, d, 1)

	_, err := noteRepo.Create(ctx, &domain.Note{
		UID: 1, SessionID: session.ID, Title: "a", Tags: []string{"workshop"},
	})
	require.NoError(t, err)

	// "work" 不应命中 "workshop"
	got, err := noteRepo.List(ctx, 1, domain.NoteListFilter{Tags: []string{"work"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNoteRepositoryFiltersEscapeLikeWildcards(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	ctx := context.Background()

	session := seedUserSession(t, d, 1)

	seed := []*domain.Note{
		{UID: 1, SessionID: session.ID, Title: "100% done", Tags: []string{"100%"}},
		{UID: 1, SessionID: session.ID, Title: "100x done", Tags: []string{"100x"}},
		{UID: 1, SessionID: session.ID, Title: "a_b", Tags: []string{"a_b"}},
		{UID: 1, SessionID: session.ID, Title: "axb", Tags: []string{"axb"}},
	}
	for _, n := range seed {
		_, err := noteRepo.Create(ctx, n)
		require.NoError(t, err)
	}

	// "%" 与 "_" 是字面量而非通配符
	got, err := noteRepo.List(ctx, 1, domain.NoteListFilter{Tags: []string{"100%"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100% done", got[0].Title)

	got, err = noteRepo.List(ctx, 1, domain.NoteListFilter{Tags: []string{"a_b"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a_b", got[0].Title)

	got, err = noteRepo.List(ctx, 1, domain.NoteListFilter{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100% done", got[0].Title)
}

func TestNoteRepositoryUpdateAndDelete(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	ctx := context.Background()

	session := seedUserSession(t, d, 1)

	created, err := noteRepo.Create(ctx, &domain.Note{
		UID: 1, SessionID: session.ID, Title: "before", Keybinding: "a",
	})
	require.NoError(t, err)
	global.Dump(created)
	assert.Equal(t, "work", created.SessionName)

	created.Title = "after"
	created.Keybinding = ""
	updated, err := noteRepo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.False(t, updated.HasKeybinding())

	require.NoError(t, noteRepo.Delete(ctx, created.ID, 1))
	gone, err := noteRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestNoteRepositoryKeybindingConflict(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	ctx := context.Background()

	sessionA := seedUserSession(t, d, 1)
	sessionB := seedUserSession(t, d, 1)

	holder, err := noteRepo.Create(ctx, &domain.Note{
		UID: 1, SessionID: sessionA.ID, Title: "holder", Keybinding: "k",
	})
	require.NoError(t, err)

	// 同一会话内冲突
	conflict, err := noteRepo.FindKeybindingConflict(ctx, "k", 1, sessionA.ID, 0, domain.KeybindingScopeSession)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, holder.ID, conflict.ID)

	// 其他会话不冲突
	conflict, err = noteRepo.FindKeybindingConflict(ctx, "k", 1, sessionB.ID, 0, domain.KeybindingScopeSession)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// 用户范围跨会话冲突
	conflict, err = noteRepo.FindKeybindingConflict(ctx, "k", 1, sessionB.ID, 0, domain.KeybindingScopeUser)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	// 更新自身不算冲突
	conflict, err = noteRepo.FindKeybindingConflict(ctx, "k", 1, sessionA.ID, holder.ID, domain.KeybindingScopeSession)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// 关闭检查时始终无冲突
	conflict, err = noteRepo.FindKeybindingConflict(ctx, "k", 1, sessionA.ID, 0, domain.KeybindingScopeNone)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestNoteRepositoryListTagSets(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	ctx := context.Background()

	session := seedUserSession(t, d, 1)

	_, err := noteRepo.Create(ctx, &domain.Note{UID: 1, SessionID: session.ID, Title: "a", Tags: []string{"x", "y"}})
	require.NoError(t, err)
	_, err = noteRepo.Create(ctx, &domain.Note{UID: 1, SessionID: session.ID, Title: "b", Tags: []string{"y"}})
	require.NoError(t, err)
	_, err = noteRepo.Create(ctx, &domain.Note{UID: 1, SessionID: session.ID, Title: "c"})
	require.NoError(t, err)

	sets, err := noteRepo.ListTagSets(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, sets, 3)

	var flat []string
	for _, set := range sets {
		flat = append(flat, set...)
	}
	assert.ElementsMatch(t, []string{"x", "y", "y"}, flat)
}

func TestNoteRepositorySurvivesSessionDelete(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	sessionRepo := NewSessionRepository(d)
	ctx := context.Background()

	session := seedUserSession(t, d, 1)

	_, err := noteRepo.Create(ctx, &domain.Note{UID: 1, SessionID: session.ID, Title: "orphan"})
	require.NoError(t, err)

	// 删除会话不级联删除笔记，软删除的会话行仍在，笔记保留原会话名称
	require.NoError(t, sessionRepo.Delete(ctx, session.ID))

	got, err := noteRepo.List(ctx, 1, domain.NoteListFilter{SessionID: session.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "orphan", got[0].Title)
	assert.Equal(t, "work", got[0].SessionName)
}
