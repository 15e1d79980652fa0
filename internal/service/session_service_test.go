package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-recall-service/internal/dto"
	"github.com/haierkeys/note-recall-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createSession(t, 1, "alpha")
	env.createSession(t, 1, "beta")
	env.createSession(t, 2, "other-user")

	list, err := env.sessions.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "beta", list[1].Name)
}

func TestSessionRenameEnforcesOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session := env.createSession(t, 1, "mine")

	// 非所有者重命名被拒绝
	_, err := env.sessions.Rename(ctx, 2, session.ID, &dto.SessionRenameRequest{Name: "stolen"})
	assertCode(t, err, code.ErrorSessionForbidden)

	// 不存在的会话
	_, err = env.sessions.Rename(ctx, 1, session.ID+100, &dto.SessionRenameRequest{Name: "x"})
	assertCode(t, err, code.ErrorSessionNotFound)

	renamed, err := env.sessions.Rename(ctx, 1, session.ID, &dto.SessionRenameRequest{Name: "updated"})
	require.NoError(t, err)
	assert.Equal(t, "updated", renamed.Name)
}

func TestSessionDeleteEnforcesOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session := env.createSession(t, 1, "doomed")

	assertCode(t, env.sessions.Delete(ctx, 2, session.ID), code.ErrorSessionForbidden)
	assertCode(t, env.sessions.Delete(ctx, 1, session.ID+100), code.ErrorSessionNotFound)

	require.NoError(t, env.sessions.Delete(ctx, 1, session.ID))

	list, err := env.sessions.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
