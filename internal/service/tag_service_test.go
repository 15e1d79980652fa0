package service

import (
	"context"
	"sync"
	"testing"

	"github.com/haierkeys/note-recall-service/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListSortedDistinctFlattening(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session := env.createSession(t, 1, "work")
	env.createNote(t, 1, session.ID, "a", []string{"zeta", "alpha"})
	env.createNote(t, 1, session.ID, "b", []string{"alpha", "mid"})
	env.createNote(t, 1, session.ID, "c", nil)

	// 其他用户的标签不可见
	other := env.createSession(t, 2, "other")
	env.createNote(t, 2, other.ID, "d", []string{"hidden"})

	got, err := env.tags.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, got)
}

func TestTagListEmptyForUserWithoutTags(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.tags.List(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTagListReflectsUpdates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session := env.createSession(t, 1, "work")
	note := env.createNote(t, 1, session.ID, "a", []string{"old"})

	_, err := env.notes.Update(ctx, 1, note.ID, &dto.NoteUpdateRequest{
		Tags: &[]string{"new"},
	})
	require.NoError(t, err)

	// 每次调用重新推导，不做缓存
	got, err := env.tags.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
}

func TestTagListConcurrentCallsAgree(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session := env.createSession(t, 1, "work")
	env.createNote(t, 1, session.ID, "a", []string{"x", "y"})

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := 0; i < len(results); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := env.tags.List(ctx, 1)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, []string{"x", "y"}, got)
	}
}
