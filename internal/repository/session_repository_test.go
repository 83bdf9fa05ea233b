package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	repo := NewSessionRepository()

	s1 := repo.GetOrCreate("alice")
	s2 := repo.GetOrCreate("alice")
	require.NotNil(t, s1)
	assert.Same(t, s1, s2)
	assert.Equal(t, "alice", s1.ID)
}

func TestGetOrCreateDefaults(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("")
	assert.Equal(t, DefaultSessionID, s.ID)
	assert.Equal(t, DefaultLanguage, s.Language)
	assert.Nil(t, s.Problem)
	assert.Empty(t, s.History)

	// 空键与显式 default 落到同一个会话
	assert.Same(t, s, repo.GetOrCreate(DefaultSessionID))
}

func TestGetOrCreateIsolatesSessions(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("a")
	b := repo.GetOrCreate("b")
	assert.NotSame(t, a, b)

	a.Language = "Go"
	assert.Equal(t, DefaultLanguage, b.Language)
}
