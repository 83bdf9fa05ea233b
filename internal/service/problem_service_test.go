package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mock-interview-go/internal/repository"
	"mock-interview-go/pkg/leetcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProblemQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"242", "242"},
		{" 242 ", "242"},
		{"https://leetcode.com/problems/valid-anagram", "valid-anagram"},
		{"https://x/problems/valid-anagram?x=1", "valid-anagram"},
		{"https://leetcode.com/problems/two-sum/description/", "two-sum"},
	}
	for _, tt := range tests {
		got, err := ParseProblemQuery(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseProblemQueryErrors(t *testing.T) {
	_, err := ParseProblemQuery("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ParseProblemQuery("   ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ParseProblemQuery("hello world")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseProblemQuery("https://leetcode.com/problems/")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func newProblemTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadProblemReplacesSessionContext(t *testing.T) {
	srv := newProblemTestServer(t, http.StatusOK,
		`{"title":"Valid Anagram","content":"<p>Given two strings...</p>","difficulty":"Easy"}`)

	repo := repository.NewSessionRepository()
	svc := NewProblemService(repo, leetcode.NewClient(srv.URL, time.Second))

	p, err := svc.LoadProblem(context.Background(), "", "242")
	require.NoError(t, err)
	assert.Equal(t, "Valid Anagram", p.Title)
	assert.Equal(t, "<p>Given two strings...</p>", p.Description)
	assert.Equal(t, "Easy", p.Difficulty)

	session := repo.GetOrCreate("")
	assert.Same(t, p, session.Problem)
}

func TestLoadProblemDefaultsMissingFields(t *testing.T) {
	srv := newProblemTestServer(t, http.StatusOK, `{}`)

	repo := repository.NewSessionRepository()
	svc := NewProblemService(repo, leetcode.NewClient(srv.URL, time.Second))

	p, err := svc.LoadProblem(context.Background(), "", "9999")
	require.NoError(t, err)
	assert.Equal(t, "Problem 9999", p.Title)
	assert.Equal(t, "Unknown", p.Difficulty)
	assert.Equal(t, "", p.Description)
}

func TestLoadProblemUpstreamFailure(t *testing.T) {
	srv := newProblemTestServer(t, http.StatusInternalServerError, `boom`)

	repo := repository.NewSessionRepository()
	svc := NewProblemService(repo, leetcode.NewClient(srv.URL, time.Second))

	_, err := svc.LoadProblem(context.Background(), "", "242")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch problem")

	// 拉取失败不触碰已有的题目上下文
	assert.Nil(t, repo.GetOrCreate("").Problem)
}

func TestLoadProblemMalformedBody(t *testing.T) {
	srv := newProblemTestServer(t, http.StatusOK, `not json at all`)

	repo := repository.NewSessionRepository()
	svc := NewProblemService(repo, leetcode.NewClient(srv.URL, time.Second))

	_, err := svc.LoadProblem(context.Background(), "", "242")
	assert.ErrorIs(t, err, ErrProblemServer)
}
