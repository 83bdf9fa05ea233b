package leetcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProblem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/problem/valid-anagram", r.URL.Path)
		_, _ = w.Write([]byte(`{"title":"Valid Anagram","content":"<p>desc</p>","difficulty":"Easy"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	p, err := c.GetProblem(context.Background(), "valid-anagram")
	require.NoError(t, err)
	assert.Equal(t, "Valid Anagram", p.Title)
	assert.Equal(t, "<p>desc</p>", p.Content)
	assert.Equal(t, "Easy", p.Difficulty)
}

func TestGetProblemNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.GetProblem(context.Background(), "9999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200")
}

func TestGetProblemMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.GetProblem(context.Background(), "242")
	assert.ErrorIs(t, err, ErrBadResponse)
}
