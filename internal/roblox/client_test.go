package roblox

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharatsindhu/username-history/internal/history"
)

func TestUsernameHistoryURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		id   history.UserID
		want string
	}{
		{name: "default base", id: 1, want: "https://users.roblox.com/v1/users/1/username-history"},
		{name: "trailing slash", base: "http://localhost:8081/", id: 0, want: "http://localhost:8081/v1/users/0/username-history"},
		{name: "max id", base: "http://h", id: history.UserID(^uint64(0)), want: "http://h/v1/users/18446744073709551615/username-history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{BaseURL: tt.base}
			assert.Equal(t, tt.want, c.UsernameHistoryURL(tt.id))
		})
	}
}

func TestFetch(t *testing.T) {
	var gotPath, gotQuery, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"data":[{"name":"a"}]}`)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	body, err := c.Fetch(context.Background(), c.UsernameHistoryURL(42))

	require.NoError(t, err)
	assert.Equal(t, `{"data":[{"name":"a"}]}`, body)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/v1/users/42/username-history", gotPath)
	assert.Empty(t, gotQuery)
}

func TestFetchNonSuccessStatusReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"errors":[{"code":3,"message":"The user id is invalid."}]}`)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	body, err := c.Fetch(context.Background(), c.UsernameHistoryURL(7))

	require.NoError(t, err)
	assert.Contains(t, body, "The user id is invalid.")
}

func TestFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := &Client{BaseURL: url}
	body, err := c.Fetch(context.Background(), c.UsernameHistoryURL(1))

	require.Error(t, err)
	assert.Empty(t, body)
	assert.ErrorIs(t, err, history.ErrFetch)
	assert.Equal(t, 1, strings.Count(err.Error(), url))
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Fetch(ctx, c.UsernameHistoryURL(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, history.ErrFetch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchBadURL(t *testing.T) {
	c := &Client{}
	_, err := c.Fetch(context.Background(), "://bad")

	require.Error(t, err)
	assert.Equal(t, history.KindFetch, history.KindOf(err))
}
