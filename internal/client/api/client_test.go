package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/server/models"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authOK(t *testing.T, w http.ResponseWriter, token string) {
	t.Helper()
	out := rest.AuthOut{User: models.PublicUser{ID: "u-1", Name: "Ann", Email: "a@x.com"}, Token: token}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(out))
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		authOK(t, w, "tok-123")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.False(t, c.LoggedIn())

	u, err := c.Login(context.Background(), "a@x.com", "pw1234")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.True(t, c.LoggedIn())

	c.Logout()
	assert.False(t, c.LoggedIn())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@x.com", "nope")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestListTasks_SendsBearerAndCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			authOK(t, w, "tok-123")
		case "/api/v1/tasks":
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			assert.Equal(t, "shopping", r.URL.Query().Get("category"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"t-1","title":"Buy milk","category":"shopping"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@x.com", "pw1234")
	require.NoError(t, err)

	tasks, err := c.ListTasks(context.Background(), "shopping")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
}

func TestTaskCalls_RequireSession(t *testing.T) {
	c := NewClient("http://localhost:1", time.Second)

	_, err := c.ListTasks(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.CreateTask(context.Background(), "x", "", "")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.UpdateTask(context.Background(), "t-1", rest.PatchTaskIn{})
	assert.ErrorIs(t, err, ErrNoSession)

	assert.ErrorIs(t, c.DeleteTask(context.Background(), "t-1"), ErrNoSession)
}

func TestUpdateTask_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/login" {
			authOK(t, w, "tok-123")
			return
		}
		assert.Equal(t, "PATCH", r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"task not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@x.com", "pw1234")
	require.NoError(t, err)

	done := true
	_, err = c.UpdateTask(context.Background(), "no-such", rest.PatchTaskIn{Done: &done})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreateTask_SendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/login" {
			authOK(t, w, "tok-123")
			return
		}
		var in rest.CreateTaskIn
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Buy milk", in.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(models.Task{ID: "t-1", Title: in.Title, Category: "general"}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@x.com", "pw1234")
	require.NoError(t, err)

	task, err := c.CreateTask(context.Background(), "Buy milk", "", "")
	require.NoError(t, err)
	assert.Equal(t, "general", task.Category)
}
