package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-xscraper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListPeople(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/people", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{"id":1,"profileName":"Alice","username":"alice","description":null,"imgUrl":"https://img/1.jpg"},
			{"id":2,"profileName":"Bob","username":"bob","description":"hi","imgUrl":""}
		]`))
	}))
	defer s.Close()

	people, err := NewClient(s.URL+"/", 2*time.Second).ListPeople(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 2)

	assert.Equal(t, 1, *people[0].ID)
	assert.Equal(t, "alice", people[0].Username)
	assert.Equal(t, "", people[0].Description, "null description becomes empty")
	assert.Equal(t, "bob", people[1].Username)
}

func TestClient_ListPeople_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusBadGateway, body: "upstream err"},
		{name: "not an array", status: http.StatusOK, body: `{"not":"an array"}`},
		{name: "person without username", status: http.StatusOK, body: `[{"id":1,"profileName":"x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer s.Close()

			_, err := NewClient(s.URL, 2*time.Second).ListPeople(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestClient_ListPeople_Timeout(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer s.Close()

	_, err := NewClient(s.URL, 100*time.Millisecond).ListPeople(context.Background())
	assert.Error(t, err)
}

func TestClient_SubmitPosts(t *testing.T) {
	var got []models.Post
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer s.Close()

	posts := []models.Post{
		{PersonID: 1, Text: "hello", Time: "2024-05-01T10:00:00.000Z", Comments: 1, Retweets: 2, Likes: 3, Views: 4},
		{PersonID: 1, Text: "", Time: "2024-05-02T10:00:00.000Z", Views: models.ViewsUnavailable},
	}
	require.NoError(t, NewClient(s.URL, 2*time.Second).SubmitPosts(context.Background(), posts))
	assert.Equal(t, posts, got)
}

func TestClient_SubmitPosts_ServerError(t *testing.T) {
	calls := 0
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer s.Close()

	err := NewClient(s.URL, 2*time.Second).SubmitPosts(context.Background(), []models.Post{
		{PersonID: 1, Time: "2024-05-01T10:00:00Z"},
	})
	assert.ErrorIs(t, err, ErrStatus)
	assert.Equal(t, 1, calls, "resty must not retry")
}
