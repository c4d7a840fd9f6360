package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha-154/chatsync/internal/api"
	"github.com/alpha-154/chatsync/internal/models"
	"github.com/alpha-154/chatsync/internal/store/contacts"
)

func TestSearcherQueriesOnlyTheLastKeystroke(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.Equal(t, "/api/user/search", r.URL.Path)
		hits.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"users": []models.SearchUser{{UserID: "u9", UserName: r.URL.Query().Get("query")}},
		})
	}))
	defer srv.Close()

	store := contacts.New()
	s := NewSearcher(api.NewClient(srv.URL, 5*time.Second), store, 20*time.Millisecond)
	defer s.Close()

	s.QueryChanged("alice", "b")
	s.QueryChanged("alice", "bo")
	s.QueryChanged("alice", "bob")

	require.Eventually(t, func() bool {
		results := store.SearchResults()
		return len(results) == 1 && results[0].UserName == "bob"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), hits.Load())
}

func TestSearcherEmptyQueryClearsWithoutNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		hits.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"users": []models.SearchUser{}})
	}))
	defer srv.Close()

	store := contacts.New()
	store.SetSearchResults([]models.SearchUser{{UserID: "u1", UserName: "stale"}})

	s := NewSearcher(api.NewClient(srv.URL, 5*time.Second), store, 10*time.Millisecond)
	defer s.Close()

	s.QueryChanged("alice", "")

	require.Eventually(t, func() bool {
		return len(store.SearchResults()) == 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), hits.Load())
}
