package search

import (
	"time"

	"github.com/alpha-154/chatsync/internal/api"
	"github.com/alpha-154/chatsync/internal/store/contacts"
	"github.com/alpha-154/chatsync/pkg/logger"
)

// Searcher is the search-as-you-type pipeline: keystrokes arrive via
// QueryChanged, only the last one in a quiet window hits the API, and the
// response lands in the contact store's search results.
type Searcher struct {
	api      *api.Client
	store    *contacts.Store
	debounce *Debouncer
}

func NewSearcher(apiClient *api.Client, store *contacts.Store, delay time.Duration) *Searcher {
	return &Searcher{
		api:      apiClient,
		store:    store,
		debounce: NewDebouncer(delay),
	}
}

// QueryChanged schedules a search for the latest query, replacing any
// pending one. An empty query clears the results without a network call.
func (s *Searcher) QueryChanged(currentUserUserName, query string) {
	if query == "" {
		s.debounce.Schedule(func() {
			s.store.SetSearchResults(nil)
		})
		return
	}
	s.debounce.Schedule(func() {
		users, err := s.api.SearchUsers(currentUserUserName, query)
		if err != nil {
			logger.Warn().Err(err).Str("query", query).Msg("user search failed")
			return
		}
		s.store.SetSearchResults(users)
	})
}

// Close cancels any pending search on component teardown.
func (s *Searcher) Close() {
	s.debounce.Stop()
}
