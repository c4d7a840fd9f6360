package contacts

import (
	"sync"
	"time"

	"github.com/alpha-154/chatsync/internal/models"
)

// Store maintains the user's sorting lists and keeps member summary cards
// fresh as realtime events arrive for conversations that are not open.
//
// All list mutations are confirm-then-apply: the command layer calls a
// reducer here only after the server acknowledged the change. Realtime
// reducers are applied directly by the bridge.
type Store struct {
	mu sync.Mutex

	lists []models.SortingList

	searchResults []models.SearchUser

	status models.SyncStatus
	err    string
}

func New() *Store {
	return &Store{status: models.StatusIdle}
}

// BeginFetch marks the full-list fetch in flight.
func (s *Store) BeginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = models.StatusLoading
	s.err = ""
}

// ReplaceAll swaps in the server's list collection. Server order is the
// authoritative seed order until realtime updates reorder members.
func (s *Store) ReplaceAll(lists []models.SortingList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lists == nil {
		lists = []models.SortingList{}
	}
	s.lists = deepCopy(lists)
	s.status = models.StatusSucceeded
	s.err = ""
}

// FailFetch records a fetch failure with an empty-safe fallback.
func (s *Store) FailFetch(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lists == nil {
		s.lists = []models.SortingList{}
	}
	s.status = models.StatusFailed
	s.err = errMsg
}

// AddList appends a confirmed new empty list.
func (s *Store) AddList(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = append(s.lists, models.SortingList{ListName: name, Members: []models.Member{}})
}

// RenameList applies a confirmed rename.
func (s *Store) RenameList(oldName, newName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ListName == oldName {
			s.lists[i].ListName = newName
		}
	}
}

// RemoveList drops a confirmed-deleted list. Its members remain reachable
// through the reserved list.
func (s *Store) RemoveList(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lists[:0]
	for _, list := range s.lists {
		if list.ListName != name {
			kept = append(kept, list)
		}
	}
	s.lists = kept
}

// MoveMemberToList places the member into listName and evicts them from any
// other custom list they occupied. Reserved-list membership is untouched.
func (s *Store) MoveMemberToList(userName, listName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var member *models.Member
	for i := range s.lists {
		list := &s.lists[i]
		for j := range list.Members {
			if list.Members[j].UserName == userName {
				m := list.Members[j]
				member = &m
				if list.ListName != models.ReservedListName {
					list.Members = append(list.Members[:j], list.Members[j+1:]...)
				}
				break
			}
		}
	}
	if member == nil {
		return
	}
	for i := range s.lists {
		if s.lists[i].ListName == listName {
			s.lists[i].Members = append(s.lists[i].Members, *member)
			return
		}
	}
}

// RemoveMemberFromList removes the member from the named list only.
func (s *Store) RemoveMemberFromList(userName, listName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ListName != listName {
			continue
		}
		members := s.lists[i].Members
		for j := range members {
			if members[j].UserName == userName {
				s.lists[i].Members = append(members[:j], members[j+1:]...)
				return
			}
		}
	}
}

// EndConnection removes the member from every list, the reserved one included.
func (s *Store) EndConnection(userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		kept := s.lists[i].Members[:0]
		for _, m := range s.lists[i].Members {
			if m.UserName != userName {
				kept = append(kept, m)
			}
		}
		s.lists[i].Members = kept
	}
}

// ApplyRealtimeMessageUpdate refreshes the sender's card in every list that
// contains them: last message, timestamp, unseen count, and a move to the
// front of the member sequence. Runs for background conversations too; it is
// how the contact list reflects messages arriving while no chat is open.
func (s *Store) ApplyRealtimeMessageUpdate(update models.RealtimeMessageUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		members := s.lists[i].Members
		idx := -1
		for j := range members {
			if members[j].UserID == update.From {
				idx = j
				break
			}
		}
		if idx == -1 {
			continue
		}
		card := members[idx]
		card.LastMessage = update.Content
		card.LastMessageTime = update.CreatedAt
		card.TotalUnseenMessages++
		if idx == 0 {
			members[0] = card
			continue
		}
		// most-recently-active-first
		copy(members[1:idx+1], members[:idx])
		members[0] = card
	}
}

// ApplyPresenceUpdate sets the member's status everywhere; order is untouched.
func (s *Store) ApplyPresenceUpdate(update models.PresenceUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		for j := range s.lists[i].Members {
			if s.lists[i].Members[j].UserID == update.UserID {
				s.lists[i].Members[j].Status = update.Status
			}
		}
	}
}

// ClearUnseenForMember zeroes a member's unseen count, called when their
// conversation is opened.
func (s *Store) ClearUnseenForMember(userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		for j := range s.lists[i].Members {
			if s.lists[i].Members[j].UserName == userName {
				s.lists[i].Members[j].TotalUnseenMessages = 0
			}
		}
	}
}

// UpdateLastMessage rewrites a member's last-message summary after the user
// closes their chat, so the card matches without a refetch. No unseen
// increment, no reorder.
func (s *Store) UpdateLastMessage(userName, lastMessage string, lastMessageTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		for j := range s.lists[i].Members {
			if s.lists[i].Members[j].UserName == userName {
				s.lists[i].Members[j].LastMessage = lastMessage
				s.lists[i].Members[j].LastMessageTime = lastMessageTime
			}
		}
	}
}

// Lists returns a deep copy of every sorting list.
func (s *Store) Lists() []models.SortingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deepCopy(s.lists)
}

// CustomListOf returns the non-reserved list currently containing the member,
// or "" if they only live in the reserved list.
func (s *Store) CustomListOf(userName string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range s.lists {
		if list.ListName == models.ReservedListName {
			continue
		}
		for _, m := range list.Members {
			if m.UserName == userName {
				return list.ListName
			}
		}
	}
	return ""
}

// HasList reports whether a list with the given name exists.
func (s *Store) HasList(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range s.lists {
		if list.ListName == name {
			return true
		}
	}
	return false
}

// SetSearchResults stores the latest debounced search response.
func (s *Store) SetSearchResults(results []models.SearchUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchResults = append([]models.SearchUser(nil), results...)
}

// SearchResults returns a copy of the latest search response.
func (s *Store) SearchResults() []models.SearchUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SearchUser(nil), s.searchResults...)
}

// Status returns the fetch lifecycle state and the last fetch error, if any.
func (s *Store) Status() (models.SyncStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

func deepCopy(lists []models.SortingList) []models.SortingList {
	out := make([]models.SortingList, len(lists))
	for i, list := range lists {
		out[i] = models.SortingList{
			ListName: list.ListName,
			Members:  append([]models.Member(nil), list.Members...),
		}
	}
	return out
}
