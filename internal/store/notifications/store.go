package notifications

import (
	"sync"

	"github.com/alpha-154/chatsync/internal/models"
)

// Toaster receives transient user-visible notices. Views plug in a real
// implementation; the default discards everything.
type Toaster interface {
	Success(msg string)
	Error(msg string)
}

type noopToaster struct{}

func (noopToaster) Success(string) {}
func (noopToaster) Error(string)   {}

// Store tracks pending and historical notifications per type plus the unseen
// counter. The counter is adjusted incrementally between fetches; the
// authoritative recount happens on every ReplaceAll, correcting any drift.
//
// Array mutations key off the server-assigned Index, never array position.
type Store struct {
	mu sync.Mutex

	set    models.NotificationSet
	unseen int

	status models.SyncStatus
	err    string

	toaster Toaster
}

func New(toaster Toaster) *Store {
	if toaster == nil {
		toaster = noopToaster{}
	}
	return &Store{
		set:     models.EmptyNotificationSet(),
		status:  models.StatusIdle,
		toaster: toaster,
	}
}

// BeginFetch marks the full fetch in flight.
func (s *Store) BeginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = models.StatusLoading
	s.err = ""
}

// ReplaceAll swaps in the server's typed arrays and recomputes the unseen
// counter from scratch. This is the single source-of-truth recount.
func (s *Store) ReplaceAll(set models.NotificationSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := models.EmptyNotificationSet()
	for t, bucket := range set {
		fresh[t] = append([]models.Notification(nil), bucket...)
	}
	s.set = fresh
	s.unseen = fresh.CountUnseen()
	s.status = models.StatusSucceeded
	s.err = ""
}

// FailFetch records a fetch failure; arrays and counter are untouched.
func (s *Store) FailFetch(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = models.StatusFailed
	s.err = errMsg
}

// RemovePrivateRequest drops the received private-message request matching
// the requester's name after the server confirmed the accept/decline.
func (s *Store) RemovePrivateRequest(requester string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.set[models.NotificationReceivedPrivateRequest]
	kept := bucket[:0]
	removed := false
	for _, n := range bucket {
		if !removed && n.Name == requester {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	s.set[models.NotificationReceivedPrivateRequest] = kept
	if removed {
		s.decrement()
	}
}

// RemoveGroupJoin drops the group-join request matching BOTH requester and
// group name. The compound key matters: the same user can have pending
// requests for several groups.
func (s *Store) RemoveGroupJoin(requester, groupName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.set[models.NotificationReceivedGroupJoin]
	kept := bucket[:0]
	removed := false
	for _, n := range bucket {
		if !removed && n.Name == requester && n.GroupName == groupName {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	s.set[models.NotificationReceivedGroupJoin] = kept
	if removed {
		s.decrement()
	}
}

// DeleteByIndex removes the entry whose server-assigned index matches,
// regardless of its position in the array. Returns whether anything was
// removed (a stale index is safe to ignore).
func (s *Store) DeleteByIndex(t models.NotificationType, index string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.set[t]
	kept := bucket[:0]
	removed := false
	for _, n := range bucket {
		if !removed && n.Index == index {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	s.set[t] = kept
	if removed {
		s.decrement()
	}
	return removed
}

// MarkAllSeen zeroes the counter and flags every entry seen, mirroring the
// server-side bulk seen transition that runs when the notification view
// closes.
func (s *Store) MarkAllSeen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for t, bucket := range s.set {
		for i := range bucket {
			bucket[i].IsSeen = true
		}
		s.set[t] = bucket
	}
	s.unseen = 0
}

// IncrementUnseen handles an inbound realtime notification ping: bump the
// counter and surface a toast. The typed arrays only refresh on the next
// full fetch.
func (s *Store) IncrementUnseen(message string) {
	s.mu.Lock()
	s.unseen++
	s.mu.Unlock()

	if message == "" {
		message = "You have a new notification"
	}
	s.toaster.Success(message)
}

// Unseen returns the current unseen counter.
func (s *Store) Unseen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unseen
}

// Bucket returns a copy of one typed array.
func (s *Store) Bucket(t models.NotificationType) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.set[t]...)
}

// Status returns the fetch lifecycle state and the last fetch error, if any.
func (s *Store) Status() (models.SyncStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// decrement clamps at zero; the next ReplaceAll recount corrects any drift.
// Caller holds the lock.
func (s *Store) decrement() {
	if s.unseen > 0 {
		s.unseen--
	}
}
