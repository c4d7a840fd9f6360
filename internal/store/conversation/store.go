package conversation

import (
	"sort"
	"sync"

	"github.com/alpha-154/chatsync/internal/models"
)

// Store holds the currently-open conversation's message history, bucketed by
// calendar date. Order inside a partition is strictly arrival order: history
// arrives as one pre-ordered snapshot, everything after it is appended live.
//
// Two sources append concurrently: the command layer (confirmed local sends)
// and the realtime bridge (remote receives). The store serializes them with a
// mutex and never reorders after insertion.
type Store struct {
	mu sync.Mutex

	selfID string
	peerID string

	partitions map[string][]models.Message
	keys       []string // partition keys, kept sorted

	// client ids of local sends already in the store; a remote echo carrying
	// one of these is dropped instead of double-inserted
	localIDs map[string]struct{}

	status models.SyncStatus
	err    string

	onUpdate func()
}

// New creates an empty conversation store. onUpdate, if non-nil, runs at most
// once after every successful load or append (the scroll-to-newest effect);
// it is fire-and-forget and must not call back into the store's mutators.
func New(onUpdate func()) *Store {
	return &Store{
		partitions: map[string][]models.Message{},
		localIDs:   map[string]struct{}{},
		status:     models.StatusIdle,
		onUpdate:   onUpdate,
	}
}

// BeginLoad marks a history fetch in flight. Existing messages stay visible
// until the replacement snapshot lands.
func (s *Store) BeginLoad(selfID, peerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selfID = selfID
	s.peerID = peerID
	s.status = models.StatusLoading
	s.err = ""
}

// ReplaceHistory swaps in the server's snapshot wholesale. Prior contents,
// including optimistic local sends made before the fetch resolved, are
// discarded: the snapshot is authoritative.
func (s *Store) ReplaceHistory(partitions map[string][]models.Message) {
	s.mu.Lock()
	s.partitions = make(map[string][]models.Message, len(partitions))
	s.keys = s.keys[:0]
	s.localIDs = map[string]struct{}{}
	for key, msgs := range partitions {
		s.partitions[key] = append([]models.Message(nil), msgs...)
		s.keys = append(s.keys, key)
		for _, m := range msgs {
			if m.ClientMsgID != "" && m.From == s.selfID {
				s.localIDs[m.ClientMsgID] = struct{}{}
			}
		}
	}
	sort.Strings(s.keys)
	s.status = models.StatusSucceeded
	s.err = ""
	s.mu.Unlock()

	s.fireUpdate()
}

// FailLoad records a fetch failure. Previous state is left untouched so the
// caller can surface a retryable error instead of a blank screen.
func (s *Store) FailLoad(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = models.StatusFailed
	s.err = errMsg
}

// AppendLocalSend inserts an outbound message after REST confirmed its
// persistence. The message always lands at the tail of its date partition.
func (s *Store) AppendLocalSend(msg models.Message) {
	s.mu.Lock()
	if msg.ClientMsgID != "" {
		s.localIDs[msg.ClientMsgID] = struct{}{}
	}
	s.append(msg)
	s.mu.Unlock()

	s.fireUpdate()
}

// AppendRemoteReceive inserts an inbound realtime message for the open room.
// An echo of our own send (same client id) is dropped.
func (s *Store) AppendRemoteReceive(msg models.Message) {
	s.mu.Lock()
	if msg.ClientMsgID != "" {
		if _, ours := s.localIDs[msg.ClientMsgID]; ours {
			s.mu.Unlock()
			return
		}
	}
	s.append(msg)
	s.mu.Unlock()

	s.fireUpdate()
}

// append inserts at partition tail, creating the partition if absent.
// Caller holds the lock.
func (s *Store) append(msg models.Message) {
	key := msg.DateKey()
	if _, ok := s.partitions[key]; !ok {
		i := sort.SearchStrings(s.keys, key)
		s.keys = append(s.keys, "")
		copy(s.keys[i+1:], s.keys[i:])
		s.keys[i] = key
	}
	s.partitions[key] = append(s.partitions[key], msg)
}

func (s *Store) fireUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// Peer returns the usernames bound by the last BeginLoad.
func (s *Store) Peer() (selfID, peerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selfID, s.peerID
}

// Status returns the fetch lifecycle state and the last load error, if any.
func (s *Store) Status() (models.SyncStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// DateKeys returns the partition keys in chronological order.
func (s *Store) DateKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.keys...)
}

// Partition returns a copy of one date partition in insertion order.
func (s *Store) Partition(dateKey string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.partitions[dateKey]...)
}

// Snapshot returns a deep copy of the whole partition map.
func (s *Store) Snapshot() map[string][]models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]models.Message, len(s.partitions))
	for key, msgs := range s.partitions {
		out[key] = append([]models.Message(nil), msgs...)
	}
	return out
}
