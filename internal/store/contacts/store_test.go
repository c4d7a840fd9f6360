package contacts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alpha-154/chatsync/internal/models"
)

func member(id, name string) models.Member {
	return models.Member{
		UserID:          id,
		UserName:        name,
		ProfileImage:    "https://cdn.example.com/" + name + ".png",
		Status:          models.StatusOffline,
		ConversationKey: "room-" + id,
	}
}

func seeded() *Store {
	s := New()
	s.ReplaceAll([]models.SortingList{
		{ListName: models.ReservedListName, Members: []models.Member{
			member("u1", "alice"), member("u2", "bob"), member("u3", "carol"),
		}},
		{ListName: "Friends", Members: []models.Member{member("u1", "alice"), member("u2", "bob")}},
		{ListName: "Work", Members: []models.Member{}},
	})
	return s
}

func listByName(t *testing.T, s *Store, name string) models.SortingList {
	t.Helper()
	for _, l := range s.Lists() {
		if l.ListName == name {
			return l
		}
	}
	t.Fatalf("list %q not found", name)
	return models.SortingList{}
}

func TestRealtimeUpdateTouchesEveryContainingList(t *testing.T) {
	s := seeded()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.ApplyRealtimeMessageUpdate(models.RealtimeMessageUpdate{From: "u2", Content: "hey", CreatedAt: at})

	for _, name := range []string{models.ReservedListName, "Friends"} {
		list := listByName(t, s, name)
		assert.Equal(t, "bob", list.Members[0].UserName, "bob moves to the front of %s", name)
		assert.Equal(t, "hey", list.Members[0].LastMessage)
		assert.Equal(t, at, list.Members[0].LastMessageTime)
		assert.Equal(t, 1, list.Members[0].TotalUnseenMessages)
	}

	// relative order of the others is preserved
	reserved := listByName(t, s, models.ReservedListName)
	assert.Equal(t, "alice", reserved.Members[1].UserName)
	assert.Equal(t, "carol", reserved.Members[2].UserName)
}

func TestRealtimeUpdateForAlreadyFirstMemberDoesNotRotate(t *testing.T) {
	s := seeded()
	s.ApplyRealtimeMessageUpdate(models.RealtimeMessageUpdate{From: "u1", Content: "one", CreatedAt: time.Now()})
	s.ApplyRealtimeMessageUpdate(models.RealtimeMessageUpdate{From: "u1", Content: "two", CreatedAt: time.Now()})

	reserved := listByName(t, s, models.ReservedListName)
	assert.Equal(t, "alice", reserved.Members[0].UserName)
	assert.Equal(t, 2, reserved.Members[0].TotalUnseenMessages)
	assert.Equal(t, "two", reserved.Members[0].LastMessage)
}

func TestMoveMemberEvictsPreviousCustomList(t *testing.T) {
	s := seeded()

	s.MoveMemberToList("alice", "Work")

	assert.Empty(t, findIn(listByName(t, s, "Friends"), "alice"))
	assert.NotEmpty(t, findIn(listByName(t, s, "Work"), "alice"))
	assert.NotEmpty(t, findIn(listByName(t, s, models.ReservedListName), "alice"), "reserved membership survives")

	// second move: Work -> Friends, gone from Work
	s.MoveMemberToList("alice", "Friends")
	assert.Empty(t, findIn(listByName(t, s, "Work"), "alice"))
	assert.NotEmpty(t, findIn(listByName(t, s, "Friends"), "alice"))
	assert.NotEmpty(t, findIn(listByName(t, s, models.ReservedListName), "alice"))
}

func findIn(list models.SortingList, userName string) *models.Member {
	for i := range list.Members {
		if list.Members[i].UserName == userName {
			return &list.Members[i]
		}
	}
	return nil
}

func TestPresenceUpdateDoesNotReorder(t *testing.T) {
	s := seeded()
	s.ApplyPresenceUpdate(models.PresenceUpdate{UserID: "u2", Status: models.StatusOnline})

	reserved := listByName(t, s, models.ReservedListName)
	assert.Equal(t, "alice", reserved.Members[0].UserName)
	assert.Equal(t, models.StatusOnline, reserved.Members[1].Status)

	friends := listByName(t, s, "Friends")
	assert.Equal(t, models.StatusOnline, friends.Members[1].Status)
}

func TestClearUnseenForMember(t *testing.T) {
	s := seeded()
	s.ApplyRealtimeMessageUpdate(models.RealtimeMessageUpdate{From: "u2", Content: "x", CreatedAt: time.Now()})
	s.ClearUnseenForMember("bob")

	for _, name := range []string{models.ReservedListName, "Friends"} {
		m := findIn(listByName(t, s, name), "bob")
		assert.NotNil(t, m)
		assert.Equal(t, 0, m.TotalUnseenMessages)
	}
}

func TestEndConnectionRemovesFromEveryList(t *testing.T) {
	s := seeded()
	s.EndConnection("bob")

	assert.Nil(t, findIn(listByName(t, s, models.ReservedListName), "bob"))
	assert.Nil(t, findIn(listByName(t, s, "Friends"), "bob"))
}

func TestRemoveMemberFromListIsScopedToThatList(t *testing.T) {
	s := seeded()
	s.RemoveMemberFromList("bob", "Friends")

	assert.Nil(t, findIn(listByName(t, s, "Friends"), "bob"))
	assert.NotNil(t, findIn(listByName(t, s, models.ReservedListName), "bob"))
}

func TestUpdateLastMessageHasNoSideEffects(t *testing.T) {
	s := seeded()
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	s.UpdateLastMessage("bob", "see you", at)

	for _, name := range []string{models.ReservedListName, "Friends"} {
		list := listByName(t, s, name)
		m := findIn(list, "bob")
		assert.Equal(t, "see you", m.LastMessage)
		assert.Equal(t, at, m.LastMessageTime)
		assert.Equal(t, 0, m.TotalUnseenMessages, "no unseen bump")
		assert.Equal(t, "alice", list.Members[0].UserName, "no reorder")
	}
}

func TestFailFetchKeepsEmptySafeFallback(t *testing.T) {
	s := New()
	s.FailFetch("boom")

	status, errMsg := s.Status()
	assert.Equal(t, models.StatusFailed, status)
	assert.Equal(t, "boom", errMsg)
	assert.NotNil(t, s.Lists())
	assert.Empty(t, s.Lists())
}

func TestReplaceAllKeepsServerSeedOrder(t *testing.T) {
	s := seeded()
	reserved := listByName(t, s, models.ReservedListName)
	assert.Equal(t, []string{"alice", "bob", "carol"}, []string{
		reserved.Members[0].UserName, reserved.Members[1].UserName, reserved.Members[2].UserName,
	})
}

func TestCustomListOf(t *testing.T) {
	s := seeded()
	assert.Equal(t, "Friends", s.CustomListOf("alice"))
	assert.Equal(t, "", s.CustomListOf("carol"))
}
