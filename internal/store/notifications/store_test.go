package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alpha-154/chatsync/internal/models"
)

type recordingToaster struct {
	successes []string
	errors    []string
}

func (r *recordingToaster) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingToaster) Error(msg string)   { r.errors = append(r.errors, msg) }

func notif(name, index string, seen bool) models.Notification {
	return models.Notification{ID: "n-" + index, Name: name, Index: index, IsSeen: seen, Date: "2024-05-01"}
}

func groupNotif(name, group, index string, seen bool) models.Notification {
	n := notif(name, index, seen)
	n.GroupName = group
	return n
}

func seededSet() models.NotificationSet {
	set := models.EmptyNotificationSet()
	set[models.NotificationReceivedPrivateRequest] = []models.Notification{
		notif("alice", "1", false),
		notif("bob", "3", false),
		notif("carol", "7", true),
	}
	set[models.NotificationReceivedGroupJoin] = []models.Notification{
		groupNotif("dave", "gophers", "2", false),
		groupNotif("dave", "hikers", "4", false),
	}
	return set
}

func TestReplaceAllRecountsUnseen(t *testing.T) {
	s := New(nil)
	s.IncrementUnseen("") // drift the counter before the fetch
	s.IncrementUnseen("")

	s.ReplaceAll(seededSet())
	assert.Equal(t, 4, s.Unseen(), "recount is authoritative: 2 private + 2 group unseen")
}

func TestDeleteByIndexRemovesOnlyMatchingEntry(t *testing.T) {
	s := New(nil)
	s.ReplaceAll(seededSet())

	removed := s.DeleteByIndex(models.NotificationReceivedPrivateRequest, "3")
	assert.True(t, removed)

	bucket := s.Bucket(models.NotificationReceivedPrivateRequest)
	assert.Len(t, bucket, 2)
	for _, n := range bucket {
		assert.NotEqual(t, "3", n.Index)
	}
	assert.Equal(t, 3, s.Unseen())
}

func TestDeleteByStaleIndexIsHarmless(t *testing.T) {
	s := New(nil)
	s.ReplaceAll(seededSet())

	removed := s.DeleteByIndex(models.NotificationReceivedPrivateRequest, "99")
	assert.False(t, removed)
	assert.Len(t, s.Bucket(models.NotificationReceivedPrivateRequest), 3)
	assert.Equal(t, 4, s.Unseen(), "no phantom decrement")
}

func TestGroupJoinRemovalUsesCompoundKey(t *testing.T) {
	s := New(nil)
	s.ReplaceAll(seededSet())

	s.RemoveGroupJoin("dave", "gophers")

	bucket := s.Bucket(models.NotificationReceivedGroupJoin)
	assert.Len(t, bucket, 1, "dave's hikers request survives")
	assert.Equal(t, "hikers", bucket[0].GroupName)
	assert.Equal(t, 3, s.Unseen())
}

func TestRemovePrivateRequestByName(t *testing.T) {
	s := New(nil)
	s.ReplaceAll(seededSet())

	s.RemovePrivateRequest("alice")
	bucket := s.Bucket(models.NotificationReceivedPrivateRequest)
	assert.Len(t, bucket, 2)
	assert.Equal(t, 3, s.Unseen())

	// unknown requester changes nothing
	s.RemovePrivateRequest("nobody")
	assert.Len(t, s.Bucket(models.NotificationReceivedPrivateRequest), 2)
	assert.Equal(t, 3, s.Unseen())
}

func TestCounterNeverGoesNegative(t *testing.T) {
	s := New(nil)
	set := models.EmptyNotificationSet()
	set[models.NotificationReceivedPrivateRequest] = []models.Notification{notif("alice", "1", true)}
	s.ReplaceAll(set)
	assert.Equal(t, 0, s.Unseen())

	// removing an already-seen entry must not underflow
	s.RemovePrivateRequest("alice")
	assert.Equal(t, 0, s.Unseen())

	s.DeleteByIndex(models.NotificationReceivedPrivateRequest, "1")
	assert.Equal(t, 0, s.Unseen())
}

func TestMarkAllSeenZeroesCounterAndFlagsEntries(t *testing.T) {
	s := New(nil)
	s.ReplaceAll(seededSet())
	assert.Equal(t, 4, s.Unseen())

	s.MarkAllSeen()
	assert.Equal(t, 0, s.Unseen())
	for _, t2 := range models.NotificationTypes {
		for _, n := range s.Bucket(t2) {
			assert.True(t, n.IsSeen)
		}
	}
}

func TestIncrementUnseenBumpsCounterAndToasts(t *testing.T) {
	toaster := &recordingToaster{}
	s := New(toaster)

	s.IncrementUnseen("alice sent you a message request")
	s.IncrementUnseen("")

	assert.Equal(t, 2, s.Unseen())
	assert.Equal(t, []string{
		"alice sent you a message request",
		"You have a new notification",
	}, toaster.successes)
}

func TestFailFetchLeavesArraysAndCounterUntouched(t *testing.T) {
	s := New(nil)
	s.ReplaceAll(seededSet())

	s.BeginFetch()
	s.FailFetch("offline")

	status, errMsg := s.Status()
	assert.Equal(t, models.StatusFailed, status)
	assert.Equal(t, "offline", errMsg)
	assert.Equal(t, 4, s.Unseen())
	assert.Len(t, s.Bucket(models.NotificationReceivedPrivateRequest), 3)
}
