package models

// SyncStatus tracks the lifecycle of a store's most recent fetch. Views key
// their loading indicators off this instead of blocking.
type SyncStatus string

const (
	StatusIdle      SyncStatus = "idle"
	StatusLoading   SyncStatus = "loading"
	StatusSucceeded SyncStatus = "succeeded"
	StatusFailed    SyncStatus = "failed"
)
