package domain

import "strings"

// Article is the grammatical gender marker of a German noun.
type Article string

const (
	ArticleDer Article = "der"
	ArticleDie Article = "die"
	ArticleDas Article = "das"
)

func (a Article) String() string { return string(a) }

func (a Article) IsValid() bool {
	switch a {
	case ArticleDer, ArticleDie, ArticleDas:
		return true
	}
	return false
}

// ParseArticle normalizes case and surrounding whitespace.
// Returns false for anything outside der/die/das.
func ParseArticle(s string) (Article, bool) {
	a := Article(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", false
	}
	return a, true
}

// SessionStatus represents the lifecycle state of a practice session.
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
	SessionStatusAbandoned  SessionStatus = "ABANDONED"
	SessionStatusFailed     SessionStatus = "FAILED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusInProgress, SessionStatusCompleted, SessionStatusAbandoned, SessionStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further answers can be recorded.
func (s SessionStatus) IsTerminal() bool {
	return s != SessionStatusInProgress
}

// SyncState tells whether an answer record reached the session store.
type SyncState string

const (
	SyncStateSynced  SyncState = "SYNCED"
	SyncStatePending SyncState = "PENDING"
)

func (s SyncState) String() string { return string(s) }
