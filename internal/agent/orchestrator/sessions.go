package orchestrator

import (
	"context"
	"time"

	"agent-switchboard/pkg/llmprovider"
)

// loadSession returns a copy of the user's recent history.
func (o *Orchestrator) loadSession(userID string) []llmprovider.Message {
	o.cacheMutex.RLock()
	defer o.cacheMutex.RUnlock()

	session, ok := o.sessionCache[userID]
	if !ok {
		return nil
	}

	history := make([]llmprovider.Message, len(session.Messages))
	copy(history, session.Messages)
	return history
}

// saveSession appends the latest turn and trims history to MaxSessionHistory.
func (o *Orchestrator) saveSession(userID string, userMsg, assistantMsg llmprovider.Message) {
	o.cacheMutex.Lock()
	defer o.cacheMutex.Unlock()

	session, ok := o.sessionCache[userID]
	if !ok {
		session = &SessionMemory{UserID: userID}
		o.sessionCache[userID] = session
	}

	session.Messages = append(session.Messages, userMsg, assistantMsg)
	if len(session.Messages) > MaxSessionHistory {
		session.Messages = session.Messages[len(session.Messages)-MaxSessionHistory:]
	}
	session.LastUpdated = time.Now()
}

// GetSession returns the live session for a user, or nil.
func (o *Orchestrator) GetSession(userID string) *SessionMemory {
	o.cacheMutex.RLock()
	defer o.cacheMutex.RUnlock()
	return o.sessionCache[userID]
}

// ClearSession drops a user's conversation history.
func (o *Orchestrator) ClearSession(userID string) {
	o.cacheMutex.Lock()
	defer o.cacheMutex.Unlock()
	delete(o.sessionCache, userID)
}

// cleanupExpiredSessions drops sessions idle longer than the cache TTL.
// Runs for the life of the process.
func (o *Orchestrator) cleanupExpiredSessions() {
	ticker := time.NewTicker(SessionCleanupInterval * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		o.cacheMutex.Lock()
		expired := 0
		for userID, session := range o.sessionCache {
			if time.Since(session.LastUpdated) > o.cacheTTL {
				delete(o.sessionCache, userID)
				expired++
			}
		}
		o.cacheMutex.Unlock()

		if expired > 0 {
			o.l.Infof(context.Background(), "%s: cleaned up %d expired sessions", LogPrefixCleanupSessions, expired)
		}
	}
}
