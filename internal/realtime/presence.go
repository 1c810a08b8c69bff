package realtime

import (
	"sync"
)

// PresenceRegistry is the single source of truth for "is this user
// reachable right now". It lives purely in memory and starts empty on
// every process restart; entries are removed only on disconnect, never
// by timeout.
type PresenceRegistry struct {
	mu      sync.RWMutex
	entries map[string]*Client
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		entries: make(map[string]*Client),
	}
}

// Register upserts the connection for userId. A second handshake for the
// same user overwrites the previous entry; closing the displaced
// connection is the transport's job, not the registry's.
func (p *PresenceRegistry) Register(userId string, c *Client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[userId] = c
}

func (p *PresenceRegistry) Lookup(userId string) (*Client, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.entries[userId]
	return c, ok
}

// Remove is idempotent; removing an absent id is a no-op.
func (p *PresenceRegistry) Remove(userId string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, userId)
}

// Snapshot returns the ids of all currently present users.
func (p *PresenceRegistry) Snapshot() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	return ids
}
