package realtime

import (
	"sync"

	"github.com/campuschat/go-campuschat/internal/types"
)

// RoomRouter maps connections to group-scope rooms keyed by
// (course, semester). A connection joins at most one room, assigned at
// handshake time; changing scope requires a reconnect.
type RoomRouter struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewRoomRouter() *RoomRouter {
	return &RoomRouter{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

func (r *RoomRouter) Join(c *Client, scope types.ScopeKey) {
	if !scope.Valid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := scope.String()
	if r.rooms[key] == nil {
		r.rooms[key] = make(map[*Client]struct{})
	}
	r.rooms[key][c] = struct{}{}
}

// drop removes the client from its room on disconnect. There is no
// user-facing leave operation.
func (r *RoomRouter) drop(c *Client) {
	if !c.scope.Valid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.scope.String()
	if members, ok := r.rooms[key]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(r.rooms, key)
		}
	}
}

// Broadcast delivers the event to every connection in the room,
// including the sender's own. Fire-and-forget: no acknowledgment, no
// retry, a full send buffer drops the event for that client.
func (r *RoomRouter) Broadcast(scope types.ScopeKey, ev *Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for c := range r.rooms[scope.String()] {
		c.queueEvent(ev)
	}
}

func (r *RoomRouter) memberCount(scope types.ScopeKey) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[scope.String()])
}
