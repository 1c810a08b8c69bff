package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuschat/go-campuschat/internal/types"
)

func TestRoomRouter_BroadcastReachesWholeRoom(t *testing.T) {
	r := NewRoomRouter()
	scope := types.ScopeKey{Course: "BCA", Semester: "3"}

	sender := &Client{scope: scope, send: make(chan *Event, 4)}
	other := &Client{scope: scope, send: make(chan *Event, 4)}

	r.Join(sender, scope)
	r.Join(other, scope)

	ev := NewGroupMessageEvent(types.GroupMessage{Text: "hello"})
	r.Broadcast(scope, ev)

	// the sender's own connection gets the event too
	assert.Same(t, ev, <-sender.send)
	assert.Same(t, ev, <-other.send)
}

func TestRoomRouter_ScopeIsolation(t *testing.T) {
	r := NewRoomRouter()
	bca3 := types.ScopeKey{Course: "BCA", Semester: "3"}
	bca4 := types.ScopeKey{Course: "BCA", Semester: "4"}

	inRoom := &Client{scope: bca3, send: make(chan *Event, 4)}
	otherRoom := &Client{scope: bca4, send: make(chan *Event, 4)}

	r.Join(inRoom, bca3)
	r.Join(otherRoom, bca4)

	r.Broadcast(bca3, NewGroupMessageEvent(types.GroupMessage{Text: "hello"}))

	assert.Len(t, inRoom.send, 1)
	assert.Empty(t, otherRoom.send, "expected no delivery across scope boundaries")
}

func TestRoomRouter_InvalidScopeNotJoined(t *testing.T) {
	r := NewRoomRouter()
	noScope := types.ScopeKey{}

	c := &Client{scope: noScope, send: make(chan *Event, 4)}
	r.Join(c, noScope)

	assert.Zero(t, r.memberCount(noScope), "expected join without course and semester to be a no-op")
}

func TestRoomRouter_DropRemovesEmptyRoom(t *testing.T) {
	r := NewRoomRouter()
	scope := types.ScopeKey{Course: "BCA", Semester: "3"}

	c := &Client{scope: scope, send: make(chan *Event, 4)}
	r.Join(c, scope)
	assert.Equal(t, 1, r.memberCount(scope))

	r.drop(c)
	assert.Zero(t, r.memberCount(scope))

	// dropping again is harmless
	r.drop(c)

	r.Broadcast(scope, OnlineUsersEvent(nil))
	assert.Empty(t, c.send)
}

func TestRoomRouter_BroadcastToEmptyRoom(t *testing.T) {
	r := NewRoomRouter()

	// no members, no panic
	r.Broadcast(types.ScopeKey{Course: "MCA", Semester: "1"}, OnlineUsersEvent(nil))
}
