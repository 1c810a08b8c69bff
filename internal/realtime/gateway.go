package realtime

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/campuschat/go-campuschat/internal/stats"
	"github.com/campuschat/go-campuschat/internal/types"
)

const (
	metricActiveConnections = "ActiveConnections"
	metricDirectDelivered   = "DirectMessagesDelivered"
	metricGroupBroadcast    = "GroupMessagesBroadcast"
	metricEventsDropped     = "EventsDropped"
)

// EventPublisher is the surface the HTTP layer uses to push realtime
// events at live connections.
type EventPublisher interface {
	HandleConn(user types.User, scope types.ScopeKey, conn *websocket.Conn)
	SendToUser(userId string, ev *Event) bool
	BroadcastRoom(scope types.ScopeKey, ev *Event)
	DisconnectUser(userId string, ev *Event) bool
}

// Gateway owns the presence registry, the room router and the set of
// live connections. One instance per process; it is never persisted, so
// every user appears offline after a restart until they reconnect.
type Gateway struct {
	log         *log.Logger
	stats       stats.StatsProvider
	presence    *PresenceRegistry
	rooms       *RoomRouter
	clients     map[*Client]struct{}
	clientsLock sync.Mutex
}

func NewGateway(logger *log.Logger, sp stats.StatsProvider) *Gateway {
	sp.RegisterMetric(metricActiveConnections)
	sp.RegisterMetric(metricDirectDelivered)
	sp.RegisterMetric(metricGroupBroadcast)
	sp.RegisterMetric(metricEventsDropped)

	return &Gateway{
		log:      logger,
		stats:    sp,
		presence: NewPresenceRegistry(),
		rooms:    NewRoomRouter(),
		clients:  make(map[*Client]struct{}),
	}
}

// HandleConn takes ownership of an upgraded connection: records
// presence, joins the scope room carried by the handshake and starts the
// read/write pumps.
func (g *Gateway) HandleConn(user types.User, scope types.ScopeKey, conn *websocket.Conn) {
	c := newClient(user, scope, conn, g, g.log, g.stats)
	g.register(c)

	go c.Write()
	go c.Read()
}

func (g *Gateway) register(c *Client) {
	g.clientsLock.Lock()
	g.clients[c] = struct{}{}
	g.clientsLock.Unlock()

	g.presence.Register(c.user.Id, c)
	g.rooms.Join(c, c.scope)

	g.stats.Incr(metricActiveConnections)
	g.log.Printf("connection from %q registered (scope %q)", c.user.Id, c.scope)

	g.broadcastOnlineUsers()
}

func (g *Gateway) deregister(c *Client) {
	g.clientsLock.Lock()
	if _, ok := g.clients[c]; !ok {
		g.clientsLock.Unlock()
		return
	}
	delete(g.clients, c)
	g.clientsLock.Unlock()

	g.presence.Remove(c.user.Id)
	g.rooms.drop(c)

	g.stats.Decr(metricActiveConnections)
	g.log.Printf("connection from %q removed", c.user.Id)

	g.broadcastOnlineUsers()
}

// broadcastOnlineUsers pushes the current presence snapshot to every
// live connection, mirroring any connect or disconnect.
func (g *Gateway) broadcastOnlineUsers() {
	g.broadcastAll(OnlineUsersEvent(g.presence.Snapshot()))
}

func (g *Gateway) broadcastAll(ev *Event) {
	g.clientsLock.Lock()
	defer g.clientsLock.Unlock()

	for c := range g.clients {
		c.queueEvent(ev)
	}
}

// SendToUser delivers to the user's presence entry if one exists.
// Returns false when the user is offline; the caller treats that as a
// skipped delivery, never an error.
func (g *Gateway) SendToUser(userId string, ev *Event) bool {
	c, ok := g.presence.Lookup(userId)
	if !ok {
		return false
	}

	if c.queueEvent(ev) {
		g.stats.Incr(metricDirectDelivered)
		return true
	}
	return false
}

func (g *Gateway) BroadcastRoom(scope types.ScopeKey, ev *Event) {
	g.rooms.Broadcast(scope, ev)
	g.stats.Incr(metricGroupBroadcast)
}

// DisconnectUser queues a final event for the user and tears the
// connection down once it is flushed. Used for out-of-band control
// events such as a ban.
func (g *Gateway) DisconnectUser(userId string, ev *Event) bool {
	c, ok := g.presence.Lookup(userId)
	if !ok {
		return false
	}

	final := *ev
	final.terminal = true
	if !c.queueEvent(&final) {
		c.stopClient()
	}
	return true
}

func (g *Gateway) OnlineUsers() []string {
	return g.presence.Snapshot()
}

// Shutdown stops every live connection. Presence state is in-memory
// only, so there is nothing else to flush.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.clientsLock.Lock()
	defer g.clientsLock.Unlock()

	for c := range g.clients {
		c.stopClient()
	}
	return ctx.Err()
}
