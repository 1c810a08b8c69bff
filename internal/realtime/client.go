package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/campuschat/go-campuschat/internal/stats"
	"github.com/campuschat/go-campuschat/internal/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 256
)

type Client struct {
	conn     *websocket.Conn
	gw       *Gateway
	log      *log.Logger
	stats    stats.StatsProvider
	user     types.User
	scope    types.ScopeKey
	send     chan *Event
	stop     chan struct{}
	stopOnce sync.Once
}

func newClient(user types.User, scope types.ScopeKey, conn *websocket.Conn, gw *Gateway, l *log.Logger, sp stats.StatsProvider) *Client {
	return &Client{
		conn:  conn,
		gw:    gw,
		log:   l,
		stats: sp,
		user:  user,
		scope: scope,
		send:  make(chan *Event, sendBufferSize),
		stop:  make(chan struct{}),
	}
}

func (c *Client) Write() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.log.Printf("write pump for %q exiting", c.user.Id)
	}()

	for {
		select {
		case ev, ok := <-c.send:
			if !ok {
				return
			}

			bytes, err := json.Marshal(ev)
			if err != nil {
				c.log.Println("failed to serialize event:", err)
				continue
			}

			if !c.writeMessage(websocket.TextMessage, bytes) {
				return
			}

			if ev.terminal {
				// forced disconnect: the notification is flushed,
				// now drop the connection
				return
			}
		case <-c.stop:
			return
		case <-ticker.C:
			if !c.writeMessage(websocket.PingMessage, nil) {
				return
			}
		}
	}
}

func (c *Client) Read() {
	defer func() {
		c.conn.Close()
		c.stopClient()
		c.gw.deregister(c)
		c.log.Printf("read pump for %q exiting", c.user.Id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(appData string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.log.Printf("ws: read: %v", err)
			}
			break
		}

		var ev ClientEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			c.log.Println("error parsing client event:", err)
			continue
		}

		if ev.Name == EventUserUnblocked {
			// the client noticed it was unblocked and asks for a forced
			// reconnect; dropping the read loop tears the socket down
			break
		}
	}
}

// queueEvent enqueues without blocking; a full buffer drops the event
// since realtime delivery is best-effort.
func (c *Client) queueEvent(ev *Event) bool {
	select {
	case c.send <- ev:
	default:
		c.log.Printf("send buffer full for %q, dropping %q", c.user.Id, ev.Name)
		if c.stats != nil {
			c.stats.Incr(metricEventsDropped)
		}
		return false
	}

	return true
}

func (c *Client) writeMessage(msgType int, msg []byte) bool {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := c.conn.WriteMessage(msgType, msg); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
			websocket.CloseNormalClosure) {
			c.log.Printf("write message: %s", err)
		}
		return false
	}

	return true
}

func (c *Client) stopClient() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}
