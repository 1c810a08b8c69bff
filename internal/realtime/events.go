package realtime

import (
	"github.com/campuschat/go-campuschat/internal/types"
)

// Server to client event names. These are part of the wire contract
// with the frontend stores and must not change casing.
const (
	EventOnlineUsers    = "getOnlineUsers"
	EventNewMessage     = "newMessage"
	EventMessageDeleted = "messageDeleted"
	EventNewGroupMsg    = "newGroupMessage"
	EventBanned         = "banned"
	EventUserUnblocked  = "userUnblocked"
)

type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload,omitempty"`

	// terminal marks an event after which the connection is closed,
	// used for forced disconnects so the notification still goes out.
	terminal bool
}

// ClientEvent is the only inbound message shape the server accepts.
type ClientEvent struct {
	Name string `json:"event"`
}

func OnlineUsersEvent(userIds []string) *Event {
	return &Event{Name: EventOnlineUsers, Payload: userIds}
}

func NewMessageEvent(msg types.Message) *Event {
	return &Event{Name: EventNewMessage, Payload: msg}
}

func MessageDeletedEvent(messageId string) *Event {
	return &Event{Name: EventMessageDeleted, Payload: map[string]string{"message_id": messageId}}
}

func NewGroupMessageEvent(msg types.GroupMessage) *Event {
	return &Event{Name: EventNewGroupMsg, Payload: msg}
}

func BannedEvent(message string) *Event {
	return &Event{Name: EventBanned, Payload: map[string]string{"message": message}}
}

func UserUnblockedEvent(actorId string) *Event {
	return &Event{Name: EventUserUnblocked, Payload: map[string]string{"user_id": actorId}}
}
