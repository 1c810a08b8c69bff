package realtime

import (
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/mock"

	"github.com/campuschat/go-campuschat/internal/types"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) HandleConn(user types.User, scope types.ScopeKey, conn *websocket.Conn) {
	m.Called(user, scope, conn)
}

func (m *MockEventPublisher) SendToUser(userId string, ev *Event) bool {
	args := m.Called(userId, ev)
	return args.Bool(0)
}

func (m *MockEventPublisher) BroadcastRoom(scope types.ScopeKey, ev *Event) {
	m.Called(scope, ev)
}

func (m *MockEventPublisher) DisconnectUser(userId string, ev *Event) bool {
	args := m.Called(userId, ev)
	return args.Bool(0)
}
